package schema

import (
	"bytes"
	"io"
	"os"

	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/testdata"
)

// Open resolves and opens a version tag's dictionary XML: a real
// filesystem path via Locate, falling back to the module's embedded
// testdata bundle for the versions it ships. The returned reader must
// be closed by the caller.
func Open(version string) (io.ReadCloser, error) {
	if path, err := Locate(version); err == nil {
		if f, ferr := os.Open(path); ferr == nil {
			return f, nil
		}
	}
	raw, ok := testdata.Dictionary(version)
	if !ok {
		return nil, &notFoundError{version: version}
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

// LoadVersion is the common-case entry point: Open the dictionary for
// version, then Load it into a *fix.Protocol.
func LoadVersion(version string) (*fix.Protocol, error) {
	r, err := Open(version)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Load(r)
}
