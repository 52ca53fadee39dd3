package app

import (
	"os"

	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/schema"
)

// resolveProtocol loads the named dictionary version, honoring
// --dict-dir by setting FIXPROTO_DICT_DIR for the duration of the
// call — the same environment convention schema.Locate already
// defines, rather than a second resolution path.
func (o *options) resolveProtocol(version string) (*fix.Protocol, error) {
	if o.dictDir != "" {
		prev, had := os.LookupEnv("FIXPROTO_DICT_DIR")
		os.Setenv("FIXPROTO_DICT_DIR", o.dictDir)
		defer func() {
			if had {
				os.Setenv("FIXPROTO_DICT_DIR", prev)
			} else {
				os.Unsetenv("FIXPROTO_DICT_DIR")
			}
		}()
	}
	return schema.LoadVersion(version)
}
