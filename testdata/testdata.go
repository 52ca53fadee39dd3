// Package testdata provides the embedded FIX 4.4 dictionary bundled
// with the module, which schema uses as its last-resort dictionary
// fallback. It holds no wire captures.
package testdata

import "embed"

//go:embed dict_fix44.xml
var fs embed.FS

// dictFiles maps a version tag to its embedded dictionary filename.
var dictFiles = map[string]string{
	"fix44": "dict_fix44.xml",
}

// Dictionary returns the embedded dictionary XML bytes for version,
// or false if this module bundles no dictionary for that version.
func Dictionary(version string) ([]byte, bool) {
	name, ok := dictFiles[version]
	if !ok {
		return nil, false
	}
	data, err := fs.ReadFile(name)
	if err != nil {
		return nil, false
	}
	return data, true
}
