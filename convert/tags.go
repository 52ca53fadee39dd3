package convert

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-fixproto/fixproto/fix"
)

// Tag parsing errors.
var (
	// ErrEmptyTag indicates an empty tag string was provided.
	ErrEmptyTag = errors.New("empty tag")
)

// tagInfo holds parsed struct tag information.
type tagInfo struct {
	key        string // tag number or declared name
	omitEmpty  bool
	timeFormat string
	ignore     bool
}

// parseTag parses a "fix" struct tag into tagInfo.
// Tag format: "key[,option[,option...]]"
//
// Supported options:
//   - omitempty: skip field if zero value when marshaling
//   - format=<layout>: custom time.Time layout for this field
//   - "-": ignore this field
func parseTag(tag string) (*tagInfo, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, ErrEmptyTag
	}
	if tag == "-" {
		return &tagInfo{ignore: true}, nil
	}

	parts := strings.Split(tag, ",")
	key := strings.TrimSpace(parts[0])
	if key == "" {
		return nil, ErrEmptyTag
	}
	info := &tagInfo{key: key}

	for i := 1; i < len(parts); i++ {
		opt := strings.TrimSpace(parts[i])
		switch {
		case opt == "":
		case opt == "omitempty":
			info.omitEmpty = true
		case strings.HasPrefix(opt, "format="):
			info.timeFormat = strings.TrimPrefix(opt, "format=")
		default:
			// unknown options are ignored for forward compatibility
		}
	}
	return info, nil
}

func (t *tagInfo) hasKey() bool {
	return t != nil && t.key != "" && !t.ignore
}

func (t *tagInfo) shouldOmit(globalOmitEmpty bool) bool {
	if t == nil {
		return false
	}
	return t.omitEmpty || globalOmitEmpty
}

func (t *tagInfo) getTimeFormat(defaultFormat string) string {
	if t != nil && t.timeFormat != "" {
		return t.timeFormat
	}
	return defaultFormat
}

// resolveName resolves a tag key to the declared child name it
// addresses. A numeric key is looked up against the Protocol's by-tag
// field table; any other key is used directly, since Component and
// Group names aren't themselves tag numbers.
func resolveName(protocol *fix.Protocol, key string) (string, error) {
	if n, err := strconv.Atoi(key); err == nil {
		f, ok := protocol.FieldByTag(n)
		if !ok {
			return "", &ErrUnknownTag{Tag: n}
		}
		return f.Name(), nil
	}
	return key, nil
}

// ErrUnknownTag is returned when a struct tag names a wire tag number
// the Protocol has no field for.
type ErrUnknownTag struct {
	Tag int
}

func (e *ErrUnknownTag) Error() string {
	return "convert: unknown tag number " + strconv.Itoa(e.Tag)
}
