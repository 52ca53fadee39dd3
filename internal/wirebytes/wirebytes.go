package wirebytes

import "strings"

// SOH is the FIX field separator byte, 0x01.
const SOH = byte(0x01)

// humanSeparator replaces SOH when rendering a wire message for
// logging or display.
const humanSeparator = " | "

// ContainsForbidden reports whether value contains a byte that may
// not appear inside a STRING-like field: the field separator (SOH) or
// the tag/value delimiter ('='). DATA fields are length-prefixed and
// exempt from this check; callers only apply it to STRING and the
// remaining string-like subtypes.
func ContainsForbidden(value string) bool {
	return strings.IndexByte(value, SOH) >= 0 || strings.IndexByte(value, '=') >= 0
}

// Humanize replaces every SOH byte in data with " | ", for
// diagnostic and logging use only. It is not an inverse of
// serialization: a humanized message cannot be parsed back.
func Humanize(data []byte) string {
	return strings.ReplaceAll(string(data), string(rune(SOH)), humanSeparator)
}
