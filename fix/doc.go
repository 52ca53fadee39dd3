// Package fix provides the core composite model for the FIX tag-value
// protocol: typed [Field] values, [Component] groupings, repeating
// [Group] structures, and top-level [Message] declarations, all held
// together by a [Protocol] built from a parsed dictionary.
//
// The package itself does no I/O and performs no XML parsing — see
// [github.com/go-fixproto/fixproto/schema] for building a Protocol from
// a dictionary file, [github.com/go-fixproto/fixproto/parse] for
// turning wire bytes into a payload, and
// [github.com/go-fixproto/fixproto/serialize] for the reverse.
//
// # Payload shape
//
// A payload is an ordered sequence of [NameValue] pairs. A Field's
// value is a string; a Component's value is a nested []NameValue; a
// Group's value is a [][]NameValue, one slice per repetition.
package fix
