// Package serialize wraps a Message payload in the BeginString,
// BodyLength, MsgType, and CheckSum envelope a FIX wire message
// requires. It is the one place the Protocol's header and trailer
// are combined with a Message's own declared body, replacing the
// back-reference a Message would otherwise need to reach its
// enclosing Protocol.
package serialize
