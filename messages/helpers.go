package messages

import (
	"github.com/go-fixproto/fixproto/fix"
)

// Header carries the session-identifying fields common to every
// message wrapper: SenderCompID, TargetCompID, MsgSeqNum, and
// SendingTime. These are dictionary header fields, not part of any
// one message's own declaration, but serialize.Message accepts them
// interleaved with the message body and routes each to the composite
// that declares it.
type Header struct {
	SenderCompID string
	TargetCompID string
	MsgSeqNum    string
	SendingTime  string
}

// appendTo appends h's non-empty fields to out in declared order.
func (h Header) appendTo(out fix.Payload) fix.Payload {
	out = appendString(out, "SenderCompID", h.SenderCompID)
	out = appendString(out, "TargetCompID", h.TargetCompID)
	out = appendString(out, "MsgSeqNum", h.MsgSeqNum)
	out = appendString(out, "SendingTime", h.SendingTime)
	return out
}

// fromPayload populates h from an already-parsed payload.
func (h *Header) fromPayload(payload fix.Payload) {
	h.SenderCompID = getString(payload, "SenderCompID")
	h.TargetCompID = getString(payload, "TargetCompID")
	h.MsgSeqNum = getString(payload, "MsgSeqNum")
	h.SendingTime = getString(payload, "SendingTime")
}

// appendString appends name/value to out, unless value is empty.
// Omitting empty optional fields mirrors serialize.Message's own
// treatment of a name absent from the payload; omitting a required
// field this way surfaces as PayloadMissingRequired at serialize time
// rather than silently sending an empty tag.
func appendString(out fix.Payload, name, value string) fix.Payload {
	if value == "" {
		return out
	}
	return append(out, fix.NameValue{Name: name, Value: value})
}

// getString returns the string value of name in payload, or "" if the
// name is absent or its value isn't a plain string (a Component or
// Group value under the same name, which none of these wrappers use).
func getString(payload fix.Payload, name string) string {
	v, ok := payload.Find(name)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
