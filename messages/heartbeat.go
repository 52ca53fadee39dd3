package messages

import (
	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/serialize"
)

// Heartbeat represents the FIX Heartbeat (0) message, sent to satisfy
// the session's HeartBtInt and, when TestReqID is set, in response to
// a TestRequest.
type Heartbeat struct {
	Header
	// TestReqID is tag 112: present only when answering a TestRequest.
	TestReqID string
}

// ToPayload renders h into the ordered payload serialize.Message expects.
func (h *Heartbeat) ToPayload() fix.Payload {
	out := h.Header.appendTo(nil)
	out = appendString(out, "TestReqID", h.TestReqID)
	return out
}

// Serialize frames h as a complete Heartbeat wire message against protocol.
func (h *Heartbeat) Serialize(protocol *fix.Protocol) ([]byte, error) {
	return serialize.Message(protocol, "Heartbeat", h.ToPayload())
}

// HeartbeatFromPayload populates a Heartbeat from an already-parsed payload.
func HeartbeatFromPayload(payload fix.Payload) *Heartbeat {
	h := &Heartbeat{}
	h.Header.fromPayload(payload)
	h.TestReqID = getString(payload, "TestReqID")
	return h
}
