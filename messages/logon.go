package messages

import (
	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/serialize"
)

// Logon represents the FIX Logon (A) message, the session-level
// handshake a party sends before any application message.
type Logon struct {
	Header
	// EncryptMethod is tag 98: the encryption method (0 = none).
	EncryptMethod string
	// HeartBtInt is tag 108: the heartbeat interval in seconds.
	HeartBtInt string
}

// ToPayload renders l into the ordered payload serialize.Message expects.
func (l *Logon) ToPayload() fix.Payload {
	out := l.Header.appendTo(nil)
	out = appendString(out, "EncryptMethod", l.EncryptMethod)
	out = appendString(out, "HeartBtInt", l.HeartBtInt)
	return out
}

// Serialize frames l as a complete Logon wire message against protocol.
func (l *Logon) Serialize(protocol *fix.Protocol) ([]byte, error) {
	return serialize.Message(protocol, "Logon", l.ToPayload())
}

// LogonFromPayload populates a Logon from an already-parsed payload.
func LogonFromPayload(payload fix.Payload) *Logon {
	l := &Logon{}
	l.Header.fromPayload(payload)
	l.EncryptMethod = getString(payload, "EncryptMethod")
	l.HeartBtInt = getString(payload, "HeartBtInt")
	return l
}
