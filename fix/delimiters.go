package fix

// SOH is the FIX field separator byte, 0x01. It is the only wire-level
// delimiter in the tag-value encoding: every "tag=value" token is
// terminated by it.
const SOH = byte(0x01)

// Managed field names. The serializer computes these; a caller that
// supplies any of them in a payload at the Message level gets
// ManagedConflict.
const (
	ManagedBeginString = "BeginString"
	ManagedBodyLength  = "BodyLength"
	ManagedMsgType     = "MsgType"
	ManagedCheckSum    = "CheckSum"
)

var managedNames = map[string]bool{
	ManagedBeginString: true,
	ManagedBodyLength:  true,
	ManagedMsgType:     true,
	ManagedCheckSum:    true,
}

// IsManaged reports whether name is one of the four managed field
// names a caller must never supply directly in a payload.
func IsManaged(name string) bool {
	return managedNames[name]
}
