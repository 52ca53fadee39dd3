package fix

// Kind distinguishes the four composite variants. It replaces a
// structural "does it have serialize/name/type" duck-typing check
// with a closed, switchable enum.
type Kind int

const (
	KindField Kind = iota
	KindComponent
	KindGroup
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindComponent:
		return "component"
	case KindGroup:
		return "group"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Composite is anything that can serialize itself against a payload:
// a Field, Component, Group, or Message. Callers dispatch on Kind
// rather than on structural capability.
type Composite interface {
	// Name returns the composite's declared name.
	Name() string
	// Kind identifies which of the four variants this is.
	Kind() Kind
}

// NameValue is one entry of a payload: a declared child name paired
// with its value. Value is a string for a Field child, []NameValue
// for a Component child, or [][]NameValue for a Group child.
type NameValue struct {
	Name  string
	Value interface{}
}

// Payload is an ordered sequence of NameValue pairs, preserving the
// caller's order.
type Payload []NameValue

// Find returns the value of the first entry named name, and whether
// it was present.
func (p Payload) Find(name string) (interface{}, bool) {
	for _, nv := range p {
		if nv.Name == name {
			return nv.Value, true
		}
	}
	return nil, false
}
