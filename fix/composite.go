package fix

import "fmt"

// Child pairs a composite with whether it is required within its
// enclosing BaseComposite.
type Child struct {
	Composite Composite
	Required  bool
}

// BaseComposite is an ordered sequence of (child, required) pairs. It
// provides the shared declaration and serialization behavior for
// Component, Group, and Message: no child name may appear twice, and
// serialization dispatches to each child in the payload's order.
type BaseComposite struct {
	name     string
	children []Child
	index    map[string]int
}

// NewBaseComposite builds a BaseComposite, rejecting a duplicate child
// name.
func NewBaseComposite(name string, children []Child) (*BaseComposite, error) {
	index := make(map[string]int, len(children))
	for i, c := range children {
		if _, dup := index[c.Composite.Name()]; dup {
			return nil, &SchemaError{Kind: SchemaXMLMalformed, Name: c.Composite.Name(), Referrer: name,
				Cause: fmt.Errorf("duplicate child %q", c.Composite.Name())}
		}
		index[c.Composite.Name()] = i
	}
	return &BaseComposite{name: name, children: children, index: index}, nil
}

func (bc *BaseComposite) Name() string    { return bc.name }
func (bc *BaseComposite) Children() []Child { return bc.children }

// Child looks up a declared child by name.
func (bc *BaseComposite) Child(name string) (Child, bool) {
	i, ok := bc.index[name]
	if !ok {
		return Child{}, false
	}
	return bc.children[i], true
}

// IndexOf returns the declared position of a child, for order checks.
func (bc *BaseComposite) IndexOf(name string) (int, bool) {
	i, ok := bc.index[name]
	return i, ok
}

// Tags returns the flat set of wire tags reachable directly from this
// composite's own region: each Field child's tag, each Group child's
// base-field tag, and (transparently) the Tags of each Component
// child, since a Component's fields appear inline at the reference
// site. It does not include a Group's internal tags, which are only
// reachable within that group's own repetitions.
func (bc *BaseComposite) Tags() map[int]bool {
	tags := make(map[int]bool)
	for _, c := range bc.children {
		switch v := c.Composite.(type) {
		case Field:
			tags[v.Tag()] = true
		case *component:
			for t := range v.base.Tags() {
				tags[t] = true
			}
		case *group:
			tags[v.bf.Tag()] = true
		}
	}
	return tags
}

// Serialize validates payload against the declared children and
// concatenates each child's wire bytes, SOH-terminated, in payload
// order. It implements the shared behavior used by Component, Group
// repetitions, and Message's own body.
func (bc *BaseComposite) Serialize(payload Payload) ([]byte, error) {
	seen := make(map[string]bool, len(payload))
	var out []byte

	for _, nv := range payload {
		ch, ok := bc.Child(nv.Name)
		if !ok {
			return nil, &PayloadError{Kind: PayloadUnknownChild, Name: nv.Name, Parent: bc.name}
		}
		if seen[nv.Name] {
			return nil, &PayloadError{Kind: PayloadDuplicate, Name: nv.Name, Parent: bc.name}
		}
		seen[nv.Name] = true

		b, err := DispatchSerialize(ch.Composite, nv.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		if _, isField := ch.Composite.(Field); isField {
			out = append(out, SOH)
		}
	}

	for _, ch := range bc.children {
		if ch.Required && !seen[ch.Composite.Name()] {
			return nil, &PayloadError{Kind: PayloadMissingRequired, Name: ch.Composite.Name(), Parent: bc.name}
		}
	}

	return out, nil
}

// DispatchSerialize dispatches to the right composite kind's
// Serialize method given the payload value it was paired with. It is
// exported so callers outside this package (the serialize package's
// header/trailer envelope assembly) can serialize an individual child
// without re-implementing the Field/Component/Group type switch.
func DispatchSerialize(c Composite, value interface{}) ([]byte, error) {
	switch v := c.(type) {
	case Field:
		s, ok := value.(string)
		if !ok {
			return nil, &PayloadError{Kind: PayloadInvalidValue, Name: c.Name(), Reason: "expected a scalar string value"}
		}
		return v.Serialize(s)
	case *component:
		p, ok := value.(Payload)
		if !ok {
			p, ok = asPayload(value)
			if !ok {
				return nil, &PayloadError{Kind: PayloadInvalidValue, Name: c.Name(), Reason: "expected a nested payload"}
			}
		}
		return v.Serialize(p)
	case *group:
		reps, ok := value.([]Payload)
		if !ok {
			reps, ok = asPayloadSlice(value)
			if !ok {
				return nil, &PayloadError{Kind: PayloadInvalidValue, Name: c.Name(), Reason: "expected a slice of repetition payloads"}
			}
		}
		return v.Serialize(reps)
	default:
		return nil, &PayloadError{Kind: PayloadInvalidValue, Name: c.Name(), Reason: "unrecognized composite kind"}
	}
}

// asPayload accepts the []NameValue spelling of a nested payload in
// addition to the named Payload type, so callers need not import the
// type alias explicitly.
func asPayload(value interface{}) (Payload, bool) {
	nv, ok := value.([]NameValue)
	if !ok {
		return nil, false
	}
	return Payload(nv), true
}

func asPayloadSlice(value interface{}) ([]Payload, bool) {
	switch v := value.(type) {
	case [][]NameValue:
		out := make([]Payload, len(v))
		for i, p := range v {
			out[i] = Payload(p)
		}
		return out, true
	default:
		return nil, false
	}
}
