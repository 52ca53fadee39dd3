package fix

import "fmt"

// Group is a repeating structure identified by a base field whose
// value is a NUMINGROUP count. The first declared child of the
// repetition is the delimiter: it marks the start of each repetition
// on the wire and must be present and first in every supplied
// repetition payload.
type Group interface {
	Composite
	BaseField() Field
	Base() *BaseComposite
	Serialize(repetitions []Payload) ([]byte, error)
}

type group struct {
	name string
	base *BaseComposite // repetition declaration
	bf   Field          // NUMINGROUP count field
}

// NewGroup builds a Group. base must declare at least one required
// child, and its first declared child is treated as the delimiter.
// bf's name must equal name, matching the invariant that the base
// field's name is the group's own name.
func NewGroup(name string, bf Field, base *BaseComposite) (Group, error) {
	if len(base.Children()) == 0 {
		return nil, &SchemaError{Kind: SchemaXMLMalformed, Name: name, Cause: fmt.Errorf("group has no children")}
	}
	hasRequired := false
	for _, c := range base.Children() {
		if c.Required {
			hasRequired = true
			break
		}
	}
	if !hasRequired {
		return nil, &SchemaError{Kind: SchemaXMLMalformed, Name: name, Cause: fmt.Errorf("group has no required child")}
	}
	return &group{name: name, base: base, bf: bf}, nil
}

func (g *group) Name() string       { return g.name }
func (g *group) Kind() Kind          { return KindGroup }
func (g *group) BaseField() Field    { return g.bf }
func (g *group) Base() *BaseComposite { return g.base }

// delimiterName is the name of the first declared repetition child.
func (g *group) delimiterName() string {
	return g.base.Children()[0].Composite.Name()
}

// Serialize renders the base field's count, then each repetition in
// order, SOH-terminated. Every repetition must open with the
// delimiter field, in payload order.
func (g *group) Serialize(repetitions []Payload) ([]byte, error) {
	countBytes, err := g.bf.Serialize(fmt.Sprintf("%d", len(repetitions)))
	if err != nil {
		return nil, err
	}
	out := append(countBytes, SOH)

	delim := g.delimiterName()
	for _, rep := range repetitions {
		if len(rep) == 0 || rep[0].Name != delim {
			return nil, &PayloadError{Kind: PayloadGroupDelimiterMissing, Name: g.name, Parent: g.name}
		}
		b, err := g.base.Serialize(rep)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
