package fix

// Component is a named reusable grouping of fields/components/groups.
// It contributes no framing of its own: its serialized bytes are
// indistinguishable from its children appearing inline at the
// reference site.
type Component interface {
	Composite
	Base() *BaseComposite
	Serialize(payload Payload) ([]byte, error)
}

type component struct {
	base *BaseComposite
}

// NewComponent wraps a BaseComposite as a Component.
func NewComponent(base *BaseComposite) Component {
	return &component{base: base}
}

func (c *component) Name() string   { return c.base.Name() }
func (c *component) Kind() Kind      { return KindComponent }
func (c *component) Base() *BaseComposite { return c.base }

// Serialize delegates entirely to the BaseComposite: a Component adds
// no envelope of its own.
func (c *component) Serialize(payload Payload) ([]byte, error) {
	return c.base.Serialize(payload)
}
