package fix

import "fmt"

// Protocol is the top-level, mostly-immutable container produced by
// the schema loader: a version tag, a protocol id ("FIX.4.4"), a
// pre-serialized BeginString, the header and trailer composites, and
// the four lookup tables needed at runtime.
//
// Construction and Extend are not re-entrant and must be externally
// serialized against each other and against any other call on the
// same Protocol; Lookup* and the various Serialize/parse paths are
// read-only and safe for concurrent use.
type Protocol struct {
	version      string
	protocolID   string
	beginString  []byte
	header       *BaseComposite
	trailer      *BaseComposite
	fieldsByName map[string]Field
	fieldsByTag  map[int]Field
	components   map[string]Component
	groups       map[string]Group
	messagesByName map[string]Message
	messagesByType map[string]Message
}

// NewProtocol assembles a Protocol from its already-resolved parts.
// It is the last step of schema loading (§4.5 step 7): installing the
// four lookup tables plus header/trailer/BeginString.
func NewProtocol(version, protocolID string, header, trailer *BaseComposite,
	fields []Field, components []Component, groups []Group, messages []Message) *Protocol {

	p := &Protocol{
		version:        version,
		protocolID:     protocolID,
		beginString:    []byte(fmt.Sprintf("8=%s", protocolID)),
		header:         header,
		trailer:        trailer,
		fieldsByName:   make(map[string]Field, len(fields)),
		fieldsByTag:    make(map[int]Field, len(fields)),
		components:     make(map[string]Component, len(components)),
		groups:         make(map[string]Group, len(groups)),
		messagesByName: make(map[string]Message, len(messages)),
		messagesByType: make(map[string]Message, len(messages)),
	}
	for _, f := range fields {
		p.fieldsByName[f.Name()] = f
		p.fieldsByTag[f.Tag()] = f
	}
	for _, c := range components {
		p.components[c.Name()] = c
	}
	for _, g := range groups {
		p.groups[g.Name()] = g
	}
	for _, m := range messages {
		p.messagesByName[m.Name()] = m
		p.messagesByType[m.MsgType()] = m
	}
	return p
}

func (p *Protocol) Version() string        { return p.version }
func (p *Protocol) ProtocolID() string      { return p.protocolID }
func (p *Protocol) BeginString() []byte     { return p.beginString }
func (p *Protocol) Header() *BaseComposite  { return p.header }
func (p *Protocol) Trailer() *BaseComposite { return p.trailer }

// FieldByName looks up a field by its declared name.
func (p *Protocol) FieldByName(name string) (Field, bool) {
	f, ok := p.fieldsByName[name]
	return f, ok
}

// FieldByTag looks up a field by its wire tag number.
func (p *Protocol) FieldByTag(tag int) (Field, bool) {
	f, ok := p.fieldsByTag[tag]
	return f, ok
}

// ComponentByName looks up a component by its declared name.
func (p *Protocol) ComponentByName(name string) (Component, bool) {
	c, ok := p.components[name]
	return c, ok
}

// GroupByName looks up a group by its declared name.
func (p *Protocol) GroupByName(name string) (Group, bool) {
	g, ok := p.groups[name]
	return g, ok
}

// MessageByName looks up a message by its declared name ("Logon").
func (p *Protocol) MessageByName(name string) (Message, bool) {
	m, ok := p.messagesByName[name]
	return m, ok
}

// MessageByType looks up a message by its wire MsgType code ("A").
func (p *Protocol) MessageByType(code string) (Message, bool) {
	m, ok := p.messagesByType[code]
	return m, ok
}

// Extend overlays an additional set of fields and messages (the two
// construction steps that, per the loader's extension algorithm, are
// repeated for an extension definition — §4.5). extProtocolID must
// equal this Protocol's own id; otherwise ProtocolMismatch and the
// existing lookups are left untouched. Merge is additive and
// last-writer-wins on name/number collisions.
//
// Extend is not safe to call concurrently with itself or with another
// Extend on the same Protocol; the caller must serialize it externally.
func (p *Protocol) Extend(extProtocolID string, fields []Field, messages []Message) error {
	if extProtocolID != p.protocolID {
		return &SchemaError{Kind: SchemaProtocolMismatch, Expected: p.protocolID, Got: extProtocolID}
	}
	for _, f := range fields {
		p.fieldsByName[f.Name()] = f
		p.fieldsByTag[f.Tag()] = f
	}
	for _, m := range messages {
		p.messagesByName[m.Name()] = m
		p.messagesByType[m.MsgType()] = m
	}
	return nil
}
