package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-fixproto/fixproto/fix"
)

// Load parses a dictionary XML document from r and builds a
// *fix.Protocol. It implements the schema loader algorithm: fields
// first, then components under deferred construction (tolerating
// forward references among components), then header/trailer, then
// messages (which, unlike components, fail fatally on any
// unresolved reference since every field and component is known by
// then).
func Load(r io.Reader) (*fix.Protocol, error) {
	var root dictRoot
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(&fix.SchemaError{Kind: fix.SchemaXMLMalformed, Cause: err}, "schema: decode dictionary")
	}

	fieldsByName, err := buildFields(root.Fields)
	if err != nil {
		return nil, errors.Wrap(err, "schema: build fields")
	}

	componentsByName, err := buildComponents(root.Components, fieldsByName)
	if err != nil {
		return nil, errors.Wrap(err, "schema: build components")
	}

	header, err := buildComposite("header", root.Header, fieldsByName, componentsByName)
	if err != nil {
		return nil, errors.Wrap(err, "schema: build header")
	}
	trailer, err := buildComposite("trailer", root.Trailer, fieldsByName, componentsByName)
	if err != nil {
		return nil, errors.Wrap(err, "schema: build trailer")
	}

	messages, err := buildMessages(root.Messages, fieldsByName, componentsByName)
	if err != nil {
		return nil, errors.Wrap(err, "schema: build messages")
	}

	protocolID := fmt.Sprintf("%s.%s.%s", root.Type, root.Major, root.Minor)
	version := strings.ToLower(fmt.Sprintf("fix%s%s", root.Major, root.Minor))

	fields := make([]fix.Field, 0, len(fieldsByName))
	for _, f := range fieldsByName {
		fields = append(fields, f)
	}
	components := make([]fix.Component, 0, len(componentsByName))
	for _, c := range componentsByName {
		components = append(components, c)
	}

	groups := collectGroups(componentsByName, messages)
	return fix.NewProtocol(version, protocolID, header, trailer, fields, components, groups, messages), nil
}

// LoadExtension parses an extension dictionary and applies it to
// protocol via Extend, enforcing the protocol-id precondition.
func LoadExtension(protocol *fix.Protocol, r io.Reader) error {
	var root dictRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return errors.Wrap(&fix.SchemaError{Kind: fix.SchemaXMLMalformed, Cause: err}, "schema: decode extension")
	}

	extID := fmt.Sprintf("%s.%s.%s", root.Type, root.Major, root.Minor)
	if extID != protocol.ProtocolID() {
		return &fix.SchemaError{Kind: fix.SchemaProtocolMismatch, Expected: protocol.ProtocolID(), Got: extID}
	}

	fieldsByName, err := buildFields(root.Fields)
	if err != nil {
		return errors.Wrap(err, "schema: build extension fields")
	}
	// The overlay's components and messages resolve field references
	// against the extension's own fields only; base fields are not
	// visible to them.
	merged := make(map[string]fix.Field, len(fieldsByName))
	for name, f := range fieldsByName {
		merged[name] = f
	}
	componentsByName, err := buildComponents(root.Components, merged)
	if err != nil {
		return errors.Wrap(err, "schema: build extension components")
	}
	messages, err := buildMessages(root.Messages, merged, componentsByName)
	if err != nil {
		return errors.Wrap(err, "schema: build extension messages")
	}

	fields := make([]fix.Field, 0, len(fieldsByName))
	for _, f := range fieldsByName {
		fields = append(fields, f)
	}
	return protocol.Extend(extID, fields, messages)
}

// collectGroups walks every component and message's children looking
// for Group composites, so Protocol.GroupByName — a convenience
// beyond the four lookups the loader is required to install — has
// something to serve. Groups are defined inline wherever referenced,
// not as a separate top-level dictionary section.
func collectGroups(components map[string]fix.Component, messages []fix.Message) []fix.Group {
	var out []fix.Group
	seen := make(map[string]bool)
	walk := func(base *fix.BaseComposite) {
		var visit func(*fix.BaseComposite)
		visit = func(b *fix.BaseComposite) {
			for _, c := range b.Children() {
				if g, ok := c.Composite.(fix.Group); ok {
					if !seen[g.Name()] {
						seen[g.Name()] = true
						out = append(out, g)
					}
					visit(g.Base())
				}
			}
		}
		visit(base)
	}
	for _, c := range components {
		walk(c.Base())
	}
	for _, m := range messages {
		walk(m.Base())
	}
	return out
}

func buildFields(defs []dictFieldDef) (map[string]fix.Field, error) {
	out := make(map[string]fix.Field, len(defs))
	for _, d := range defs {
		typ, ok := fix.ParseType(d.Type)
		if !ok {
			typ = fix.TypeString
		}
		var enum map[string]string
		if len(d.Values) > 0 {
			enum = make(map[string]string, len(d.Values))
			for _, v := range d.Values {
				enum[v.Enum] = v.Description
			}
		}
		out[d.Name] = fix.NewField(d.Number, d.Name, typ, enum)
	}
	return out, nil
}

// buildComponents resolves the component definitions under deferred
// construction: a queue is repeatedly swept, building any component
// whose <component> references are all already resolved, until a
// sweep makes no progress. A no-progress sweep with items still
// queued is an unresolvable cycle or unknown name, reported as
// UnresolvedReference rather than left to an infinite loop.
func buildComponents(defs []dictComponentDef, fieldsByName map[string]fix.Field) (map[string]fix.Component, error) {
	componentsByName := make(map[string]fix.Component, len(defs))
	queue := make([]dictComponentDef, len(defs))
	copy(queue, defs)

	for len(queue) > 0 {
		var remaining []dictComponentDef
		progressed := false

		for _, def := range queue {
			if !componentRefsResolved(def.dictComposite, componentsByName) {
				remaining = append(remaining, def)
				continue
			}
			base, err := buildComposite(def.Name, def.dictComposite, fieldsByName, componentsByName)
			if err != nil {
				return nil, err
			}
			componentsByName[def.Name] = fix.NewComponent(base)
			progressed = true
		}

		if !progressed {
			names := make([]string, 0, len(remaining))
			for _, def := range remaining {
				names = append(names, def.Name)
			}
			sort.Strings(names)
			return nil, &fix.SchemaError{
				Kind:     fix.SchemaUnresolvedReference,
				Name:     strings.Join(names, ", "),
				Referrer: "components",
			}
		}
		queue = remaining
	}
	return componentsByName, nil
}

func buildMessages(defs []dictMessage, fieldsByName map[string]fix.Field, componentsByName map[string]fix.Component) ([]fix.Message, error) {
	messages := make([]fix.Message, 0, len(defs))
	for _, def := range defs {
		base, err := buildComposite(def.Name, def.dictComposite, fieldsByName, componentsByName)
		if err != nil {
			return nil, err
		}
		category := fix.CategoryApp
		if strings.EqualFold(def.MsgCat, "admin") {
			category = fix.CategoryAdmin
		}
		messages = append(messages, fix.NewMessage(base, category, def.MsgType))
	}
	return messages, nil
}

// componentRefsResolved reports whether every <component> reference
// within def — including those nested inside its own <group>
// children — already exists in componentsByName.
func componentRefsResolved(def dictComposite, componentsByName map[string]fix.Component) bool {
	for _, it := range def.Items {
		switch it.XMLName.Local {
		case "component":
			if _, ok := componentsByName[it.Name]; !ok {
				return false
			}
		case "group":
			body, err := it.groupBody()
			if err != nil {
				return false
			}
			if !componentRefsResolved(body, componentsByName) {
				return false
			}
		}
	}
	return true
}

// buildComposite constructs a *fix.BaseComposite from def, resolving
// <field> references against fieldsByName (fatal on failure) and
// <component>/<group> references against componentsByName / nested
// recursion. Callers are responsible for ensuring component
// references are already resolvable (componentRefsResolved) before
// calling this for a deferred construction; for header, trailer, and
// messages, any unresolved reference is unconditionally fatal.
func buildComposite(name string, def dictComposite, fieldsByName map[string]fix.Field, componentsByName map[string]fix.Component) (*fix.BaseComposite, error) {
	children := make([]fix.Child, 0, len(def.Items))

	for _, it := range def.Items {
		switch it.XMLName.Local {
		case "field":
			f, ok := fieldsByName[it.Name]
			if !ok {
				return nil, &fix.SchemaError{Kind: fix.SchemaUnresolvedField, Name: it.Name, Referrer: name}
			}
			children = append(children, fix.Child{Composite: f, Required: it.required()})

		case "component":
			c, ok := componentsByName[it.Name]
			if !ok {
				return nil, &fix.SchemaError{Kind: fix.SchemaUnresolvedReference, Name: it.Name, Referrer: name}
			}
			children = append(children, fix.Child{Composite: c, Required: it.required()})

		case "group":
			body, err := it.groupBody()
			if err != nil {
				return nil, &fix.SchemaError{Kind: fix.SchemaXMLMalformed, Name: it.Name, Referrer: name, Cause: err}
			}
			groupBase, err := buildComposite(it.Name, body, fieldsByName, componentsByName)
			if err != nil {
				return nil, err
			}
			bf, ok := fieldsByName[it.Name]
			if !ok {
				return nil, &fix.SchemaError{Kind: fix.SchemaUnresolvedField, Name: it.Name, Referrer: name}
			}
			g, err := fix.NewGroup(it.Name, bf, groupBase)
			if err != nil {
				return nil, err
			}
			children = append(children, fix.Child{Composite: g, Required: it.required()})

		default:
			// Unknown element kind under a composite body; ignore.
		}
	}

	base, err := fix.NewBaseComposite(name, children)
	if err != nil {
		return nil, err
	}
	return base, nil
}
