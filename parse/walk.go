package parse

import (
	"fmt"
	"strconv"

	"github.com/go-fixproto/fixproto/fix"
)

// cursor is a read-only, non-rewinding position in a raw token
// stream, shared across the header/body/trailer walk of a single
// message so a field matched by an earlier composite is never
// reconsidered by a later one.
type cursor struct {
	toks []rawToken
	pos  int
}

func (c *cursor) peek() (rawToken, bool) {
	if c.pos >= len(c.toks) {
		return rawToken{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) consume() rawToken {
	t := c.toks[c.pos]
	c.pos++
	return t
}

// walkComposite reconstructs a payload for base by walking its
// declared children in order and matching each against the next
// unconsumed tokens. A Field or Group child that doesn't match the
// current token is simply skipped when optional (real wire traffic
// commonly omits optional fields); a skipped required child is
// classified as missing, duplicate, or out of order depending on
// where else in base its tag is declared (spec §4.7 step 6, §9
// REDESIGN FLAG on explicit order/duplicate detection). An optional
// Component child is skipped when the current token is not one of its
// Tags; otherwise it recurses, since its own children may be partially
// absent.
func walkComposite(base *fix.BaseComposite, cur *cursor, maxGroupReps int) (fix.Payload, error) {
	children := base.Children()
	seen := make(map[string]bool, len(children))
	var out fix.Payload

	for i, ch := range children {
		name := ch.Composite.Name()
		if fix.IsManaged(name) {
			continue
		}

		switch v := ch.Composite.(type) {
		case fix.Field:
			tok, ok := cur.peek()
			if ok && tok.Tag == v.Tag() {
				val, err := v.Deserialize(tok.Value)
				if err != nil {
					return nil, err
				}
				cur.consume()
				out = append(out, fix.NameValue{Name: name, Value: val})
				seen[name] = true
				continue
			}
			if ch.Required {
				if err := classify(children, i, tok, ok, base.Name(), seen); err != nil {
					return nil, err
				}
			}

		case fix.Component:
			if !ch.Required {
				if tok, ok := cur.peek(); !ok || !v.Base().Tags()[tok.Tag] {
					continue
				}
			}
			sub, err := walkComposite(v.Base(), cur, maxGroupReps)
			if err != nil {
				return nil, err
			}
			if len(sub) > 0 {
				out = append(out, fix.NameValue{Name: name, Value: sub})
				seen[name] = true
			} else if ch.Required {
				return nil, &fix.PayloadError{Kind: fix.PayloadMissingRequired, Name: name, Parent: base.Name()}
			}

		case fix.Group:
			tok, ok := cur.peek()
			if ok && tok.Tag == v.BaseField().Tag() {
				count, err := strconv.Atoi(tok.Value)
				if err != nil || count < 0 {
					return nil, &fix.WireError{Kind: fix.WireMalformedField, Tag: tok.Tag, Context: name}
				}
				cur.consume()
				if maxGroupReps > 0 && count > maxGroupReps {
					return nil, &fix.WireError{Kind: fix.WireFramingError,
						Context: fmt.Sprintf("group %q repetition count %d exceeds limit", name, count)}
				}
				reps := make([]fix.Payload, 0, count)
				for n := 0; n < count; n++ {
					rep, err := walkComposite(v.Base(), cur, maxGroupReps)
					if err != nil {
						return nil, err
					}
					reps = append(reps, rep)
				}
				if len(reps) != count {
					return nil, &fix.WireError{Kind: fix.WireCountMismatch, Group: name, Declared: count, Seen: len(reps)}
				}
				out = append(out, fix.NameValue{Name: name, Value: reps})
				seen[name] = true
				continue
			}
			if ch.Required {
				if err := classify(children, i, tok, ok, base.Name(), seen); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// classify explains why a required child at position i wasn't
// matched by the token cursor currently sitting on (tok, ok).
func classify(children []fix.Child, i int, tok rawToken, ok bool, parent string, seen map[string]bool) error {
	name := children[i].Composite.Name()
	if !ok {
		return &fix.PayloadError{Kind: fix.PayloadMissingRequired, Name: name, Parent: parent}
	}

	idx, found := locateDeclared(children, tok.Tag)
	if !found {
		return &fix.WireError{Kind: fix.WireUnknownTag, Tag: tok.Tag, Context: parent}
	}
	if idx > i {
		// The tag belongs to a later slot; this one is simply absent.
		return &fix.PayloadError{Kind: fix.PayloadMissingRequired, Name: name, Parent: parent}
	}
	earlier := children[idx].Composite.Name()
	if seen[earlier] {
		return &fix.PayloadError{Kind: fix.PayloadDuplicate, Name: earlier, Parent: parent}
	}
	return &fix.WireError{Kind: fix.WireOutOfOrder, Tag: tok.Tag, Context: parent}
}

// locateDeclared finds which declared child of children reaches tag,
// recursing into a Component's own Tags() set.
func locateDeclared(children []fix.Child, tag int) (int, bool) {
	for i, ch := range children {
		if containsTag(ch.Composite, tag) {
			return i, true
		}
	}
	return -1, false
}

func containsTag(c fix.Composite, tag int) bool {
	switch v := c.(type) {
	case fix.Field:
		return v.Tag() == tag
	case fix.Component:
		return v.Base().Tags()[tag]
	case fix.Group:
		return v.BaseField().Tag() == tag
	default:
		return false
	}
}
