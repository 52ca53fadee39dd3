package serialize

import (
	"bytes"
	"fmt"

	"github.com/go-fixproto/fixproto/fix"
)

// Message serializes a named Message against protocol, combining the
// caller's payload with the protocol's header and trailer into a
// fully framed wire message (spec §4.6):
//
//  1. MsgType + header fields (declared order, managed excluded) +
//     the message's own declared children (payload order) + trailer
//     fields (declared order, managed excluded).
//  2. BodyLength: the byte count of that body.
//  3. CheckSum: sum of BeginString+BodyLength+body bytes, mod 256.
//
// payload may freely interleave header-level and message-level field
// names; each is routed to the composite that declares it. Supplying
// any managed name (BeginString, BodyLength, MsgType, CheckSum)
// anywhere in payload is rejected with ManagedConflict.
func Message(protocol *fix.Protocol, msgName string, payload fix.Payload) ([]byte, error) {
	msg, ok := protocol.MessageByName(msgName)
	if !ok {
		return nil, &fix.PayloadError{Kind: fix.PayloadUnknownChild, Name: msgName, Parent: "Protocol"}
	}

	for _, nv := range payload {
		if fix.IsManaged(nv.Name) {
			return nil, &fix.PayloadError{Kind: fix.PayloadManagedConflict, Name: nv.Name}
		}
	}

	headerPayload, rest := partition(protocol.Header(), payload)
	trailerPayload, bodyPayload := partition(protocol.Trailer(), rest)

	var body bytes.Buffer
	body.WriteString(fmt.Sprintf("35=%s", msg.MsgType()))
	body.WriteByte(fix.SOH)

	hb, err := serializeOrdered(protocol.Header(), headerPayload)
	if err != nil {
		return nil, err
	}
	body.Write(hb)

	mb, err := msg.Serialize(bodyPayload)
	if err != nil {
		return nil, err
	}
	body.Write(mb)

	tb, err := serializeOrdered(protocol.Trailer(), trailerPayload)
	if err != nil {
		return nil, err
	}
	body.Write(tb)

	var out bytes.Buffer
	out.Write(protocol.BeginString())
	out.WriteByte(fix.SOH)
	out.WriteString(fmt.Sprintf("9=%d", body.Len()))
	out.WriteByte(fix.SOH)
	out.Write(body.Bytes())

	sum := checksum(out.Bytes())
	out.WriteString(fmt.Sprintf("10=%03d", sum))
	out.WriteByte(fix.SOH)

	return out.Bytes(), nil
}

// checksum computes the FIX checksum: the sum of all given bytes,
// mod 256.
func checksum(b []byte) int {
	var sum int
	for _, c := range b {
		sum += int(c)
	}
	return sum % 256
}

// partition splits payload into the subset whose names are declared
// children of base, and the rest.
func partition(base *fix.BaseComposite, payload fix.Payload) (assigned, rest fix.Payload) {
	for _, nv := range payload {
		if _, ok := base.Child(nv.Name); ok {
			assigned = append(assigned, nv)
		} else {
			rest = append(rest, nv)
		}
	}
	return assigned, rest
}

// serializeOrdered renders base's non-managed declared children in
// declared order, pulling each value from assigned by name. Header
// and trailer orderings are fixed by the dictionary regardless of the
// order the caller supplied them in (spec §4.6: "header and trailer
// field orderings are those declared in the XML").
func serializeOrdered(base *fix.BaseComposite, assigned fix.Payload) ([]byte, error) {
	byName := make(map[string]interface{}, len(assigned))
	for _, nv := range assigned {
		if _, dup := byName[nv.Name]; dup {
			return nil, &fix.PayloadError{Kind: fix.PayloadDuplicate, Name: nv.Name, Parent: base.Name()}
		}
		byName[nv.Name] = nv.Value
	}

	var out []byte
	for _, ch := range base.Children() {
		name := ch.Composite.Name()
		if fix.IsManaged(name) {
			continue
		}
		val, present := byName[name]
		if !present {
			if ch.Required {
				return nil, &fix.PayloadError{Kind: fix.PayloadMissingRequired, Name: name, Parent: base.Name()}
			}
			continue
		}
		b, err := fix.DispatchSerialize(ch.Composite, val)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
		if _, isField := ch.Composite.(fix.Field); isField {
			out = append(out, fix.SOH)
		}
	}
	return out, nil
}
