// Package convert maps Go structs to and from fix.Payload using struct
// tags, so callers can work with typed message structs instead of
// hand-building fix.NameValue slices.
//
// # Struct tags
//
// The "fix" tag names the field either by wire tag number or by its
// declared name:
//
//	type NewOrderSingle struct {
//	    ClOrdID  string  `fix:"11"`
//	    Symbol   string  `fix:"55"`
//	    Side     string  `fix:"54"`
//	    OrderQty float64 `fix:"38"`
//	    OrdType  string  `fix:"40"`
//	    Price    float64 `fix:"44,omitempty"`
//	}
//
// A numeric key is resolved against the Protocol's by-tag field table;
// a non-numeric key (a Component or Group's declared name, or a
// Field's declared name) is used as-is. "-" ignores the field.
//
// # Conversion
//
//	payload, err := convert.ToPayload(protocol, order)
//	...
//	var order NewOrderSingle
//	err := convert.FromPayload(protocol, result.Payload, &order)
//
// # Supported types
//
//   - string, the int/uint families, float32/float64, bool (Y/N)
//   - time.Time, formatted with WithTimeFormat (default
//     "20060102-15:04:05", FIX's UTCTIMESTAMP layout)
//   - *T, pointer to any supported type (nil is omitted on output,
//     left untouched on input if the field is absent)
//   - a tagged nested struct maps to a Component's nested payload
//   - a tagged slice of struct maps to a Group's repetitions
//   - an untagged nested struct is flattened into the parent, matching
//     the teacher's treatment of anonymous/grouped fields
//
// # Options
//
//	c := convert.NewConverter(
//	    convert.WithTagName("wire"),
//	    convert.WithOmitEmpty(true),
//	    convert.WithTimeFormat("20060102"),
//	)
//	payload, err := c.Marshal(protocol, &order)
package convert
