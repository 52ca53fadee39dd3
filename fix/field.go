package fix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-fixproto/fixproto/internal/wirebytes"
)

// Type is the closed set of FIX field data types.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeLength
	TypeSeqNum
	TypeNumInGroup
	TypeFloat
	TypeAmt
	TypePrice
	TypePriceOffset
	TypeQty
	TypePercentage
	TypeChar
	TypeBoolean
	TypeData
	TypeMultipleValueString
	TypeMultipleCharValue
	TypeMultipleStringValue
	TypeCountry
	TypeCurrency
	TypeExchange
	TypeMonthYear
	TypeLocalMktDate
	TypeUTCDate
	TypeUTCDateOnly
	TypeUTCTimeOnly
	TypeUTCTimestamp
	TypeTZTimeOnly
	TypeTZTimestamp
	TypeLanguage
	TypeXMLData
)

var typeNames = map[string]Type{
	"STRING":              TypeString,
	"INT":                 TypeInt,
	"LENGTH":              TypeLength,
	"SEQNUM":              TypeSeqNum,
	"NUMINGROUP":          TypeNumInGroup,
	"FLOAT":               TypeFloat,
	"AMT":                 TypeAmt,
	"PRICE":               TypePrice,
	"PRICEOFFSET":         TypePriceOffset,
	"QTY":                 TypeQty,
	"PERCENTAGE":          TypePercentage,
	"CHAR":                TypeChar,
	"BOOLEAN":             TypeBoolean,
	"DATA":                TypeData,
	"MULTIPLEVALUESTRING": TypeMultipleValueString,
	"MULTIPLECHARVALUE":   TypeMultipleCharValue,
	"MULTIPLESTRINGVALUE": TypeMultipleStringValue,
	"COUNTRY":             TypeCountry,
	"CURRENCY":            TypeCurrency,
	"EXCHANGE":            TypeExchange,
	"MONTHYEAR":           TypeMonthYear,
	"LOCALMKTDATE":        TypeLocalMktDate,
	"UTCDATE":             TypeUTCDate,
	"UTCDATEONLY":         TypeUTCDateOnly,
	"UTCTIMEONLY":         TypeUTCTimeOnly,
	"UTCTIMESTAMP":        TypeUTCTimestamp,
	"TZTIMEONLY":          TypeTZTimeOnly,
	"TZTIMESTAMP":         TypeTZTimestamp,
	"LANGUAGE":            TypeLanguage,
	"XMLDATA":             TypeXMLData,
}

// ParseType resolves the XML "type" attribute to a Type. Unknown
// strings resolve to TypeString, matching the loader's leniency for
// the dictionary's long tail of string-like subtypes.
func ParseType(s string) (Type, bool) {
	t, ok := typeNames[strings.ToUpper(s)]
	return t, ok
}

// Field is a typed scalar with an optional enumeration. It is the
// only composite kind without children.
type Field interface {
	Composite

	// Tag is the field's positive wire tag number.
	Tag() int
	// Type is the field's declared data type.
	Type() Type
	// Enum returns the token->description enumeration, or nil if the
	// field has none.
	Enum() map[string]string

	// Serialize renders value (an enum token, an enum description, or
	// a raw scalar for non-enumerated fields) as "tag=rendered" wire
	// bytes. It fails with a PayloadError of kind PayloadInvalidValue
	// if value does not conform to the field's type or enum set.
	Serialize(value string) ([]byte, error)
	// Deserialize is the inverse of Serialize's rendering: it
	// validates raw against the field's type and enum set and
	// returns the canonical value (the enum token, if the field is
	// enumerated; otherwise raw unchanged).
	Deserialize(raw string) (string, error)
}

type field struct {
	tag  int
	name string
	typ  Type
	enum map[string]string // token -> description
}

// NewField constructs a Field. enum may be nil.
func NewField(tag int, name string, typ Type, enum map[string]string) Field {
	return &field{tag: tag, name: name, typ: typ, enum: enum}
}

func (f *field) Name() string           { return f.name }
func (f *field) Kind() Kind              { return KindField }
func (f *field) Tag() int                { return f.tag }
func (f *field) Type() Type               { return f.typ }
func (f *field) Enum() map[string]string { return f.enum }

func (f *field) Serialize(value string) ([]byte, error) {
	rendered, err := f.render(value)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("%d=%s", f.tag, rendered)), nil
}

func (f *field) Deserialize(raw string) (string, error) {
	return f.render(raw)
}

// render validates value against the field's type and enum set and
// returns the canonical wire form. It is shared by Serialize (which
// prefixes "tag=") and Deserialize (which doesn't).
func (f *field) render(value string) (string, error) {
	if f.enum != nil {
		if _, ok := f.enum[value]; ok {
			return value, nil
		}
		for token, desc := range f.enum {
			if desc == value {
				return token, nil
			}
		}
		return "", f.invalid(fmt.Sprintf("%q is not a member of the enumeration", value))
	}

	switch f.typ {
	case TypeInt, TypeLength, TypeSeqNum, TypeNumInGroup:
		if _, err := strconv.Atoi(value); err != nil {
			return "", f.invalid(fmt.Sprintf("%q is not an integer", value))
		}
		return value, nil
	case TypeFloat, TypeAmt, TypePrice, TypePriceOffset, TypeQty, TypePercentage:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "", f.invalid(fmt.Sprintf("%q is not a decimal number", value))
		}
		return value, nil
	case TypeChar:
		if len([]rune(value)) != 1 {
			return "", f.invalid(fmt.Sprintf("%q is not a single character", value))
		}
		return value, nil
	case TypeBoolean:
		if value != "Y" && value != "N" {
			return "", f.invalid(fmt.Sprintf("%q is not Y or N", value))
		}
		return value, nil
	case TypeData:
		// Length-prefixed: may contain SOH or '='; no separator check.
		return value, nil
	default:
		// STRING and the remaining string-like subtypes.
		if wirebytes.ContainsForbidden(value) {
			return "", f.invalid("value must not contain the field separator or '='")
		}
		return value, nil
	}
}

func (f *field) invalid(reason string) error {
	return &PayloadError{Kind: PayloadInvalidValue, Name: f.name, Reason: reason}
}
