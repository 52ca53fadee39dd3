package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-fixproto/fixproto/fix"
)

// Marshal errors.
var (
	// ErrNotStructValue indicates the value is not a struct.
	ErrNotStructValue = errors.New("value must be a struct or pointer to struct")
	// ErrUnsupportedType indicates an unsupported field type.
	ErrUnsupportedType = errors.New("unsupported field type")
	// ErrNilPointer indicates a nil pointer was provided.
	ErrNilPointer = errors.New("target pointer is nil")
)

// Converter converts between Go structs and fix.Payload.
type Converter interface {
	// Marshal builds a fix.Payload from the tagged fields of v, in
	// struct declaration order.
	Marshal(protocol *fix.Protocol, v interface{}) (fix.Payload, error)
	// Unmarshal populates the tagged fields of v from payload.
	Unmarshal(protocol *fix.Protocol, payload fix.Payload, v interface{}) error
}

type converter struct {
	config *convertConfig
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) Converter {
	cfg := defaultConfig()
	cfg.applyOptions(opts...)
	return &converter{config: cfg}
}

// ToPayload builds a fix.Payload from v using the default Converter.
func ToPayload(protocol *fix.Protocol, v interface{}) (fix.Payload, error) {
	return NewConverter().Marshal(protocol, v)
}

// FromPayload populates v from payload using the default Converter.
func FromPayload(protocol *fix.Protocol, payload fix.Payload, v interface{}) error {
	return NewConverter().Unmarshal(protocol, payload, v)
}

func (c *converter) Marshal(protocol *fix.Protocol, v interface{}) (fix.Payload, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}
	return c.marshalStruct(protocol, rv)
}

func structValue(v interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilPointer
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStructValue
	}
	return rv, nil
}

func (c *converter) marshalStruct(protocol *fix.Protocol, rv reflect.Value) (fix.Payload, error) {
	rt := rv.Type()
	var out fix.Payload

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		tag := fieldType.Tag.Get(c.config.tagName)
		if tag == "" {
			if isPlainStruct(field, fieldType.Type) {
				sub, err := c.marshalStruct(protocol, field)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
			continue
		}

		ti, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
		if ti.ignore || !ti.hasKey() {
			continue
		}

		name, err := resolveName(protocol, ti.key)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldType.Name, err)
		}

		if ti.shouldOmit(c.config.omitEmpty) && isZeroValue(field) {
			continue
		}

		nv, err := c.marshalField(protocol, name, field, fieldType, ti)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
		if nv == nil {
			continue
		}
		out = append(out, *nv)
	}

	return out, nil
}

func (c *converter) marshalField(protocol *fix.Protocol, name string, field reflect.Value, fieldType reflect.StructField, ti *tagInfo) (*fix.NameValue, error) {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil, nil
		}
		field = field.Elem()
	}

	// Group: tagged slice of struct.
	if field.Kind() == reflect.Slice && fieldType.Type.Elem().Kind() == reflect.Struct {
		reps := make([]fix.Payload, 0, field.Len())
		for i := 0; i < field.Len(); i++ {
			rep, err := c.marshalStruct(protocol, field.Index(i))
			if err != nil {
				return nil, err
			}
			reps = append(reps, rep)
		}
		return &fix.NameValue{Name: name, Value: reps}, nil
	}

	// Component: tagged struct, not time.Time.
	if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Time{}) {
		sub, err := c.marshalStruct(protocol, field)
		if err != nil {
			return nil, err
		}
		return &fix.NameValue{Name: name, Value: sub}, nil
	}

	value, err := c.fieldToString(field, ti)
	if err != nil {
		return nil, err
	}
	if value == "" && ti.shouldOmit(c.config.omitEmpty) {
		return nil, nil
	}
	return &fix.NameValue{Name: name, Value: value}, nil
}

func (c *converter) fieldToString(field reflect.Value, ti *tagInfo) (string, error) {
	switch field.Kind() {
	case reflect.String:
		return field.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(field.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		if field.Bool() {
			return "Y", nil
		}
		return "N", nil
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			t := field.Interface().(time.Time)
			if t.IsZero() {
				return "", nil
			}
			return t.UTC().Format(ti.getTimeFormat(c.config.timeFormat)), nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}

// isPlainStruct reports whether field is an embeddable, untagged
// struct that should be flattened into its parent rather than treated
// as a Component of its own.
func isPlainStruct(field reflect.Value, t reflect.Type) bool {
	return field.Kind() == reflect.Struct && t != reflect.TypeOf(time.Time{})
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(time.Time{}) {
			return v.Interface().(time.Time).IsZero()
		}
		for i := 0; i < v.NumField(); i++ {
			if !isZeroValue(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}
