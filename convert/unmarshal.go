package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-fixproto/fixproto/fix"
)

// Unmarshal errors.
var (
	// ErrNotPointer indicates the target is not a pointer.
	ErrNotPointer = errors.New("target must be a pointer")
	// ErrNotStruct indicates the target is not a struct.
	ErrNotStruct = errors.New("target must be a struct")
)

func (c *converter) Unmarshal(protocol *fix.Protocol, payload fix.Payload, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if rv.IsNil() {
		return ErrNilPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}
	return c.unmarshalStruct(protocol, payload, rv)
}

func (c *converter) unmarshalStruct(protocol *fix.Protocol, payload fix.Payload, rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		tag := fieldType.Tag.Get(c.config.tagName)
		if tag == "" {
			if isPlainStruct(field, fieldType.Type) {
				if err := c.unmarshalStruct(protocol, payload, field); err != nil {
					return err
				}
			}
			continue
		}

		ti, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
		if ti.ignore || !ti.hasKey() {
			continue
		}

		name, err := resolveName(protocol, ti.key)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}

		value, ok := payload.Find(name)
		if !ok {
			continue
		}

		if err := c.unmarshalField(protocol, field, fieldType, ti, value); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func (c *converter) unmarshalField(protocol *fix.Protocol, field reflect.Value, fieldType reflect.StructField, ti *tagInfo, value interface{}) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Type.Elem()))
		}
		return c.unmarshalField(protocol, field.Elem(), fieldType, ti, value)
	}

	if field.Kind() == reflect.Slice && fieldType.Type.Elem().Kind() == reflect.Struct {
		reps, ok := asPayloadSlice(value)
		if !ok {
			return fmt.Errorf("expected a slice of repetitions, got %T", value)
		}
		slice := reflect.MakeSlice(fieldType.Type, len(reps), len(reps))
		for i, rep := range reps {
			if err := c.unmarshalStruct(protocol, rep, slice.Index(i)); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Time{}) {
		sub, ok := asPayload(value)
		if !ok {
			return fmt.Errorf("expected a nested payload, got %T", value)
		}
		return c.unmarshalStruct(protocol, sub, field)
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected a scalar string value, got %T", value)
	}
	return c.setFieldValue(field, s, ti)
}

func asPayload(value interface{}) (fix.Payload, bool) {
	switch v := value.(type) {
	case fix.Payload:
		return v, true
	case []fix.NameValue:
		return fix.Payload(v), true
	default:
		return nil, false
	}
}

func asPayloadSlice(value interface{}) ([]fix.Payload, bool) {
	switch v := value.(type) {
	case []fix.Payload:
		return v, true
	case [][]fix.NameValue:
		out := make([]fix.Payload, len(v))
		for i, p := range v {
			out[i] = fix.Payload(p)
		}
		return out, true
	default:
		return nil, false
	}
}

func (c *converter) setFieldValue(field reflect.Value, value string, ti *tagInfo) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as int: %w", value, err)
		}
		field.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as uint: %w", value, err)
		}
		field.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as float: %w", value, err)
		}
		field.SetFloat(f)
		return nil
	case reflect.Bool:
		switch strings.TrimSpace(value) {
		case "Y":
			field.SetBool(true)
		case "N":
			field.SetBool(false)
		default:
			return fmt.Errorf("cannot parse %q as a FIX boolean", value)
		}
		return nil
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			t, err := time.Parse(ti.getTimeFormat(c.config.timeFormat), value)
			if err != nil {
				return fmt.Errorf("cannot parse %q as time: %w", value, err)
			}
			field.Set(reflect.ValueOf(t))
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}
