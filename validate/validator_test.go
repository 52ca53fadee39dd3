package validate

import (
	"testing"

	"github.com/go-fixproto/fixproto/fix"
)

func TestNew(t *testing.T) {
	v := New(At("ClOrdID").Required().Build())
	if v == nil {
		t.Fatal("New() returned nil")
	}
}

func TestValidator_Validate_NilPayload(t *testing.T) {
	v := New(At("ClOrdID").Required().Build())
	result := v.Validate(nil)
	if result.Valid() {
		t.Fatal("expected a nil payload to fail validation")
	}
	if len(result.Errors()) != 1 {
		t.Fatalf("expected exactly 1 error for a nil payload, got %d", len(result.Errors()))
	}
}

func TestValidator_Validate_Clean(t *testing.T) {
	v := New(
		At("ClOrdID").Required().Build(),
		At("Side").OneOf("1", "2").Build(),
	)
	result := v.Validate(fix.Payload{
		{Name: "ClOrdID", Value: "ORD1"},
		{Name: "Side", Value: "1"},
	})
	if !result.Valid() {
		t.Errorf("expected no errors, got %v", result.Errors())
	}
	if len(result.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings())
	}
}

func TestValidator_Validate_CollectsAllRuleErrors(t *testing.T) {
	v := New(
		At("ClOrdID").Required().Build(),
		At("Symbol").Required().Build(),
	)
	result := v.Validate(fix.Payload{})
	if len(result.Errors()) != 2 {
		t.Fatalf("expected 2 errors (one per missing field), got %d: %v", len(result.Errors()), result.Errors())
	}
}

func TestValidator_Errors_ReturnsCopy(t *testing.T) {
	v := New(At("ClOrdID").Required().Build())
	result := v.Validate(fix.Payload{})
	errs := result.Errors()
	errs[0].Message = "mutated"
	if result.Errors()[0].Message == "mutated" {
		t.Fatal("Errors() must return a defensive copy")
	}
}

func TestNewWithRuleSet(t *testing.T) {
	rs := NewRuleSet(At("ClOrdID").Required().Build())
	v := NewWithRuleSet(rs)
	result := v.Validate(fix.Payload{{Name: "ClOrdID", Value: "ORD1"}})
	if !result.Valid() {
		t.Errorf("expected valid payload, got %v", result.Errors())
	}
}
