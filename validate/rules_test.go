package validate

import (
	"testing"

	"github.com/go-fixproto/fixproto/fix"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Location: "Side", Rule: "oneOf", Message: "bad value", Expected: "1 or 2", Actual: "9"}
	got := err.Error()
	if got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestValidationWarning_String(t *testing.T) {
	w := ValidationWarning{Location: "Side", Rule: "oneOf", Message: "unusual value"}
	if w.String() == "" {
		t.Fatal("String() returned empty string")
	}
}

func TestRequiredRule_NonStringValue(t *testing.T) {
	rule := &requiredRule{location: "NoAllocs"}
	payload := fix.Payload{{Name: "NoAllocs", Value: []fix.Payload{{}}}}
	errs := rule.Validate(payload)
	if len(errs) != 0 {
		t.Errorf("expected a present non-string value to satisfy required, got %v", errs)
	}
}

func TestPatternRule_SkipsAbsentField(t *testing.T) {
	rule := &patternRule{location: "ClOrdID"}
	errs := rule.Validate(fix.Payload{})
	if len(errs) != 0 {
		t.Errorf("expected pattern rule to skip an absent field, got %v", errs)
	}
}

func TestOneOfRule_SkipsEmptyValue(t *testing.T) {
	rule := &oneOfRule{location: "Side", allowed: []string{"1", "2"}}
	errs := rule.Validate(fix.Payload{{Name: "Side", Value: ""}})
	if len(errs) != 0 {
		t.Errorf("expected oneOf to skip an empty value, got %v", errs)
	}
}

func TestCompositeRule_CollectsAllErrors(t *testing.T) {
	rule := &compositeRule{
		location: "ClOrdID",
		rules: []Rule{
			&requiredRule{location: "ClOrdID"},
			&lengthRule{location: "ClOrdID", min: 1, max: 3},
		},
	}
	errs := rule.Validate(fix.Payload{})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error (length rule skips absent field, required fires), got %d: %v", len(errs), errs)
	}
}
