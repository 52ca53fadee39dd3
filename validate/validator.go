package validate

import "github.com/go-fixproto/fixproto/fix"

// ValidationResult is the outcome of validating a payload.
type ValidationResult interface {
	Valid() bool
	Errors() []ValidationError
	Warnings() []ValidationWarning
}

// Validator validates a payload against a set of rules.
type Validator interface {
	Validate(payload fix.Payload) ValidationResult
}

type validationResult struct {
	errors   []ValidationError
	warnings []ValidationWarning
}

func (r *validationResult) Valid() bool { return len(r.errors) == 0 }

func (r *validationResult) Errors() []ValidationError {
	if r.errors == nil {
		return []ValidationError{}
	}
	result := make([]ValidationError, len(r.errors))
	copy(result, r.errors)
	return result
}

func (r *validationResult) Warnings() []ValidationWarning {
	if r.warnings == nil {
		return []ValidationWarning{}
	}
	result := make([]ValidationWarning, len(r.warnings))
	copy(result, r.warnings)
	return result
}

type validator struct {
	rules []Rule
}

// New creates a Validator from the given rules.
func New(rules ...Rule) Validator {
	return &validator{rules: rules}
}

// NewWithRuleSet creates a Validator from a RuleSet.
func NewWithRuleSet(rs RuleSet) Validator {
	return &validator{rules: rs.Rules()}
}

func (v *validator) Validate(payload fix.Payload) ValidationResult {
	result := &validationResult{errors: make([]ValidationError, 0), warnings: make([]ValidationWarning, 0)}
	if payload == nil {
		result.errors = append(result.errors, ValidationError{Rule: "validator", Message: "payload is nil"})
		return result
	}
	for _, rule := range v.rules {
		result.errors = append(result.errors, rule.Validate(payload)...)
	}
	return result
}
