package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-fixproto/fixproto/fix"
)

// Rule defines a validation rule that can be applied to a payload.
type Rule interface {
	// Validate applies this rule to the payload and returns any
	// validation errors.
	Validate(payload fix.Payload) []ValidationError
	// Location returns the field/component/group name this rule
	// applies to.
	Location() string
	// Description returns a human-readable description of the rule.
	Description() string
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Location string
	Rule     string
	Message  string
	Expected string
	Actual   string
}

func (e ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error")
	if e.Location != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Location)
	}
	if e.Rule != "" {
		sb.WriteString(" [")
		sb.WriteString(e.Rule)
		sb.WriteString("]")
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	switch {
	case e.Expected != "" && e.Actual != "":
		sb.WriteString(fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Actual))
	case e.Expected != "":
		sb.WriteString(fmt.Sprintf(" (expected %s)", e.Expected))
	case e.Actual != "":
		sb.WriteString(fmt.Sprintf(" (got %s)", e.Actual))
	}
	return sb.String()
}

// ValidationWarning represents a non-critical validation issue.
type ValidationWarning struct {
	Location string
	Rule     string
	Message  string
}

func (w ValidationWarning) String() string {
	var sb strings.Builder
	sb.WriteString("warning")
	if w.Location != "" {
		sb.WriteString(" at ")
		sb.WriteString(w.Location)
	}
	if w.Rule != "" {
		sb.WriteString(" [")
		sb.WriteString(w.Rule)
		sb.WriteString("]")
	}
	if w.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}

// findString returns the string value at name, and whether it was
// present as a scalar string at all.
func findString(payload fix.Payload, name string) (string, bool) {
	v, ok := payload.Find(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

type requiredRule struct {
	location    string
	description string
}

func (r *requiredRule) Validate(payload fix.Payload) []ValidationError {
	v, ok := payload.Find(r.location)
	if !ok {
		return []ValidationError{{Location: r.location, Rule: "required", Message: "field not present"}}
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return []ValidationError{{Location: r.location, Rule: "required", Message: "field is required but empty"}}
	}
	return nil
}

func (r *requiredRule) Location() string { return r.location }
func (r *requiredRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return fmt.Sprintf("%s is required", r.location)
}

type valueRule struct {
	location    string
	expected    string
	description string
}

func (r *valueRule) Validate(payload fix.Payload) []ValidationError {
	value, ok := findString(payload, r.location)
	if !ok {
		return []ValidationError{{Location: r.location, Rule: "value", Message: "field not present", Expected: r.expected}}
	}
	if value != r.expected {
		return []ValidationError{{Location: r.location, Rule: "value", Message: "field value does not match expected", Expected: r.expected, Actual: value}}
	}
	return nil
}

func (r *valueRule) Location() string { return r.location }
func (r *valueRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return fmt.Sprintf("%s must equal %q", r.location, r.expected)
}

type patternRule struct {
	location    string
	pattern     *regexp.Regexp
	description string
}

func (r *patternRule) Validate(payload fix.Payload) []ValidationError {
	value, ok := findString(payload, r.location)
	if !ok || value == "" {
		return nil // presence is required's job
	}
	if !r.pattern.MatchString(value) {
		return []ValidationError{{Location: r.location, Rule: "pattern", Message: "field value does not match pattern", Expected: r.pattern.String(), Actual: value}}
	}
	return nil
}

func (r *patternRule) Location() string { return r.location }
func (r *patternRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return fmt.Sprintf("%s must match pattern %q", r.location, r.pattern.String())
}

type invalidPatternRule struct {
	location    string
	pattern     string
	err         error
	description string
}

func (r *invalidPatternRule) Validate(fix.Payload) []ValidationError {
	return []ValidationError{{Location: r.location, Rule: "pattern", Message: "invalid pattern: " + r.err.Error(), Expected: r.pattern}}
}

func (r *invalidPatternRule) Location() string { return r.location }
func (r *invalidPatternRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "invalid pattern rule"
}

type lengthRule struct {
	location    string
	min, max    int
	description string
}

func (r *lengthRule) Validate(payload fix.Payload) []ValidationError {
	value, ok := findString(payload, r.location)
	if !ok {
		return nil
	}
	n := len(value)
	if r.min > 0 && n < r.min {
		return []ValidationError{{Location: r.location, Rule: "length",
			Message:  fmt.Sprintf("field length %d is less than minimum %d", n, r.min),
			Expected: fmt.Sprintf("minimum %d characters", r.min), Actual: fmt.Sprintf("%d characters", n)}}
	}
	if r.max > 0 && n > r.max {
		return []ValidationError{{Location: r.location, Rule: "length",
			Message:  fmt.Sprintf("field length %d exceeds maximum %d", n, r.max),
			Expected: fmt.Sprintf("maximum %d characters", r.max), Actual: fmt.Sprintf("%d characters", n)}}
	}
	return nil
}

func (r *lengthRule) Location() string { return r.location }
func (r *lengthRule) Description() string {
	if r.description != "" {
		return r.description
	}
	switch {
	case r.min > 0 && r.max > 0:
		return fmt.Sprintf("%s length must be between %d and %d", r.location, r.min, r.max)
	case r.min > 0:
		return fmt.Sprintf("%s length must be at least %d", r.location, r.min)
	case r.max > 0:
		return fmt.Sprintf("%s length must be at most %d", r.location, r.max)
	default:
		return fmt.Sprintf("%s length validation", r.location)
	}
}

type oneOfRule struct {
	location    string
	allowed     []string
	description string
}

func (r *oneOfRule) Validate(payload fix.Payload) []ValidationError {
	value, ok := findString(payload, r.location)
	if !ok || value == "" {
		return nil
	}
	for _, a := range r.allowed {
		if value == a {
			return nil
		}
	}
	return []ValidationError{{Location: r.location, Rule: "oneOf", Message: "field value is not in allowed list",
		Expected: fmt.Sprintf("one of [%s]", strings.Join(r.allowed, ", ")), Actual: value}}
}

func (r *oneOfRule) Location() string { return r.location }
func (r *oneOfRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return fmt.Sprintf("%s must be one of [%s]", r.location, strings.Join(r.allowed, ", "))
}

type customRule struct {
	location    string
	fn          func(string) error
	description string
}

func (r *customRule) Validate(payload fix.Payload) []ValidationError {
	value, ok := findString(payload, r.location)
	if !ok {
		return nil
	}
	if err := r.fn(value); err != nil {
		return []ValidationError{{Location: r.location, Rule: "custom", Message: err.Error(), Actual: value}}
	}
	return nil
}

func (r *customRule) Location() string { return r.location }
func (r *customRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return fmt.Sprintf("%s custom validation", r.location)
}

// compositeRule combines multiple rules that all apply to the same
// location. All rules run; every error is collected.
type compositeRule struct {
	location    string
	rules       []Rule
	description string
}

func (r *compositeRule) Validate(payload fix.Payload) []ValidationError {
	var errs []ValidationError
	for _, rule := range r.rules {
		errs = append(errs, rule.Validate(payload)...)
	}
	return errs
}

func (r *compositeRule) Location() string { return r.location }
func (r *compositeRule) Description() string {
	if r.description != "" {
		return r.description
	}
	descs := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		descs = append(descs, rule.Description())
	}
	return strings.Join(descs, "; ")
}
