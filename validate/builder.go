package validate

import (
	"regexp"

	"github.com/go-fixproto/fixproto/fix"
)

// RuleBuilder provides a fluent interface for constructing validation
// rules targeting one named field.
type RuleBuilder interface {
	Required() RuleBuilder
	Value(expected string) RuleBuilder
	Pattern(pattern string) RuleBuilder
	Length(minLen, maxLen int) RuleBuilder
	OneOf(values ...string) RuleBuilder
	Custom(fn func(value string) error) RuleBuilder
	WithDescription(desc string) RuleBuilder
	Build() Rule
}

type ruleBuilder struct {
	location    string
	description string
	rules       []Rule
}

// At creates a new RuleBuilder targeting the named field, component,
// or group.
func At(name string) RuleBuilder {
	return &ruleBuilder{location: name}
}

func (b *ruleBuilder) Required() RuleBuilder {
	b.rules = append(b.rules, &requiredRule{location: b.location})
	return b
}

func (b *ruleBuilder) Value(expected string) RuleBuilder {
	b.rules = append(b.rules, &valueRule{location: b.location, expected: expected})
	return b
}

func (b *ruleBuilder) Pattern(pattern string) RuleBuilder {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		b.rules = append(b.rules, &invalidPatternRule{location: b.location, pattern: pattern, err: err})
		return b
	}
	b.rules = append(b.rules, &patternRule{location: b.location, pattern: compiled})
	return b
}

func (b *ruleBuilder) Length(minLen, maxLen int) RuleBuilder {
	b.rules = append(b.rules, &lengthRule{location: b.location, min: minLen, max: maxLen})
	return b
}

func (b *ruleBuilder) OneOf(values ...string) RuleBuilder {
	b.rules = append(b.rules, &oneOfRule{location: b.location, allowed: values})
	return b
}

func (b *ruleBuilder) Custom(fn func(value string) error) RuleBuilder {
	b.rules = append(b.rules, &customRule{location: b.location, fn: fn})
	return b
}

func (b *ruleBuilder) WithDescription(desc string) RuleBuilder {
	b.description = desc
	return b
}

// Build constructs the final Rule. No rules added yields a no-op rule;
// exactly one yields that rule directly; more than one yields a
// compositeRule that runs them all and collects every error.
func (b *ruleBuilder) Build() Rule {
	if len(b.rules) == 0 {
		return &noopRule{location: b.location, description: b.description}
	}

	if b.description != "" {
		for _, rule := range b.rules {
			switch r := rule.(type) {
			case *requiredRule:
				r.description = b.description
			case *valueRule:
				r.description = b.description
			case *patternRule:
				r.description = b.description
			case *lengthRule:
				r.description = b.description
			case *oneOfRule:
				r.description = b.description
			case *customRule:
				r.description = b.description
			case *invalidPatternRule:
				r.description = b.description
			}
		}
	}

	if len(b.rules) == 1 {
		return b.rules[0]
	}
	return &compositeRule{location: b.location, rules: b.rules, description: b.description}
}

type noopRule struct {
	location    string
	description string
}

func (r *noopRule) Validate(fix.Payload) []ValidationError {
	return nil
}

func (r *noopRule) Location() string { return r.location }
func (r *noopRule) Description() string {
	if r.description != "" {
		return r.description
	}
	return "no validation"
}
