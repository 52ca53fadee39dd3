package validate

import "errors"

var errNotPositiveInteger = errors.New("value is not a positive integer")

// RuleSet is a collection of validation rules that can be combined and
// reused.
type RuleSet interface {
	Rules() []Rule
	Add(rules ...Rule) RuleSet
	Merge(other RuleSet) RuleSet
}

type ruleSet struct {
	rules []Rule
}

// NewRuleSet creates a new RuleSet with the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	rs := &ruleSet{rules: make([]Rule, 0, len(rules))}
	rs.rules = append(rs.rules, rules...)
	return rs
}

func (rs *ruleSet) Rules() []Rule {
	if rs.rules == nil {
		return []Rule{}
	}
	result := make([]Rule, len(rs.rules))
	copy(result, rs.rules)
	return result
}

func (rs *ruleSet) Add(rules ...Rule) RuleSet {
	rs.rules = append(rs.rules, rules...)
	return rs
}

func (rs *ruleSet) Merge(other RuleSet) RuleSet {
	if other == nil {
		return NewRuleSet(rs.rules...)
	}
	combined := make([]Rule, 0, len(rs.rules)+len(other.Rules()))
	combined = append(combined, rs.rules...)
	combined = append(combined, other.Rules()...)
	return NewRuleSet(combined...)
}

// HeaderRules returns the RuleSet applying to every message's standard
// header fields: SenderCompID and TargetCompID must be present and
// non-blank.
func HeaderRules() RuleSet {
	return NewRuleSet(
		At("SenderCompID").Required().WithDescription("SenderCompID is required").Build(),
		At("TargetCompID").Required().WithDescription("TargetCompID is required").Build(),
	)
}

// LogonRules returns the RuleSet for Logon messages.
func LogonRules() RuleSet {
	return HeaderRules().Merge(NewRuleSet(
		At("EncryptMethod").OneOf("0").WithDescription("only EncryptMethod=0 (none) is supported").Build(),
		At("HeartBtInt").Custom(positiveInteger).WithDescription("HeartBtInt must be a positive integer").Build(),
	))
}

// NewOrderSingleRules returns the RuleSet for NewOrderSingle messages.
func NewOrderSingleRules() RuleSet {
	return HeaderRules().Merge(NewRuleSet(
		At("ClOrdID").Required().Length(1, 20).Build(),
		At("Symbol").Required().Build(),
		At("Side").OneOf("1", "2", "5", "6").WithDescription("Side must be Buy, Sell, Sell Short, or Sell Short Exempt").Build(),
		At("OrdType").OneOf("1", "2", "3", "4").WithDescription("OrdType must be Market, Limit, Stop, or Stop Limit").Build(),
	))
}

// ExecutionReportRules returns the RuleSet for ExecutionReport
// messages.
func ExecutionReportRules() RuleSet {
	return HeaderRules().Merge(NewRuleSet(
		At("OrderID").Required().Build(),
		At("ExecType").Required().Build(),
		At("OrdStatus").Required().Build(),
	))
}

// StandardRules returns the minimum RuleSet applying to every message.
func StandardRules() RuleSet {
	return HeaderRules()
}

func positiveInteger(value string) error {
	for _, r := range value {
		if r < '0' || r > '9' {
			return errNotPositiveInteger
		}
	}
	if value == "" || value == "0" {
		return errNotPositiveInteger
	}
	return nil
}
