// Package validate provides business-rule validation for FIX payloads,
// for rules a schema can't express: cross-field consistency, value
// patterns, and allowed-subset checks narrower than a field's full
// enumeration.
//
// It runs after parse has already structurally validated a message
// (required fields present, types well-formed, groups balanced), and
// it inspects a single already-parsed payload, never session or order
// state. Some bundled rule sets repeat presence checks the FIX 4.4
// dictionary also makes (for example SenderCompID and TargetCompID in
// HeaderRules).
//
// # Basic usage
//
//	v := validate.New(
//	    validate.At("ClOrdID").Required().Build(),
//	    validate.At("Side").OneOf("1", "2").Build(),
//	)
//	result := v.Validate(parsed.Payload)
//	if !result.Valid() {
//	    for _, err := range result.Errors() {
//	        log.Printf("validation error: %v", err)
//	    }
//	}
//
// # Built-in rules
//
//	validate.At("ClOrdID").Required()
//	validate.At("OrdType").Value("1")
//	validate.At("ClOrdID").Pattern(`^[A-Z0-9-]+$`)
//	validate.At("ClOrdID").Length(1, 20)
//	validate.At("Side").OneOf("1", "2", "5", "6")
//	validate.At("Price").Custom(func(value string) error { ... })
//
// # Rule sets
//
// Rules for a whole message type combine via RuleSet:
//
//	rules := validate.NewOrderSingleRules()
//	v := validate.NewWithRuleSet(rules)
package validate
