package dates

import "github.com/formcheck/formcheck/pkg/rules"

// Rule adapts date parsing to a field rule: the field passes when its
// string form deserializes to a real calendar day.
func Rule() rules.Rule {
	return func(v rules.Value) rules.Result {
		if _, err := Deserialize(v.Str()); err != nil {
			return rules.FailKeyed("Must be a date (YYYY-MM-DD)", "validation.date", nil)
		}
		return rules.OK()
	}
}
