package rules

// Rule is a pure evaluator: it maps a raw value to a Result. Rules never
// panic and never perform I/O; all failure is communicated through the
// returned Result.
type Rule func(Value) Result

// Compose chains rules in order and short-circuits on the first failure.
// Presence checks placed first therefore mask downstream messages: a
// missing value reports "Required", never a misleading range message.
func Compose(rs ...Rule) Rule {
	return func(v Value) Result {
		for _, r := range rs {
			if res := r(v); !res.Valid {
				return res
			}
		}
		return OK()
	}
}

// Optional wraps a rule so that absent and empty values pass without
// evaluating it. Use for fields that are not required but still carry
// constraints when supplied.
func Optional(r Rule) Rule {
	return func(v Value) Result {
		if v.IsEmpty() {
			return OK()
		}
		return r(v)
	}
}
