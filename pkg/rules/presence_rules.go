package rules

// Required fails for absent values and empty strings. Numeric zero is a
// present value and passes; only genuinely missing input is rejected.
func Required() Rule {
	return func(v Value) Result {
		if v.IsEmpty() {
			return FailKeyed("Required", "validation.required", nil)
		}
		return OK()
	}
}
