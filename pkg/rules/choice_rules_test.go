package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formcheck/formcheck/pkg/rules"
)

func TestOneOf(t *testing.T) {
	t.Parallel()
	rule := rules.OneOf("lb", "kg")

	t.Run("passes allowed options", func(t *testing.T) {
		assert.True(t, rule(rules.StringValue("lb")).Valid)
		assert.True(t, rule(rules.StringValue("kg")).Valid)
	})

	t.Run("fails other values", func(t *testing.T) {
		res := rule(rules.StringValue("st"))
		assert.False(t, res.Valid)
		assert.Equal(t, "Must be one of: lb, kg", res.Message)
		assert.Equal(t, "validation.one_of", res.Key)
	})

	t.Run("comparison is exact", func(t *testing.T) {
		assert.False(t, rule(rules.StringValue("LB")).Valid)
	})
}
