package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formcheck/formcheck/pkg/rules"
)

func TestRequired(t *testing.T) {
	t.Parallel()
	rule := rules.Required()

	t.Run("fails for absent value", func(t *testing.T) {
		res := rule(rules.AbsentValue())
		assert.False(t, res.Valid)
		assert.Equal(t, "Required", res.Message)
		assert.Equal(t, "validation.required", res.Key)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		res := rule(rules.StringValue(""))
		assert.False(t, res.Valid)
		assert.Equal(t, "Required", res.Message)
	})

	t.Run("passes for non-empty string", func(t *testing.T) {
		res := rule(rules.StringValue("John"))
		assert.True(t, res.Valid)
		assert.Empty(t, res.Message)
	})

	t.Run("passes for numeric zero", func(t *testing.T) {
		res := rule(rules.NumberValue(0))
		assert.True(t, res.Valid)
	})

	t.Run("passes for whitespace string", func(t *testing.T) {
		// Presence only checks emptiness; trim upstream with a normalizer
		// if whitespace-only input should count as missing.
		res := rule(rules.StringValue("  "))
		assert.True(t, res.Valid)
	})
}
