package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formcheck/formcheck/pkg/dates"
	"github.com/formcheck/formcheck/pkg/rules"
)

func TestSerialize(t *testing.T) {
	t.Parallel()
	t.Run("renders ISO form with padding", func(t *testing.T) {
		s, err := dates.Serialize(dates.Date{Year: 2024, Month: 2, Day: 9})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-09", s)
	})

	t.Run("day zero is an error, not a panic", func(t *testing.T) {
		_, err := dates.Serialize(dates.Date{Year: 2024, Month: 1, Day: 0})
		assert.ErrorIs(t, err, dates.ErrOutOfRange)
	})

	t.Run("month thirteen is an error", func(t *testing.T) {
		_, err := dates.Serialize(dates.Date{Year: 2024, Month: 13, Day: 1})
		assert.ErrorIs(t, err, dates.ErrOutOfRange)
	})

	t.Run("respects month lengths and leap years", func(t *testing.T) {
		_, err := dates.Serialize(dates.Date{Year: 2024, Month: 2, Day: 29})
		assert.NoError(t, err)
		_, err = dates.Serialize(dates.Date{Year: 2023, Month: 2, Day: 29})
		assert.ErrorIs(t, err, dates.ErrOutOfRange)
		_, err = dates.Serialize(dates.Date{Year: 1900, Month: 2, Day: 29})
		assert.ErrorIs(t, err, dates.ErrOutOfRange)
		_, err = dates.Serialize(dates.Date{Year: 2000, Month: 2, Day: 29})
		assert.NoError(t, err)
	})
}

func TestDeserialize(t *testing.T) {
	t.Parallel()
	t.Run("parses ISO form", func(t *testing.T) {
		d, err := dates.Deserialize("2024-02-09")
		require.NoError(t, err)
		assert.Equal(t, dates.Date{Year: 2024, Month: 2, Day: 9}, d)
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		for _, s := range []string{"", "2024/02/09", "24-02-09", "2024-2-9", "2024-02-0x", "+024-02-09"} {
			_, err := dates.Deserialize(s)
			assert.ErrorIs(t, err, dates.ErrMalformed, s)
		}
	})

	t.Run("rejects impossible days", func(t *testing.T) {
		for _, s := range []string{"2024-00-10", "2024-13-10", "2024-02-30", "2023-02-29"} {
			_, err := dates.Deserialize(s)
			assert.ErrorIs(t, err, dates.ErrOutOfRange, s)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	cases := []dates.Date{
		{Year: 0, Month: 1, Day: 1},
		{Year: 1970, Month: 1, Day: 1},
		{Year: 2000, Month: 2, Day: 29},
		{Year: 2024, Month: 12, Day: 31},
		{Year: 9999, Month: 12, Day: 31},
	}
	for _, d := range cases {
		s, err := dates.Serialize(d)
		require.NoError(t, err)
		back, err := dates.Deserialize(s)
		require.NoError(t, err)
		assert.Equal(t, d, back, s)
	}
}

func TestDays(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 31, dates.Days(2024, 1))
	assert.Equal(t, 29, dates.Days(2024, 2))
	assert.Equal(t, 28, dates.Days(2023, 2))
	assert.Equal(t, 30, dates.Days(2024, 4))
	assert.Equal(t, 0, dates.Days(2024, 13))
}

func TestRule(t *testing.T) {
	t.Parallel()
	rule := dates.Rule()
	assert.True(t, rule(rules.StringValue("2024-02-29")).Valid)

	res := rule(rules.StringValue("not-a-date"))
	assert.False(t, res.Valid)
	assert.Equal(t, "Must be a date (YYYY-MM-DD)", res.Message)
}
