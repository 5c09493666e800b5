package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

func TestClassifyStrength(t *testing.T) {
	t.Parallel()

	t.Run("buckets by length", func(t *testing.T) {
		t.Parallel()
		for n := 0; n <= 9; n++ {
			assert.Equal(t, validator.StrengthLow, validator.ClassifyStrength(strings.Repeat("a", n)), "length %d", n)
		}
		for n := 10; n <= 12; n++ {
			assert.Equal(t, validator.StrengthMid, validator.ClassifyStrength(strings.Repeat("a", n)), "length %d", n)
		}
		for n := 13; n <= 40; n++ {
			assert.Equal(t, validator.StrengthHigh, validator.ClassifyStrength(strings.Repeat("a", n)), "length %d", n)
		}
	})

	t.Run("is monotonic in length", func(t *testing.T) {
		t.Parallel()
		prev := validator.StrengthLow
		for n := 0; n < 30; n++ {
			cur := validator.ClassifyStrength(strings.Repeat("x", n))
			assert.GreaterOrEqual(t, int(cur), int(prev))
			prev = cur
		}
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.StrengthLow, validator.ClassifyStrength(strings.Repeat("é", 9)))
	})

	t.Run("independent of password validity", func(t *testing.T) {
		t.Parallel()
		tooLong := "Ab" + strings.Repeat("c", 25)
		assert.False(t, validator.IsPassword(tooLong))
		assert.Equal(t, validator.StrengthHigh, validator.ClassifyStrength(tooLong))

		short := "Abcdef1"
		assert.True(t, validator.IsPassword(short))
		assert.Equal(t, validator.StrengthLow, validator.ClassifyStrength(short))
	})

	t.Run("labels", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "low", validator.StrengthLow.String())
		assert.Equal(t, "mid", validator.StrengthMid.String())
		assert.Equal(t, "high", validator.StrengthHigh.String())
	})
}
