package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluateKnownCodes(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	tests := []struct {
		name       string
		price      string
		code       string
		finalPrice string
		amount     string
	}{
		{"save20 on round price", "100", "SAVE20", "80", "20"},
		{"beta50 rounds half up", "49.99", "BETA50", "25", "25"},
		{"first10", "200", "FIRST10", "180", "20"},
		{"podcast25", "80", "PODCAST25", "60", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.Evaluate(price(tt.price), tt.code)

			require.True(t, out.Valid)
			require.NotNil(t, out.Applied)
			assert.True(t, out.FinalPrice.Equal(price(tt.finalPrice)), "final price %s", out.FinalPrice)
			assert.True(t, out.Applied.Amount.Equal(price(tt.amount)), "amount %s", out.Applied.Amount)
			assert.Equal(t, tt.code, out.Applied.Code)
		})
	}
}

func TestEvaluateNormalizesCode(t *testing.T) {
	e := NewEvaluator(DefaultRules())
	canonical := e.Evaluate(price("100"), "SAVE20")

	for _, variant := range []string{"save20", " SAVE20 ", "Save20", "\tsave20\n"} {
		out := e.Evaluate(price("100"), variant)

		require.True(t, out.Valid, "variant %q", variant)
		assert.Equal(t, "SAVE20", out.Applied.Code)
		assert.True(t, out.FinalPrice.Equal(canonical.FinalPrice))
		assert.Equal(t, canonical.Applied.Description, out.Applied.Description)
	}
}

func TestEvaluateUnknownCode(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	out := e.Evaluate(price("59.99"), "NOPE")

	assert.False(t, out.Valid)
	assert.Nil(t, out.Applied)
	assert.True(t, out.FinalPrice.Equal(price("59.99")))
}

func TestEvaluateFixedClampsAtZero(t *testing.T) {
	e := NewEvaluator(map[string]Rule{
		"TENNER": {Kind: Fixed, Value: decimal.NewFromInt(10), Description: "£10 off"},
	})

	out := e.Evaluate(price("7.50"), "tenner")

	require.True(t, out.Valid)
	assert.True(t, out.FinalPrice.IsZero(), "final price %s", out.FinalPrice)
	assert.True(t, out.Applied.Amount.Equal(price("10")))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := NewEvaluator(DefaultRules())

	first := e.Evaluate(price("123.45"), "beta50")
	second := e.Evaluate(price("123.45"), "beta50")

	assert.Equal(t, first.Valid, second.Valid)
	assert.True(t, first.FinalPrice.Equal(second.FinalPrice))
	assert.True(t, first.Applied.Amount.Equal(second.Applied.Amount))
}
