// Package discount evaluates promotional codes against an injectable rule table.
package discount

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	Percentage Kind = "percentage"
	Fixed      Kind = "fixed"
)

// Rule describes a single promotional code. Rules are static for the
// lifetime of the process; the table is injected so tests and future
// dynamic loading need no code change.
type Rule struct {
	Kind        Kind
	Value       decimal.Decimal
	Description string
}

// Applied captures the discount actually taken off an order, with the
// amount already rounded to two decimal places.
type Applied struct {
	Code        string          `json:"code"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Outcome is the result of evaluating a code against a price.
// An unknown code is not an error: Valid is false and FinalPrice is
// the original price unchanged.
type Outcome struct {
	Valid      bool            `json:"valid"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
	Applied    *Applied        `json:"discount"`
}

type Evaluator struct {
	rules map[string]Rule
}

func NewEvaluator(rules map[string]Rule) *Evaluator {
	return &Evaluator{rules: rules}
}

// DefaultRules is the storefront's flat promotional code table.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"BETA50":    {Kind: Percentage, Value: decimal.NewFromInt(50), Description: "50% off beta discount"},
		"SAVE20":    {Kind: Percentage, Value: decimal.NewFromInt(20), Description: "20% off"},
		"FIRST10":   {Kind: Percentage, Value: decimal.NewFromInt(10), Description: "10% off first order"},
		"PODCAST25": {Kind: Percentage, Value: decimal.NewFromInt(25), Description: "25% off for podcasters"},
	}
}

// Evaluate applies code to originalPrice. Codes are matched
// case-insensitively with surrounding whitespace ignored. Both the
// discount amount and the final price are rounded to two decimal
// places independently. Pure; safe for concurrent use.
func (e *Evaluator) Evaluate(originalPrice decimal.Decimal, code string) Outcome {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	rule, ok := e.rules[normalized]
	if !ok {
		return Outcome{Valid: false, FinalPrice: originalPrice}
	}

	var amount, finalPrice decimal.Decimal
	switch rule.Kind {
	case Percentage:
		amount = originalPrice.Mul(rule.Value).Div(decimal.NewFromInt(100))
		finalPrice = originalPrice.Sub(amount)
	case Fixed:
		amount = rule.Value
		finalPrice = decimal.Max(decimal.Zero, originalPrice.Sub(amount))
	}

	return Outcome{
		Valid:      true,
		FinalPrice: finalPrice.Round(2),
		Applied: &Applied{
			Code:        normalized,
			Amount:      amount.Round(2),
			Description: rule.Description,
		},
	}
}
