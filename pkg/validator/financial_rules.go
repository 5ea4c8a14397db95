package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: newError(field, "amount must be positive", "validation.positive_amount", nil),
	}
}

// PositiveDecimal is PositiveAmount for exact decimal amounts.
func PositiveDecimal(field string, value decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.IsPositive()
		},
		Error: newError(field, "amount must be positive", "validation.positive_amount", nil),
	}
}

// MinDecimal validates that an exact amount is greater than or equal to min.
func MinDecimal(field string, value, min decimal.Decimal) Rule {
	return Rule{
		Check: func() bool {
			return value.GreaterThanOrEqual(min)
		},
		Error: newError(field, "must be at least "+min.String(), "validation.min_value",
			map[string]any{"minValue": min.String()}),
	}
}

// DecimalPlaces rejects amounts with more fractional digits than the currency allows.
// Trailing zeros do not count: 1.50 has one significant decimal place.
func DecimalPlaces(field string, value decimal.Decimal, maxPlaces int) Rule {
	return Rule{
		Check: func() bool {
			return value.Equal(value.Round(int32(maxPlaces)))
		},
		Error: newError(field,
			fmt.Sprintf("amount must have at most %d decimal places", maxPlaces),
			"validation.decimal_places",
			map[string]any{"places": maxPlaces}),
	}
}
