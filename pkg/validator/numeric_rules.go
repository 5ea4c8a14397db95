package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads the longest numeric prefix of s, skipping leading
// whitespace: "12.5kg" yields 12.5, " -3e2x" yields -300 and "Infinity" yields +Inf.
// Returns false when s has no numeric prefix.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")

	i := 0
	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return sign * math.Inf(1), true
	}

	mantissa := i
	intDigits := scanDigits(s, i)
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = scanDigits(s, i+1)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := scanDigits(s, j); n > 0 {
			i = j + n
		}
	}

	f, err := strconv.ParseFloat(s[mantissa:i], 64)
	if err != nil {
		// Out-of-range exponents still carry a usable magnitude.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	return sign * f, true
}

func scanDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && s[from+n] >= '0' && s[from+n] <= '9' {
		n++
	}
	return n
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: newError(field, fmt.Sprintf("must be at least %v", min), "validation.min_value",
			map[string]any{"minValue": min}),
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: newError(field, fmt.Sprintf("must be at most %v", max), "validation.max_value",
			map[string]any{"maxValue": max}),
	}
}
