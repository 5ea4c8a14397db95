package validator

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the day-first layout used for user-entered dates.
const DateLayout = "02/01/2006"

var defaultDateLayouts = []string{DateLayout, time.DateOnly, time.RFC3339}

// ParseDate reads s with the first matching layout. Without layouts it tries
// DateLayout, ISO dates and RFC 3339 timestamps, in that order.
func ParseDate(s string, layouts ...string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = defaultDateLayouts
	}
	var errs []error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return time.Time{}, errors.Join(append([]error{ErrInvalidDate}, errs...)...)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DaysBetween returns the signed number of calendar days from b to a.
// Clock time and DST shifts are ignored: only the dates count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(da.Sub(db).Hours() / 24)
}

// DateBeforeDay validates that value falls strictly before the calendar day of ref.
func DateBeforeDay(field string, value, ref time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(StartOfDay(ref))
		},
		Error: newError(field, "date must be in the past", "validation.date_past", nil),
	}
}

// DateOnOrAfterDay validates that value falls on or after the calendar day of ref.
// Any time on ref's day passes.
func DateOnOrAfterDay(field string, value, ref time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !StartOfDay(ref).After(EndOfDay(value))
		},
		Error: newError(field, "date must be today or in the future", "validation.date_future", nil),
	}
}

// DateNotAfter validates that the day of value is not later than the day of limit.
func DateNotAfter(field string, value, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			return DaysBetween(value, limit) <= 0
		},
		Error: newError(field,
			fmt.Sprintf("date must not be after %s", limit.Format(DateLayout)),
			"validation.date_not_after",
			map[string]any{"limit": limit.Format(DateLayout)}),
	}
}

// DateNotBefore validates that the day of value is not earlier than the day of limit.
func DateNotBefore(field string, value, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			return DaysBetween(value, limit) >= 0
		},
		Error: newError(field,
			fmt.Sprintf("date must not be before %s", limit.Format(DateLayout)),
			"validation.date_not_before",
			map[string]any{"limit": limit.Format(DateLayout)}),
	}
}

// MaxPeriod validates that a and b are at most maxDays calendar days apart, in either order.
func MaxPeriod(field string, a, b time.Time, maxDays int) Rule {
	return Rule{
		Check: func() bool {
			days := DaysBetween(a, b)
			if days < 0 {
				days = -days
			}
			return days <= maxDays
		},
		Error: newError(field,
			fmt.Sprintf("period must not exceed %d days", maxDays),
			"validation.max_period",
			map[string]any{"maxPeriod": maxDays}),
	}
}
