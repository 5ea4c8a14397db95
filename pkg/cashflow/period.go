package cashflow

import (
	"errors"
	"slices"
	"time"

	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// Control names of the statement period form.
const (
	FieldInitialDate = "initial_date"
	FieldFinalDate   = "final_date"
)

// DefaultMaxPeriodDays bounds a statement period when none is configured.
const DefaultMaxPeriodDays = 31

// Messages of the period form's cross-field rules. They are matched when a
// rule clears the error it set on the other date.
const (
	MsgPeriodTooLong = "period too long"
	MsgDateSequence  = "final date before initial date"
)

// Translation keys of the period form's own rules.
const (
	KeyDate         = "validation.date"
	KeyDateSequence = "validation.date_sequence"
)

// Period is an inclusive range of calendar days.
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod spans the calendar days of from and to. A reversed range is rejected.
func NewPeriod(from, to time.Time) (Period, error) {
	if validator.DaysBetween(to, from) < 0 {
		return Period{}, ErrInvalidPeriod
	}
	return Period{From: validator.StartOfDay(from), To: validator.EndOfDay(to)}, nil
}

// Contains reports whether t falls on one of the period's days.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	return validator.DaysBetween(p.To, p.From) + 1
}

// NewPeriodForm builds the statement filter: two required dates, in order,
// at most maxDays apart. A non-positive maxDays uses DefaultMaxPeriodDays.
func NewPeriodForm(maxDays int, opts ...form.Option) *form.Form {
	if maxDays <= 0 {
		maxDays = DefaultMaxPeriodDays
	}

	f := form.New(opts...)
	_, _ = f.Add(FieldInitialDate, form.Empty(),
		form.Required(""),
		form.WithKey(KeyDate, form.Predicate(isDate, "invalid date")),
	)
	_, _ = f.Add(FieldFinalDate, form.Empty(),
		form.Required(""),
		form.WithKey(KeyDate, form.Predicate(isDate, "invalid date")),
	)
	_ = f.AddCross(FieldInitialDate, FieldFinalDate,
		form.WithCrossKey(KeyDateSequence, form.InitialDateSequence(MsgDateSequence)),
		form.DatesPeriod(maxDays, MsgPeriodTooLong),
	)
	_ = f.AddCross(FieldFinalDate, FieldInitialDate,
		form.WithCrossKey(KeyDateSequence, form.FinalDateSequence(MsgDateSequence)),
		form.DatesPeriod(maxDays, MsgPeriodTooLong),
	)
	return f
}

// PeriodFromForm validates f and returns the selected period.
func PeriodFromForm(f *form.Form) (Period, error) {
	if !f.Validate() {
		return Period{}, errors.Join(ErrInvalidForm, f.Err())
	}
	from, _ := f.Value(FieldInitialDate).Time()
	to, _ := f.Value(FieldFinalDate).Time()
	return NewPeriod(from, to)
}

// InPeriod returns the entries created within p, oldest first.
func InPeriod(p Period, entries ...Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if p.Contains(e.CreatedAt) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func isDate(v form.Value) bool {
	_, ok := v.Time()
	return ok
}
