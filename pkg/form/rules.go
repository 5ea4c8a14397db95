package form

import (
	"time"

	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// ValidatorFunc checks a single control. It returns nil when the control is valid.
// A nil control is always invalid.
type ValidatorFunc func(c *Control) *Error

// CrossValidatorFunc checks self against a sibling control. Besides the
// outcome for self it returns an Effect the form applies to the sibling.
type CrossValidatorFunc func(self, sibling *Control) (*Error, Effect)

// Clock supplies the current time to date rules. A nil Clock uses time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Required fails for a missing value, an empty string or an empty list.
func Required(msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.RequiredAny("", nil))
		}
		return fromRule(msg, validator.RequiredAny(c.name, c.value.Interface()))
	}
}

// Email accepts text addresses of 4 to 100 characters.
func Email(msg string) ValidatorFunc {
	return textRule(msg, validator.ValidEmail)
}

func CPF(msg string) ValidatorFunc {
	return textRule(msg, validator.ValidCPF)
}

func CNPJ(msg string) ValidatorFunc {
	return textRule(msg, validator.ValidCNPJ)
}

// Document accepts either a CPF or a CNPJ.
func Document(msg string) ValidatorFunc {
	return textRule(msg, validator.ValidDocument)
}

// Password accepts 7 to 50 characters mixing letters and digits.
func Password(msg string) ValidatorFunc {
	return textRule(msg, validator.ValidPassword)
}

// InputSearch requires an option picked from a search list, i.e. an Object
// with a positive id.
func InputSearch(msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.ValidReference("", 0))
		}
		ref, ok := c.value.AsObject()
		if !ok {
			return failure(msg, validator.ValidReference(c.name, 0))
		}
		return fromRule(msg, validator.ValidReference(c.name, ref.ID))
	}
}

// HourMinute checks an "HHMM" time. An empty value fails. Values that are
// not text, or whose digits cannot be read, pass.
func HourMinute(msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil || !c.value.HasContent() {
			return failure(msg, validator.ValidHourMinute("", ""))
		}
		s, ok := c.value.AsText()
		if !ok {
			return nil
		}
		return fromRule(msg, validator.ValidHourMinute(c.name, s))
	}
}

// MinValue fails when the value reads as a number below min.
// Absent or non-numeric values pass.
func MinValue(min float64, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.MinNum("", 0, min))
		}
		n, ok := numeric(c)
		if !ok {
			return nil
		}
		return fromRule(msg, validator.MinNum(c.name, n, min))
	}
}

// MaxValue fails when the value reads as a number above max.
func MaxValue(max float64, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.MaxNum("", 0, max))
		}
		n, ok := numeric(c)
		if !ok {
			return nil
		}
		return fromRule(msg, validator.MaxNum(c.name, n, max))
	}
}

// MinLength fails when text has fewer than min runes or a list fewer than
// min items. Empty text and other kinds pass; an empty list is checked.
func MinLength(min int, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.MinLen("", "", min))
		}
		if items, ok := c.value.AsList(); ok {
			return fromRule(msg, validator.MinItems(c.name, items, min))
		}
		s, ok := c.value.AsText()
		if !ok || s == "" {
			return nil
		}
		return fromRule(msg, validator.MinLen(c.name, s, min))
	}
}

// MaxLength fails when text has more than max runes or a list more than max
// items. A bound of 0 is enforced, so any non-empty text fails it.
func MaxLength(max int, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.MaxLen("", "", max))
		}
		if items, ok := c.value.AsList(); ok {
			return fromRule(msg, validator.MaxItems(c.name, items, max))
		}
		s, ok := c.value.AsText()
		if !ok || s == "" {
			return nil
		}
		return fromRule(msg, validator.MaxLen(c.name, s, max))
	}
}

// ArrayLength requires a list to hold exactly n items. Other kinds pass.
func ArrayLength(n int, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, validator.LenSlice[Value]("", nil, n))
		}
		items, ok := c.value.AsList()
		if !ok {
			return nil
		}
		return fromRule(msg, validator.LenSlice(c.name, items, n))
	}
}

// Predicate turns an arbitrary check on the value into a rule.
func Predicate(check func(Value) bool, msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return &Error{Message: msg, Key: KeyInvalid}
		}
		return fromRule(msg, validator.Custom(c.name, msg, KeyInvalid, func() bool {
			return check(c.value)
		}))
	}
}

// Check adapts a validator rule built from the control's value. When build
// reports false the rule does not apply and the value passes.
func Check(build func(field string, v Value) (validator.Rule, bool), msg string) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return &Error{Message: msg, Key: KeyInvalid}
		}
		r, ok := build(c.name, c.value)
		if !ok {
			return nil
		}
		return fromRule(msg, r)
	}
}

// WithKey sets the translation key of the errors rule reports. Message and
// params are kept.
func WithKey(key string, rule ValidatorFunc) ValidatorFunc {
	return func(c *Control) *Error {
		return rule(c).withKey(key)
	}
}

// WithCrossKey is WithKey for cross-field rules, including the errors they
// place on the sibling.
func WithCrossKey(key string, rule CrossValidatorFunc) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		e, effect := rule(self, sibling)
		if effect.Kind == EffectSetError {
			effect.Err = effect.Err.withKey(key)
		}
		return e.withKey(key), effect
	}
}

// OnlyBeforeToday requires a date strictly before the current day.
// An absent value passes; an unreadable one fails.
func OnlyBeforeToday(clock Clock, msg string) ValidatorFunc {
	return dateRule(clock, msg, validator.DateBeforeDay)
}

// OnlyAfterToday requires a date on or after the current day.
func OnlyAfterToday(clock Clock, msg string) ValidatorFunc {
	return dateRule(clock, msg, validator.DateOnOrAfterDay)
}

// Equals requires self and sibling to hold equal values when both are
// present. On a match the sibling's error is cleared.
func Equals(msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return &Error{Message: msg, Key: keyEquals}, NoEffect
		}
		if !self.value.Truthy() || !sibling.value.Truthy() {
			return nil, NoEffect
		}
		if err := fromRule(msg, validator.Custom(self.name, msg, keyEquals, func() bool {
			return self.value.Equal(sibling.value)
		})); err != nil {
			return err, NoEffect
		}
		return nil, ClearError()
	}
}

// Matches is Equals for controls that carry their own rules, like a password
// and its confirmation. On a match it clears only a sibling error carrying
// msg, so the sibling's other failures stay visible.
func Matches(msg string) CrossValidatorFunc {
	equals := Equals(msg)
	return func(self, sibling *Control) (*Error, Effect) {
		err, effect := equals(self, sibling)
		if effect.Kind == EffectClearError {
			effect = ClearErrorIf(msg)
		}
		return err, effect
	}
}

// MinCtrlValue uses the sibling's numeric value as the lower bound.
func MinCtrlValue(msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return failure(msg, validator.MinNum("", 0, 0.0)), NoEffect
		}
		n, ok := numeric(self)
		bound, bok := numeric(sibling)
		if !ok || !bok {
			return nil, NoEffect
		}
		return fromRule(msg, validator.MinNum(self.name, n, bound)), NoEffect
	}
}

// MaxCtrlValue uses the sibling's numeric value as the upper bound.
func MaxCtrlValue(msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return failure(msg, validator.MaxNum("", 0, 0.0)), NoEffect
		}
		n, ok := numeric(self)
		bound, bok := numeric(sibling)
		if !ok || !bok {
			return nil, NoEffect
		}
		return fromRule(msg, validator.MaxNum(self.name, n, bound)), NoEffect
	}
}

// DatesPeriod limits the distance between self and sibling to maxDays
// calendar days in either direction. Back in range, it clears a sibling
// error carrying the same message.
func DatesPeriod(maxDays int, msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return failure(msg, validator.MaxPeriod("", time.Time{}, time.Time{}, maxDays)), NoEffect
		}
		a, b, ok := datePair(self, sibling)
		if !ok {
			return nil, NoEffect
		}
		if err := fromRule(msg, validator.MaxPeriod(self.name, a, b, maxDays)); err != nil {
			return err, NoEffect
		}
		return nil, ClearErrorIf(msg)
	}
}

// InitialDateSequence is attached to the initial date of a range. It never
// fails itself: when the initial date is after the final one, the error is
// placed on the final date sibling, which is marked touched.
func InitialDateSequence(msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return failure(msg, validator.DateNotBefore("", time.Time{}, time.Time{})), NoEffect
		}
		initial, final, ok := datePair(self, sibling)
		if !ok {
			return nil, NoEffect
		}
		if err := fromRule(msg, validator.DateNotBefore(sibling.name, final, initial)); err != nil {
			return nil, SetError(err)
		}
		return nil, ClearErrorIf(msg)
	}
}

// FinalDateSequence is attached to the final date of a range and fails when
// it falls before the initial date sibling.
func FinalDateSequence(msg string) CrossValidatorFunc {
	return func(self, sibling *Control) (*Error, Effect) {
		if self == nil || sibling == nil {
			return failure(msg, validator.DateNotBefore("", time.Time{}, time.Time{})), NoEffect
		}
		final, initial, ok := datePair(self, sibling)
		if !ok {
			return nil, NoEffect
		}
		return fromRule(msg, validator.DateNotBefore(self.name, final, initial)), NoEffect
	}
}

const keyEquals = "validation.equals"

// textRule adapts a string rule. Values other than text fail.
func textRule(msg string, rule func(field, value string) validator.Rule) ValidatorFunc {
	return func(c *Control) *Error {
		if c == nil {
			return failure(msg, rule("", ""))
		}
		s, ok := c.value.AsText()
		if !ok {
			return failure(msg, rule(c.name, ""))
		}
		return fromRule(msg, rule(c.name, s))
	}
}

// dateRule adapts a rule comparing the control's date with the current day.
// The date is moved onto the clock's location keeping its calendar day.
func dateRule(clock Clock, msg string, rule func(field string, value, ref time.Time) validator.Rule) ValidatorFunc {
	return func(c *Control) *Error {
		now := clock.now()
		if c == nil {
			return failure(msg, rule("", time.Time{}, now))
		}
		if !c.value.Truthy() {
			return nil
		}
		t, ok := c.value.Time()
		if !ok {
			return failure(msg, rule(c.name, time.Time{}, now))
		}
		y, m, d := t.Date()
		return fromRule(msg, rule(c.name, time.Date(y, m, d, 0, 0, 0, 0, now.Location()), now))
	}
}

// numeric reads a present value as a number.
func numeric(c *Control) (float64, bool) {
	if !c.value.HasContent() {
		return 0, false
	}
	return c.value.Float()
}

// datePair reads both dates when both controls hold a present, readable value.
func datePair(self, sibling *Control) (time.Time, time.Time, bool) {
	if !self.value.Truthy() || !sibling.value.Truthy() {
		return time.Time{}, time.Time{}, false
	}
	a, aok := self.value.Time()
	b, bok := sibling.value.Time()
	if !aok || !bok {
		return time.Time{}, time.Time{}, false
	}
	return a, b, true
}
