package cashflow

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// Control names of the operation form.
const (
	FieldOperation = "operation"
	FieldValue     = "value"
)

// Translation keys of the operation form's own rules.
const (
	KeyOperation = "validation.operation"
	KeyAmount    = "validation.amount"
)

// minAmount is the smallest amount accepted by the operation form.
var minAmount = decimal.New(1, -AmountPlaces)

// NewOperationForm builds the form used to register a deposit or a withdrawal.
// Messages are left to the rules' defaults; callers translate by error key.
func NewOperationForm(opts ...form.Option) *form.Form {
	f := form.New(opts...)
	// names are constants, so Add cannot fail here
	_, _ = f.Add(FieldOperation, form.Empty(),
		form.Required(""),
		form.WithKey(KeyOperation, form.Predicate(isOperation, "unknown operation")),
	)
	_, _ = f.Add(FieldValue, form.Empty(),
		form.Required(""),
		form.WithKey(KeyAmount, form.Predicate(isAmount, "invalid amount")),
		form.Check(minAmountRule, ""),
		form.Check(amountPlacesRule, ""),
	)
	return f
}

// EntryFromForm validates f and turns it into an entry for clientID.
func EntryFromForm(f *form.Form, clientID uuid.UUID) (Entry, error) {
	if !f.Validate() {
		return Entry{}, errors.Join(ErrInvalidForm, f.Err())
	}

	op, err := ParseOperation(f.Value(FieldOperation).String())
	if err != nil {
		return Entry{}, err
	}
	value, err := amountOf(f.Value(FieldValue))
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(clientID, op, value)
}

func isOperation(v form.Value) bool {
	s, ok := v.AsText()
	if !ok {
		return false
	}
	_, err := ParseOperation(s)
	return err == nil
}

func isAmount(v form.Value) bool {
	_, err := amountOf(v)
	return err == nil
}

// minAmountRule and amountPlacesRule read the value the way EntryFromForm
// does, so "0,50" counts as fifty cents.
func minAmountRule(field string, v form.Value) (validator.Rule, bool) {
	d, err := amountOf(v)
	if err != nil {
		return validator.Rule{}, false
	}
	return validator.MinDecimal(field, d, minAmount), true
}

func amountPlacesRule(field string, v form.Value) (validator.Rule, bool) {
	d, err := amountOf(v)
	if err != nil {
		return validator.Rule{}, false
	}
	return validator.DecimalPlaces(field, d, AmountPlaces), true
}

func amountOf(v form.Value) (decimal.Decimal, error) {
	switch v.Kind() {
	case form.KindNumber:
		n, ok := v.Float()
		if !ok || math.IsInf(n, 0) {
			return decimal.Zero, ErrInvalidAmount
		}
		return decimal.NewFromFloat(n), nil
	case form.KindText:
		return ParseAmount(v.String())
	default:
		return decimal.Zero, ErrInvalidAmount
	}
}
