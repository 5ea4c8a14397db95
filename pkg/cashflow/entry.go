package cashflow

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// AmountPlaces is the number of decimal places an entry value may carry.
const AmountPlaces = 2

// Entry is a single deposit or withdrawal on a client's cash.
type Entry struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Operation Operation
	Value     decimal.Decimal
	CreatedAt time.Time
}

// NewEntry validates and builds an entry with a fresh id.
// The returned error wraps ErrInvalidEntry and the validator.ValidationErrors found.
func NewEntry(clientID uuid.UUID, op Operation, value decimal.Decimal) (Entry, error) {
	if err := validator.Apply(
		validator.RequiredComparable("client_id", clientID),
		validator.Custom("operation", "unknown operation", "validation.operation", op.Valid),
		validator.PositiveDecimal("value", value),
		validator.DecimalPlaces("value", value, AmountPlaces),
	); err != nil {
		return Entry{}, errors.Join(ErrInvalidEntry, err)
	}

	return Entry{
		ID:        uuid.New(),
		ClientID:  clientID,
		Operation: op,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Signed returns the entry value as it affects the balance.
func (e Entry) Signed() decimal.Decimal {
	return e.Value.Mul(e.Operation.sign())
}

// ParseAmount reads a user-typed amount. Both "1234.56" and the comma
// decimal form "1.234,56" are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidAmount, err)
	}
	return d, nil
}
