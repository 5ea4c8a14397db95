package cashflow

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = money.BRL

// Cash is a client's current balance.
type Cash struct {
	ClientID uuid.UUID
	Value    decimal.Decimal
	Currency string
}

// NewCash returns an empty balance in currency, which must be an ISO 4217 code.
func NewCash(clientID uuid.UUID, currency string) (Cash, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	if money.GetCurrency(code) == nil {
		return Cash{}, ErrUnknownCurrency
	}
	return Cash{ClientID: clientID, Value: decimal.Zero, Currency: code}, nil
}

// Apply adds an inflow to the balance or subtracts an outflow.
// The receiver is left unchanged.
func (c Cash) Apply(e Entry) (Cash, error) {
	if e.ClientID != c.ClientID {
		return c, ErrClientMismatch
	}
	if !e.Operation.Valid() {
		return c, ErrUnknownOperation
	}
	c.Value = c.Value.Add(e.Signed())
	return c, nil
}

// Balance applies entries to start in order and stops at the first error.
func Balance(start Cash, entries ...Entry) (Cash, error) {
	cash := start
	for _, e := range entries {
		next, err := cash.Apply(e)
		if err != nil {
			return cash, err
		}
		cash = next
	}
	return cash, nil
}

// Money converts the balance to minor units of its currency, rounding
// half away from zero.
func (c Cash) Money() *money.Money {
	cur := money.GetCurrency(c.Currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	places := int32(cur.Fraction)
	minor := c.Value.Round(places).Shift(places).IntPart()
	return money.New(minor, cur.Code)
}

// Format renders the balance with the currency's symbol and separators,
// e.g. "R$1.234,56".
func (c Cash) Format() string {
	return c.Money().Display()
}

func (c Cash) IsNegative() bool {
	return c.Value.IsNegative()
}
