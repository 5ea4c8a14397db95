package cashflow

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Operation is the direction of a cash-flow entry.
type Operation string

const (
	Inflow  Operation = "INFLOW"
	Outflow Operation = "OUTFLOW"
)

// Operations lists the supported operations in display order.
func Operations() []Operation {
	return []Operation{Inflow, Outflow}
}

// ParseOperation reads an operation name, ignoring case and surrounding spaces.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToUpper(strings.TrimSpace(s)))
	if !op.Valid() {
		return "", ErrUnknownOperation
	}
	return op, nil
}

func (o Operation) Valid() bool {
	return o == Inflow || o == Outflow
}

// LabelKey is the translation key of the operation's display name.
func (o Operation) LabelKey() string {
	return "operation." + strings.ToLower(string(o))
}

// sign returns +1 for inflows and -1 for outflows.
func (o Operation) sign() decimal.Decimal {
	if o == Outflow {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}
