package cashflow

import "errors"

var (
	ErrUnknownOperation = errors.New("cashflow: unknown operation")
	ErrInvalidEntry     = errors.New("cashflow: invalid entry")
	ErrInvalidAmount    = errors.New("cashflow: invalid amount")
	ErrUnknownCurrency  = errors.New("cashflow: unknown currency")
	ErrClientMismatch   = errors.New("cashflow: entry belongs to another client")
	ErrInvalidForm      = errors.New("cashflow: form is invalid")
	ErrInvalidPeriod    = errors.New("cashflow: period ends before it starts")
)
