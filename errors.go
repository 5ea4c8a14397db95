package cashflow

import "errors"

var (
	ErrInvalidConfig     = errors.New("cashflow: invalid configuration")
	ErrStorageDisabled   = errors.New("cashflow: storage keys are not configured")
	ErrTranslatorFailure = errors.New("cashflow: failed to load messages")
)
