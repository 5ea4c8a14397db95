package account

import "errors"

var ErrInvalidForm = errors.New("account: form is invalid")
