package form

import "errors"

var (
	ErrEmptyName        = errors.New("form: control name is empty")
	ErrDuplicateControl = errors.New("form: control already exists")
	ErrUnknownControl   = errors.New("form: unknown control")
	ErrSelfReference    = errors.New("form: control cannot be its own sibling")
)
