package form

import (
	"log/slog"

	"github.com/dmitrymomot/cashflow/pkg/logger"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

// Form owns a set of controls and the rules attached to them.
// Controls are validated in the order they were added, which decides which
// control ends up showing a cross-field error. A Form is not safe for
// concurrent use.
type Form struct {
	logger   *slog.Logger
	controls map[string]*field
	order    []string
}

type field struct {
	control *Control
	rules   []ValidatorFunc
	cross   []binding
}

type binding struct {
	sibling *Control
	rules   []CrossValidatorFunc
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used to trace cross-field effects.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

func New(opts ...Option) *Form {
	f := &Form{
		logger:   logger.Discard(),
		controls: make(map[string]*field),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Add registers a control holding initial and the rules checked against it.
// The control starts untouched and unvalidated.
func (f *Form) Add(name string, initial Value, rules ...ValidatorFunc) (*Control, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, ok := f.controls[name]; ok {
		return nil, ErrDuplicateControl
	}
	c := NewControl(name, initial)
	f.controls[name] = &field{control: c, rules: rules}
	f.order = append(f.order, name)
	return c, nil
}

// AddCross attaches cross-field rules to name that compare it with sibling.
// Both controls must already exist: the sibling is resolved here, once.
func (f *Form) AddCross(name, sibling string, rules ...CrossValidatorFunc) error {
	self, ok := f.controls[name]
	if !ok {
		return ErrUnknownControl
	}
	other, ok := f.controls[sibling]
	if !ok {
		return ErrUnknownControl
	}
	if name == sibling {
		return ErrSelfReference
	}
	self.cross = append(self.cross, binding{sibling: other.control, rules: rules})
	return nil
}

// Set stores v in the named control and validates that control only.
// Sibling errors written by its cross-field rules stay until the sibling
// itself is validated.
func (f *Form) Set(name string, v Value) (*Error, error) {
	fd, ok := f.controls[name]
	if !ok {
		return nil, ErrUnknownControl
	}
	fd.control.SetValue(v)
	return f.validate(fd), nil
}

// Validate runs every control's rules in registration order and reports
// whether the form ended up valid.
func (f *Form) Validate() bool {
	for _, name := range f.order {
		f.validate(f.controls[name])
	}
	return f.Valid()
}

// ValidateControl runs the rules of a single control.
func (f *Form) ValidateControl(name string) (*Error, error) {
	fd, ok := f.controls[name]
	if !ok {
		return nil, ErrUnknownControl
	}
	return f.validate(fd), nil
}

// validate keeps the first failing rule's error. Cross-field rules all run
// so their effects reach the siblings.
func (f *Form) validate(fd *field) *Error {
	c := fd.control

	var first *Error
	for _, rule := range fd.rules {
		if err := rule(c); err != nil {
			first = err
			break
		}
	}

	for _, b := range fd.cross {
		for _, rule := range b.rules {
			err, effect := rule(c, b.sibling)
			if err != nil && first == nil {
				first = err
			}
			if effect.Apply(b.sibling) {
				f.logger.Debug("cross-field effect applied",
					logger.Field(c.name),
					logger.Target(b.sibling.name),
					slog.String("effect", effect.String()),
				)
			}
		}
	}

	c.SetErr(first)
	return first
}

// Control returns the named control, or nil.
func (f *Form) Control(name string) *Control {
	if fd, ok := f.controls[name]; ok {
		return fd.control
	}
	return nil
}

// Value returns the named control's value. Unknown names yield Empty.
func (f *Form) Value(name string) Value {
	if c := f.Control(name); c != nil {
		return c.Value()
	}
	return Empty()
}

// Names lists the controls in registration order.
func (f *Form) Names() []string {
	return append([]string(nil), f.order...)
}

// Valid reports whether no control currently shows an error.
func (f *Form) Valid() bool {
	for _, fd := range f.controls {
		if !fd.control.Valid() {
			return false
		}
	}
	return true
}

// Errors collects the current control errors in registration order.
func (f *Form) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, name := range f.order {
		if err := f.controls[name].control.Err(); err != nil {
			errs.Add(err.ValidationError(name))
		}
	}
	return errs
}

// Err returns the current errors as an error, or nil when the form is valid.
func (f *Form) Err() error {
	errs := f.Errors()
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// FirstInvalid returns the first control, in registration order, that shows
// an error. Callers move focus there after a failed submit.
func (f *Form) FirstInvalid() (string, bool) {
	for _, name := range f.order {
		if !f.controls[name].control.Valid() {
			return name, true
		}
	}
	return "", false
}

func (f *Form) MarkAllAsTouched() {
	for _, fd := range f.controls {
		fd.control.MarkAsTouched()
	}
}
