package form

// Control is one form field: its value, the error currently shown for it and
// whether the user has interacted with it. Rules only read controls; errors
// are written by the form or by an Effect.
type Control struct {
	name    string
	value   Value
	err     *Error
	touched bool
}

func NewControl(name string, initial Value) *Control {
	return &Control{name: name, value: initial}
}

func (c *Control) Name() string { return c.name }

func (c *Control) Value() Value { return c.value }

func (c *Control) SetValue(v Value) { c.value = v }

func (c *Control) Err() *Error { return c.err }

func (c *Control) SetErr(err *Error) { c.err = err }

func (c *Control) MarkAsTouched() { c.touched = true }

func (c *Control) Touched() bool { return c.touched }

func (c *Control) Valid() bool { return c.err == nil }
