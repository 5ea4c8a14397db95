package form

import "fmt"

// EffectKind enumerates what a cross-field rule may do to its sibling.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	// EffectClearError removes whatever error the sibling shows.
	EffectClearError
	// EffectClearErrorIf removes the sibling's error only when its message matches.
	EffectClearErrorIf
	// EffectSetError replaces the sibling's error and marks it touched.
	EffectSetError
)

// Effect is a change a cross-field rule requests on the sibling control.
// Rules return effects; the form applies them.
type Effect struct {
	Kind    EffectKind
	Message string
	Err     *Error
}

var NoEffect = Effect{}

func ClearError() Effect {
	return Effect{Kind: EffectClearError}
}

func ClearErrorIf(msg string) Effect {
	return Effect{Kind: EffectClearErrorIf, Message: msg}
}

func SetError(err *Error) Effect {
	return Effect{Kind: EffectSetError, Err: err}
}

// Apply performs the effect on c and reports whether c changed.
func (e Effect) Apply(c *Control) bool {
	if c == nil {
		return false
	}
	switch e.Kind {
	case EffectClearError:
		if c.err == nil {
			return false
		}
		c.err = nil
		return true
	case EffectClearErrorIf:
		if !c.err.equalMessage(e.Message) {
			return false
		}
		c.err = nil
		return true
	case EffectSetError:
		c.touched = true
		c.err = e.Err
		return true
	default:
		return false
	}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectNone:
		return "none"
	case EffectClearError:
		return "clear_error"
	case EffectClearErrorIf:
		return fmt.Sprintf("clear_error_if(%q)", e.Message)
	case EffectSetError:
		if e.Err == nil {
			return "set_error(<nil>)"
		}
		return fmt.Sprintf("set_error(%q)", e.Err.Message)
	default:
		return "unknown"
	}
}
