// Package form turns the predicates of package validator into rules over
// form controls.
//
// A Control holds a Value, the error it currently shows and a touched flag.
// Single-field rules are ValidatorFunc values built by factories such as
// Required, Email, CPF or MinValue; each takes the message shown to the user.
// Rules that compare two controls are CrossValidatorFunc values: they return
// the outcome for the control they are attached to plus an Effect on the
// sibling, such as clearing a stale error. The Form applies those effects.
//
//	f := form.New()
//	f.Add("password", form.Empty(), form.Required("required"), form.Password("weak password"))
//	f.Add("confirm", form.Empty(), form.Required("required"))
//	f.AddCross("confirm", "password", form.Equals("passwords differ"))
//
//	f.Set("password", form.Text("abc1234"))
//	f.Set("confirm", form.Text("abc1234"))
//	if !f.Valid() {
//	    name, _ := f.FirstInvalid()
//	    ...
//	}
//
// Controls are validated in registration order. Effects written by an earlier
// control can be overwritten when a later control validates, so the order in
// which controls are added decides where a cross-field error is displayed.
package form
