package account

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/sanitizer"
)

// Control names shared by the account forms.
const (
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldDocument        = "document"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
)

// DefaultNameLength caps the full name when NewSignUpForm gets no positive limit.
const DefaultNameLength = 120

// KeyPasswordMismatch is the translation key of a confirmation that differs
// from the password.
const KeyPasswordMismatch = "validation.password_mismatch"

const msgPasswordMismatch = "passwords do not match"

// Credentials are what a user types to log in.
type Credentials struct {
	Email    string
	Password string
}

// LogValue hides the password and masks the email.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", sanitizer.MaskEmail(c.Email)))
}

// Registration is the data collected by the sign-up form.
// Document holds digits only.
type Registration struct {
	FullName string
	Email    string
	Document string
	Password string
}

// NewLoginForm builds the login form: a required valid email and a required password.
func NewLoginForm(opts ...form.Option) *form.Form {
	f := form.New(opts...)
	_, _ = f.Add(FieldEmail, form.Empty(), form.Required(""), form.Email(""))
	_, _ = f.Add(FieldPassword, form.Empty(), form.Required(""))
	return f
}

// NewSignUpForm builds the sign-up form. The confirmation must equal the
// password; a match clears a stale mismatch error on the password control
// and leaves its strength error in place.
func NewSignUpForm(maxNameLen int, opts ...form.Option) *form.Form {
	if maxNameLen <= 0 {
		maxNameLen = DefaultNameLength
	}
	f := form.New(opts...)
	_, _ = f.Add(FieldFullName, form.Empty(), form.Required(""), form.MaxLength(maxNameLen, ""))
	_, _ = f.Add(FieldEmail, form.Empty(), form.Required(""), form.Email(""))
	_, _ = f.Add(FieldDocument, form.Empty(), form.Required(""), form.Document(""))
	_, _ = f.Add(FieldPassword, form.Empty(), form.Required(""), form.Password(""))
	_, _ = f.Add(FieldPasswordConfirm, form.Empty(), form.Required(""))
	mismatch := form.WithCrossKey(KeyPasswordMismatch, form.Matches(msgPasswordMismatch))
	_ = f.AddCross(FieldPasswordConfirm, FieldPassword, mismatch)
	_ = f.AddCross(FieldPassword, FieldPasswordConfirm, mismatch)
	return f
}

// CredentialsFromForm validates a login form and reads its values.
func CredentialsFromForm(f *form.Form) (Credentials, error) {
	if !f.Validate() {
		return Credentials{}, errors.Join(ErrInvalidForm, f.Err())
	}
	return Credentials{
		Email:    sanitizer.NormalizeEmail(f.Value(FieldEmail).String()),
		Password: f.Value(FieldPassword).String(),
	}, nil
}

// RegistrationFromForm validates a sign-up form and reads its values.
func RegistrationFromForm(f *form.Form) (Registration, error) {
	if !f.Validate() {
		return Registration{}, errors.Join(ErrInvalidForm, f.Err())
	}
	return Registration{
		FullName: sanitizer.PersonName(f.Value(FieldFullName).String()),
		Email:    sanitizer.NormalizeEmail(f.Value(FieldEmail).String()),
		Document: sanitizer.KeepDigits(f.Value(FieldDocument).String()),
		Password: f.Value(FieldPassword).String(),
	}, nil
}

// LogValue hides the password and masks the email and document.
func (r Registration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", sanitizer.MaskEmail(r.Email)),
		slog.String("document", sanitizer.MaskDocument(r.Document)),
	)
}
