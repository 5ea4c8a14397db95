// Package account provides the login and sign-up forms.
//
// Both forms are plain form.Form values; callers set control values as the
// user types and call CredentialsFromForm or RegistrationFromForm on submit.
// Messages default to English; render them by key with package i18n.
package account
