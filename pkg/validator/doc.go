// Package validator provides the pure predicates and rule builders behind the
// cash-flow forms: Brazilian tax identifier checksums (CPF and CNPJ), content
// and format checks, numeric and length bounds, calendar-day comparisons and
// money amount rules.
//
// Two layers are exposed. Predicates such as IsCPF, IsCNPJ, IsEmail,
// IsStrongPassword, HasContent and ParseNumber take raw input and return a
// plain result; they never panic and never modify their input. Rule builders
// such as ValidCPF, MinLen or MaxPeriod wrap a predicate in a Rule value that
// carries a translation-friendly ValidationError. Rules are evaluated with
// Apply, which aggregates failures into ValidationErrors, or with First, which
// stops at the first failure.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", form.Name),
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidDocument("document", form.Document),
//	    validator.ValidPassword("password", form.Password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.Field, e.TranslationKey, e.Params())
//	    }
//	}
//
// # Checksums
//
// IsCPF and IsCNPJ strip every non-digit character, reject inputs of the wrong
// length and numbers made of a single repeated digit, then verify both mod-11
// check digits. CPFCheckDigits and CNPJCheckDigits compute the digits for a
// base, which is handy when generating fixtures.
//
// # Error payload
//
// Every ValidationError has a TranslationKey (e.g. "validation.min_value") and
// TranslationValues holding the field name plus any bound, e.g. minValue.
// ValidationError.Params renders the bounds as "{minValue: 5}".
//
// The package holds no state and is safe for concurrent use.
package validator
