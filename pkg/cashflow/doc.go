// Package cashflow models a client's deposits and withdrawals.
//
// An Entry is a validated INFLOW or OUTFLOW with an exact decimal value.
// Cash holds the running balance; Apply and Balance fold entries into it and
// Format renders it with the currency's symbol and separators.
//
// NewOperationForm returns the form.Form used to type a new entry, and
// EntryFromForm converts a valid form into an Entry:
//
//	f := cashflow.NewOperationForm()
//	f.Set(cashflow.FieldOperation, form.Text("INFLOW"))
//	f.Set(cashflow.FieldValue, form.Text("150,75"))
//	entry, err := cashflow.EntryFromForm(f, clientID)
//	if err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    ...
//	}
//	cash, err = cash.Apply(entry)
package cashflow
