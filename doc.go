// Package cashflow wires the validation kit of a personal cash-flow tracker
// into one application value.
//
// The building blocks live under pkg/:
//
//   - validator: CPF/CNPJ checksums, content and format predicates, rules.
//   - form: controls, single and cross-field rules, the form layer.
//   - account: login and sign-up forms.
//   - cashflow: operations, entries, balances and the statement period form.
//   - i18n: translated messages for every validation key.
//   - secrets: sealed values for client-side storage.
//   - logger, config: the ambient slog and environment setup.
//
// App builds them from a Config:
//
//	cfg, err := cashflow.LoadConfig()
//	if err != nil {
//		return err
//	}
//	app, err := cashflow.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	f := app.OperationForm()
//	f.Set("operation", form.Text("INFLOW"))
//	f.Set("value", form.Text(""))
//	if !f.Validate() {
//		msgs := app.FormMessages("pt-BR", f)
//		// msgs.Get("value") == "Campo obrigatório."
//	}
package cashflow
