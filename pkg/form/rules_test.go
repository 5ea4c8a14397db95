package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/validator"
)

func ctrl(v form.Value) *form.Control {
	return form.NewControl("field", v)
}

func fixedClock(y int, m time.Month, d int) form.Clock {
	return func() time.Time { return time.Date(y, m, d, 15, 30, 0, 0, time.UTC) }
}

func TestNilControlIsInvalid(t *testing.T) {
	single := map[string]form.ValidatorFunc{
		"required":     form.Required("m"),
		"email":        form.Email("m"),
		"cpf":          form.CPF("m"),
		"cnpj":         form.CNPJ("m"),
		"document":     form.Document("m"),
		"input search": form.InputSearch("m"),
		"password":     form.Password("m"),
		"hour minute":  form.HourMinute("m"),
		"min value":    form.MinValue(1, "m"),
		"max value":    form.MaxValue(1, "m"),
		"min length":   form.MinLength(1, "m"),
		"max length":   form.MaxLength(1, "m"),
		"array length": form.ArrayLength(1, "m"),
		"predicate":    form.Predicate(func(form.Value) bool { return true }, "m"),
		"check":        form.Check(func(string, form.Value) (validator.Rule, bool) { return validator.Rule{}, false }, "m"),
		"with key":     form.WithKey("k", form.Required("m")),
		"before today": form.OnlyBeforeToday(nil, "m"),
		"after today":  form.OnlyAfterToday(nil, "m"),
	}
	for name, rule := range single {
		t.Run(name, func(t *testing.T) {
			err := rule(nil)
			require.NotNil(t, err)
			assert.Equal(t, "m", err.Message)
		})
	}

	cross := map[string]form.CrossValidatorFunc{
		"equals":       form.Equals("m"),
		"matches":      form.Matches("m"),
		"with key":     form.WithCrossKey("k", form.Equals("m")),
		"min ctrl":     form.MinCtrlValue("m"),
		"max ctrl":     form.MaxCtrlValue("m"),
		"dates period": form.DatesPeriod(5, "m"),
		"initial seq":  form.InitialDateSequence("m"),
		"final seq":    form.FinalDateSequence("m"),
	}
	for name, rule := range cross {
		t.Run(name, func(t *testing.T) {
			err, effect := rule(nil, ctrl(form.Text("x")))
			require.NotNil(t, err)
			assert.Equal(t, form.NoEffect, effect)

			err, _ = rule(ctrl(form.Text("x")), nil)
			require.NotNil(t, err)
		})
	}
}

func TestRequired(t *testing.T) {
	rule := form.Required("required")

	assert.Nil(t, rule(ctrl(form.Text("a"))))
	assert.Nil(t, rule(ctrl(form.Number(0))))
	assert.Nil(t, rule(ctrl(form.Bool(false))))

	err := rule(ctrl(form.Empty()))
	require.NotNil(t, err)
	assert.Equal(t, "required", err.Message)
	assert.Equal(t, "validation.required", err.Key)
	assert.Empty(t, err.ParamsString())

	assert.NotNil(t, rule(ctrl(form.Text(""))))
	assert.NotNil(t, rule(ctrl(form.List())))
}

func TestEmail(t *testing.T) {
	rule := form.Email("invalid email")

	assert.Nil(t, rule(ctrl(form.Text("a@b.co"))))
	assert.NotNil(t, rule(ctrl(form.Text(""))))
	assert.NotNil(t, rule(ctrl(form.Text("a@b"))))
	assert.NotNil(t, rule(ctrl(form.Number(5))))

	err := rule(ctrl(form.Text("nope")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.email", err.Key)
}

func TestDocuments(t *testing.T) {
	assert.Nil(t, form.CPF("m")(ctrl(form.Text("111.444.777-35"))))
	assert.NotNil(t, form.CPF("m")(ctrl(form.Text("00000000000"))))
	assert.NotNil(t, form.CPF("m")(ctrl(form.Number(11144477735))))

	assert.Nil(t, form.CNPJ("m")(ctrl(form.Text("11.222.333/0001-81"))))
	assert.NotNil(t, form.CNPJ("m")(ctrl(form.Text("00000000000000"))))

	doc := form.Document("m")
	assert.Nil(t, doc(ctrl(form.Text("529.982.247-25"))))
	assert.Nil(t, doc(ctrl(form.Text("04.252.011/0001-10"))))
	err := doc(ctrl(form.Text("123")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.document", err.Key)
}

func TestInputSearch(t *testing.T) {
	rule := form.InputSearch("pick one")

	assert.Nil(t, rule(ctrl(form.Object(3, "Salary"))))
	assert.NotNil(t, rule(ctrl(form.Object(0, "typed text"))))
	assert.NotNil(t, rule(ctrl(form.Text("Salary"))))
	assert.NotNil(t, rule(ctrl(form.Empty())))
}

func TestPassword(t *testing.T) {
	rule := form.Password("weak")

	assert.Nil(t, rule(ctrl(form.Text("abc1234"))))
	assert.NotNil(t, rule(ctrl(form.Text("1234567"))))
	assert.NotNil(t, rule(ctrl(form.Text("abcdefg"))))
	assert.NotNil(t, rule(ctrl(form.Text("ab12"))))
	assert.NotNil(t, rule(ctrl(form.Empty())))
}

func TestHourMinute(t *testing.T) {
	rule := form.HourMinute("bad time")

	assert.Nil(t, rule(ctrl(form.Text("0930"))))
	assert.Nil(t, rule(ctrl(form.Text("2400"))))
	assert.NotNil(t, rule(ctrl(form.Text("2500"))))
	assert.NotNil(t, rule(ctrl(form.Text("1260"))))
	assert.NotNil(t, rule(ctrl(form.Empty())))
	assert.NotNil(t, rule(ctrl(form.Text(""))))

	// unreadable or non-text input is let through
	assert.Nil(t, rule(ctrl(form.Text("ab:c"))))
	assert.Nil(t, rule(ctrl(form.Number(2500))))
}

func TestMinMaxValue(t *testing.T) {
	min := form.MinValue(5, "too small")
	max := form.MaxValue(10, "too big")

	assert.Nil(t, min(ctrl(form.Text("5"))))
	assert.Nil(t, min(ctrl(form.Empty())))
	assert.Nil(t, min(ctrl(form.Text("abc"))))

	err := min(ctrl(form.Text("4.99")))
	require.NotNil(t, err)
	assert.Equal(t, "too small", err.Message)
	assert.Equal(t, "validation.min_value", err.Key)
	assert.Equal(t, "{minValue: 5}", err.ParamsString())

	assert.Nil(t, max(ctrl(form.Number(10))))
	err = max(ctrl(form.Number(11)))
	require.NotNil(t, err)
	assert.Equal(t, "{maxValue: 10}", err.ParamsString())
}

func TestMinMaxLength(t *testing.T) {
	min := form.MinLength(3, "short")
	max := form.MaxLength(5, "long")

	assert.Nil(t, min(ctrl(form.Text("abc"))))
	assert.Nil(t, min(ctrl(form.Text(""))))
	assert.Nil(t, min(ctrl(form.Number(1))))

	err := min(ctrl(form.Text("ab")))
	require.NotNil(t, err)
	assert.Equal(t, "{minLength: 3}", err.ParamsString())

	assert.Nil(t, max(ctrl(form.Text("ação!"))))
	err = max(ctrl(form.Text("abcdef")))
	require.NotNil(t, err)
	assert.Equal(t, "{maxLength: 5}", err.ParamsString())

	// a zero bound is enforced
	assert.NotNil(t, form.MaxLength(0, "long")(ctrl(form.Text("a"))))
	assert.Nil(t, form.MinLength(0, "short")(ctrl(form.Text("a"))))

	// lists are measured by item count
	tags := form.List(form.Text("a"), form.Text("b"))
	assert.Nil(t, form.MinLength(2, "few")(ctrl(tags)))
	assert.Nil(t, form.MaxLength(2, "many")(ctrl(tags)))
	err = min(ctrl(tags))
	require.NotNil(t, err)
	assert.Equal(t, "validation.min_items", err.Key)
	assert.Equal(t, "{minLength: 3}", err.ParamsString())
	err = form.MaxLength(1, "many")(ctrl(tags))
	require.NotNil(t, err)
	assert.Equal(t, "validation.max_items", err.Key)
	assert.NotNil(t, min(ctrl(form.List())))
}

func TestArrayLength(t *testing.T) {
	rule := form.ArrayLength(2, "two items")

	assert.Nil(t, rule(ctrl(form.List(form.Text("a"), form.Text("b")))))
	assert.NotNil(t, rule(ctrl(form.List(form.Text("a")))))
	assert.Nil(t, rule(ctrl(form.Text("ab"))))
}

func TestPredicate(t *testing.T) {
	even := form.Predicate(func(v form.Value) bool {
		n, ok := v.Float()
		return ok && int(n)%2 == 0
	}, "must be even")

	assert.Nil(t, even(ctrl(form.Number(4))))
	err := even(ctrl(form.Number(3)))
	require.NotNil(t, err)
	assert.Equal(t, "must be even", err.Message)
	assert.Equal(t, form.KeyInvalid, err.Key)
}

func TestCheck(t *testing.T) {
	rule := form.Check(func(field string, v form.Value) (validator.Rule, bool) {
		s, ok := v.AsText()
		if !ok {
			return validator.Rule{}, false
		}
		return validator.MinLen(field, s, 2), true
	}, "")

	assert.Nil(t, rule(ctrl(form.Text("ab"))))
	assert.Nil(t, rule(ctrl(form.Number(1))), "rule does not apply")

	err := rule(ctrl(form.Text("a")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.min_length", err.Key)
	assert.Equal(t, "{minLength: 2}", err.ParamsString())
}

func TestWithKey(t *testing.T) {
	rule := form.WithKey("validation.code", form.MaxLength(2, "too long"))

	assert.Nil(t, rule(ctrl(form.Text("ab"))))
	err := rule(ctrl(form.Text("abc")))
	require.NotNil(t, err)
	assert.Equal(t, "too long", err.Message)
	assert.Equal(t, "validation.code", err.Key)
	assert.Equal(t, "{maxLength: 2}", err.ParamsString())
}

func TestWithCrossKey(t *testing.T) {
	rule := form.WithCrossKey("validation.sequence", form.InitialDateSequence("out of order"))

	final := ctrl(form.Text("05/10/2026"))
	err, effect := rule(ctrl(form.Text("10/10/2026")), final)
	assert.Nil(t, err)
	require.Equal(t, form.EffectSetError, effect.Kind)
	assert.True(t, effect.Apply(final))
	assert.Equal(t, "validation.sequence", final.Err().Key)
	assert.Equal(t, "out of order", final.Err().Message)

	cross := form.WithCrossKey("validation.sequence", form.FinalDateSequence("out of order"))
	err, _ = cross(ctrl(form.Text("05/10/2026")), ctrl(form.Text("10/10/2026")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.sequence", err.Key)
}

func TestOnlyBeforeToday(t *testing.T) {
	rule := form.OnlyBeforeToday(fixedClock(2026, 10, 17), "past only")

	assert.Nil(t, rule(ctrl(form.Text("16/10/2026"))))
	assert.NotNil(t, rule(ctrl(form.Text("17/10/2026"))))
	assert.NotNil(t, rule(ctrl(form.Text("2026-12-01"))))
	assert.NotNil(t, rule(ctrl(form.Text("not a date"))))
	assert.Nil(t, rule(ctrl(form.Empty())))

	err := rule(ctrl(form.Date(time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC))))
	require.NotNil(t, err)
	assert.Equal(t, "validation.date_past", err.Key)
}

func TestOnlyAfterToday(t *testing.T) {
	rule := form.OnlyAfterToday(fixedClock(2026, 10, 17), "future only")

	assert.Nil(t, rule(ctrl(form.Text("17/10/2026"))))
	assert.Nil(t, rule(ctrl(form.Text("18/10/2026"))))
	assert.NotNil(t, rule(ctrl(form.Text("16/10/2026"))))
	assert.Nil(t, rule(ctrl(form.Text(""))))
}

func TestEquals(t *testing.T) {
	rule := form.Equals("values differ")

	sibling := ctrl(form.Text("x"))
	sibling.SetErr(&form.Error{Message: "values differ"})

	err, effect := rule(ctrl(form.Text("x")), sibling)
	assert.Nil(t, err)
	assert.Equal(t, form.EffectClearError, effect.Kind)

	err, effect = rule(ctrl(form.Text("x")), ctrl(form.Text("y")))
	require.NotNil(t, err)
	assert.Equal(t, "values differ", err.Message)
	assert.Equal(t, form.NoEffect, effect)

	err, effect = rule(ctrl(form.Text("")), ctrl(form.Text("y")))
	assert.Nil(t, err)
	assert.Equal(t, form.NoEffect, effect)
}

func TestMatches(t *testing.T) {
	rule := form.Matches("values differ")

	sibling := ctrl(form.Text("x"))
	sibling.SetErr(&form.Error{Message: "too weak"})

	err, effect := rule(ctrl(form.Text("x")), sibling)
	assert.Nil(t, err)
	assert.False(t, effect.Apply(sibling), "other errors stay on the sibling")
	require.NotNil(t, sibling.Err())
	assert.Equal(t, "too weak", sibling.Err().Message)

	sibling.SetErr(&form.Error{Message: "values differ"})
	_, effect = rule(ctrl(form.Text("x")), sibling)
	assert.True(t, effect.Apply(sibling))
	assert.Nil(t, sibling.Err())

	err, effect = rule(ctrl(form.Text("x")), ctrl(form.Text("y")))
	require.NotNil(t, err)
	assert.Equal(t, "values differ", err.Message)
	assert.Equal(t, form.NoEffect, effect)
}

func TestCtrlValueBounds(t *testing.T) {
	min := form.MinCtrlValue("below minimum")
	max := form.MaxCtrlValue("above maximum")

	err, _ := min(ctrl(form.Text("3")), ctrl(form.Number(5)))
	require.NotNil(t, err)
	assert.Equal(t, "{minValue: 5}", err.ParamsString())

	err, _ = min(ctrl(form.Text("7")), ctrl(form.Number(5)))
	assert.Nil(t, err)

	err, _ = max(ctrl(form.Number(7)), ctrl(form.Text("5")))
	require.NotNil(t, err)
	assert.Equal(t, "{maxValue: 5}", err.ParamsString())

	err, _ = max(ctrl(form.Number(7)), ctrl(form.Empty()))
	assert.Nil(t, err)
}

func TestDatesPeriod(t *testing.T) {
	rule := form.DatesPeriod(5, "period too long")

	err, effect := rule(ctrl(form.Text("11/01/2026")), ctrl(form.Text("01/01/2026")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.max_period", err.Key)
	assert.Equal(t, 5, err.Params["maxPeriod"])
	assert.Equal(t, "{maxPeriod: 5}", err.ParamsString())
	assert.Equal(t, form.NoEffect, effect)

	sibling := ctrl(form.Text("01/01/2026"))
	sibling.SetErr(&form.Error{Message: "period too long"})
	err, effect = rule(ctrl(form.Text("04/01/2026")), sibling)
	assert.Nil(t, err)
	assert.True(t, effect.Apply(sibling))
	assert.Nil(t, sibling.Err())

	// unreadable dates are left to the single-field rules
	err, effect = rule(ctrl(form.Text("soon")), ctrl(form.Text("01/01/2026")))
	assert.Nil(t, err)
	assert.Equal(t, form.NoEffect, effect)
}

func TestDateSequences(t *testing.T) {
	initial := form.InitialDateSequence("initial after final")
	final := form.FinalDateSequence("initial after final")

	err, effect := initial(ctrl(form.Text("10/01/2026")), ctrl(form.Text("05/01/2026")))
	assert.Nil(t, err)
	require.Equal(t, form.EffectSetError, effect.Kind)
	assert.Equal(t, "initial after final", effect.Err.Message)

	err, effect = initial(ctrl(form.Text("05/01/2026")), ctrl(form.Text("05/01/2026")))
	assert.Nil(t, err)
	assert.Equal(t, form.ClearErrorIf("initial after final"), effect)

	err, _ = final(ctrl(form.Text("04/01/2026")), ctrl(form.Text("05/01/2026")))
	require.NotNil(t, err)
	assert.Equal(t, "validation.date_not_before", err.Key)

	err, _ = final(ctrl(form.Text("05/01/2026")), ctrl(form.Text("05/01/2026")))
	assert.Nil(t, err)
}
