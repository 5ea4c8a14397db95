package form_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cashflow/pkg/form"
	"github.com/dmitrymomot/cashflow/pkg/logger"
)

func TestForm_Add(t *testing.T) {
	f := form.New()

	c, err := f.Add("email", form.Text("a@b.co"), form.Email("invalid"))
	require.NoError(t, err)
	assert.Equal(t, "email", c.Name())
	assert.False(t, c.Touched())
	assert.True(t, c.Valid())

	_, err = f.Add("email", form.Empty())
	assert.ErrorIs(t, err, form.ErrDuplicateControl)

	_, err = f.Add("", form.Empty())
	assert.ErrorIs(t, err, form.ErrEmptyName)

	assert.ErrorIs(t, f.AddCross("email", "missing", form.Equals("m")), form.ErrUnknownControl)
	assert.ErrorIs(t, f.AddCross("missing", "email", form.Equals("m")), form.ErrUnknownControl)
	assert.ErrorIs(t, f.AddCross("email", "email", form.Equals("m")), form.ErrSelfReference)

	_, err = f.Set("missing", form.Empty())
	assert.ErrorIs(t, err, form.ErrUnknownControl)
	_, err = f.ValidateControl("missing")
	assert.ErrorIs(t, err, form.ErrUnknownControl)

	assert.Nil(t, f.Control("missing"))
	assert.True(t, f.Value("missing").IsEmpty())
	assert.Equal(t, []string{"email"}, f.Names())
}

func TestForm_FirstFailingRuleWins(t *testing.T) {
	f := form.New()
	_, err := f.Add("password", form.Empty(), form.Required("required"), form.Password("weak"))
	require.NoError(t, err)

	verr, err := f.Set("password", form.Empty())
	require.NoError(t, err)
	require.NotNil(t, verr)
	assert.Equal(t, "required", verr.Message)

	verr, _ = f.Set("password", form.Text("abc"))
	require.NotNil(t, verr)
	assert.Equal(t, "weak", verr.Message)

	verr, _ = f.Set("password", form.Text("abc1234"))
	assert.Nil(t, verr)
	assert.True(t, f.Valid())
}

func TestForm_EqualsClearsSiblingError(t *testing.T) {
	f := form.New()
	_, err := f.Add("password", form.Text("abc1234"), form.Password("weak"))
	require.NoError(t, err)
	_, err = f.Add("confirm", form.Empty(), form.Required("required"))
	require.NoError(t, err)
	require.NoError(t, f.AddCross("confirm", "password", form.Equals("passwords differ")))

	verr, _ := f.Set("confirm", form.Text("abc9999"))
	require.NotNil(t, verr)
	assert.Equal(t, "passwords differ", verr.Message)

	f.Control("password").SetErr(&form.Error{Message: "passwords differ"})

	verr, _ = f.Set("confirm", form.Text("abc1234"))
	assert.Nil(t, verr)
	assert.Nil(t, f.Control("password").Err())
	assert.True(t, f.Valid())
}

func TestForm_DatesPeriod(t *testing.T) {
	f := form.New()
	_, err := f.Add("start", form.Text("01/01/2026"))
	require.NoError(t, err)
	_, err = f.Add("end", form.Empty())
	require.NoError(t, err)
	require.NoError(t, f.AddCross("end", "start", form.DatesPeriod(5, "period too long")))
	require.NoError(t, f.AddCross("start", "end", form.DatesPeriod(5, "period too long")))

	verr, _ := f.Set("end", form.Text("11/01/2026"))
	require.NotNil(t, verr)
	assert.Equal(t, "{maxPeriod: 5}", verr.ParamsString())

	verr, _ = f.Set("start", form.Text("02/01/2026"))
	require.NotNil(t, verr)
	assert.Equal(t, "period too long", f.Control("end").Err().Message)

	// back in range: start validates clean and clears the stale error on end
	verr, _ = f.Set("start", form.Text("08/01/2026"))
	assert.Nil(t, verr)
	assert.Nil(t, f.Control("end").Err())
	assert.True(t, f.Valid())
}

func TestForm_InitialDateSequence(t *testing.T) {
	f := form.New()
	_, err := f.Add("initial", form.Empty())
	require.NoError(t, err)
	_, err = f.Add("final", form.Text("05/01/2026"))
	require.NoError(t, err)
	require.NoError(t, f.AddCross("initial", "final", form.InitialDateSequence("initial after final")))

	verr, _ := f.Set("initial", form.Text("10/01/2026"))
	assert.Nil(t, verr, "the initial date never shows the error itself")

	final := f.Control("final")
	require.NotNil(t, final.Err())
	assert.Equal(t, "initial after final", final.Err().Message)
	assert.True(t, final.Touched())
	assert.False(t, f.Valid())

	name, ok := f.FirstInvalid()
	assert.True(t, ok)
	assert.Equal(t, "final", name)

	verr, _ = f.Set("initial", form.Text("03/01/2026"))
	assert.Nil(t, verr)
	assert.Nil(t, final.Err())
}

func TestForm_ValidateOrderDecidesDisplayedError(t *testing.T) {
	build := func(finalFirst bool) *form.Form {
		f := form.New()
		add := func(name string, v form.Value) {
			_, err := f.Add(name, v)
			require.NoError(t, err)
		}
		if finalFirst {
			add("final", form.Text("05/01/2026"))
			add("initial", form.Text("10/01/2026"))
		} else {
			add("initial", form.Text("10/01/2026"))
			add("final", form.Text("05/01/2026"))
		}
		require.NoError(t, f.AddCross("initial", "final", form.InitialDateSequence("initial after final")))
		return f
	}

	// final validates last and overwrites the effect with its own outcome
	f := build(false)
	assert.True(t, f.Validate())

	// final validates first, then initial writes the error onto it
	f = build(true)
	assert.False(t, f.Validate())
	assert.Equal(t, "initial after final", f.Control("final").Err().Message)
}

func TestForm_Errors(t *testing.T) {
	f := form.New()
	_, err := f.Add("name", form.Empty(), form.Required("required"))
	require.NoError(t, err)
	_, err = f.Add("amount", form.Text("-1"), form.MinValue(0.01, "too small"))
	require.NoError(t, err)
	_, err = f.Add("note", form.Text("ok"), form.MaxLength(10, "too long"))
	require.NoError(t, err)

	assert.Nil(t, f.Err())
	assert.False(t, f.Validate())

	errs := f.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"name", "amount"}, errs.Fields())
	assert.Equal(t, "validation.required", errs[0].TranslationKey)
	assert.Equal(t, "name", errs[0].TranslationValues["field"])
	assert.Equal(t, 0.01, errs[1].TranslationValues["minValue"])

	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), "amount: too small")

	name, ok := f.FirstInvalid()
	assert.True(t, ok)
	assert.Equal(t, "name", name)
}

func TestForm_MarkAllAsTouched(t *testing.T) {
	f := form.New()
	_, _ = f.Add("a", form.Empty())
	_, _ = f.Add("b", form.Empty())

	f.MarkAllAsTouched()
	assert.True(t, f.Control("a").Touched())
	assert.True(t, f.Control("b").Touched())

	_, ok := f.FirstInvalid()
	assert.False(t, ok)
}

func TestForm_LogsEffects(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(logger.ParseLevel("debug")))

	f := form.New(form.WithLogger(log))
	_, _ = f.Add("password", form.Text("abc1234"))
	_, _ = f.Add("confirm", form.Empty())
	require.NoError(t, f.AddCross("confirm", "password", form.Equals("passwords differ")))
	f.Control("password").SetErr(&form.Error{Message: "passwords differ"})

	_, err := f.Set("confirm", form.Text("abc1234"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "cross-field effect applied")
	assert.Contains(t, out, `"field":"confirm"`)
	assert.Contains(t, out, `"target":"password"`)
	assert.Contains(t, out, `"effect":"clear_error"`)
}

func TestEffect_Apply(t *testing.T) {
	c := form.NewControl("x", form.Empty())

	assert.False(t, form.NoEffect.Apply(c))
	assert.False(t, form.ClearError().Apply(c))
	assert.False(t, form.ClearError().Apply(nil))

	assert.True(t, form.SetError(&form.Error{Message: "a"}).Apply(c))
	assert.True(t, c.Touched())
	assert.False(t, form.ClearErrorIf("b").Apply(c))
	assert.Equal(t, "a", c.Err().Message)
	assert.True(t, form.ClearErrorIf("a").Apply(c))
	assert.Nil(t, c.Err())

	assert.Equal(t, "none", form.NoEffect.String())
	assert.Equal(t, `clear_error_if("a")`, form.ClearErrorIf("a").String())
	assert.Equal(t, `set_error("a")`, form.SetError(&form.Error{Message: "a"}).String())
}
