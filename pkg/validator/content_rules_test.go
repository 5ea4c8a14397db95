package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cashflow/pkg/validator"
)

func TestHasContent(t *testing.T) {
	t.Parallel()

	var nilSlice []int
	var nilPtr *string
	var nilMap map[string]int
	empty := ""
	filled := "a"

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
		{"nil slice", nilSlice, false},
		{"nil map", nilMap, false},
		{"empty map", map[string]int{}, true},
		{"nil pointer", nilPtr, false},
		{"pointer to empty string", &empty, true},
		{"string", "a", true},
		{"whitespace string", " ", true},
		{"slice", []int{1}, true},
		{"array", [1]int{0}, true},
		{"pointer to string", &filled, true},
		{"zero", 0, true},
		{"zero float", 0.0, true},
		{"false", false, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.HasContent(tt.value))
		})
	}
}

func TestRequired(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.Required("name", "Ana")))
	assert.Error(t, validator.Apply(validator.Required("name", "")))
	assert.Error(t, validator.Apply(validator.Required("name", "   ")))

	assert.NoError(t, validator.Apply(validator.RequiredAny("amount", 0)))
	assert.Error(t, validator.Apply(validator.RequiredAny("tags", []string{})))

	assert.NoError(t, validator.Apply(validator.RequiredComparable("id", 7)))
	assert.Error(t, validator.Apply(validator.RequiredComparable("id", "")))

	err := validator.Apply(validator.RequiredAny("x", nil))
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "validation.required", errs[0].TranslationKey)
	assert.Equal(t, "x", errs[0].TranslationValues["field"])
}

func TestValidReference(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidReference("category", 3)))
	assert.Error(t, validator.Apply(validator.ValidReference("category", 0)))

	ve := validator.First(validator.ValidReference("category", -1))
	if assert.NotNil(t, ve) {
		assert.Equal(t, "validation.reference", ve.TranslationKey)
	}
}
