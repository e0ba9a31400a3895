package validator_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/pkg/validator"
)

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    validator.Rule
		valid   bool
		message string
	}{
		{"email ok", validator.StrictEmail("email", "user@example.com"), true, ""},
		{"email bad", validator.StrictEmail("email", "not-an-email"), false, "Invalid email address"},
		{"phone bad", validator.FrenchPhone("phone", "123"), false, "Invalid French phone number"},
		{"postal bad", validator.FrenchPostalCode("zip", "7500"), false, "Invalid French postal code format"},
		{"uuid ok", validator.ValidUUID("id", uuid.NewString()), true, ""},
		{"uuid bad", validator.ValidUUID("id", "zz"), false, "Invalid UUID format"},
		{"iban bad", validator.ValidIBAN("iban", "1234"), false, "Invalid IBAN format"},
		{"date bad", validator.ValidISODate("birth", "2019-02-29"), false, "Invalid ISO 8601 date format (expected yyyy-MM-dd)"},
		{"date empty", validator.ValidISODate("birth", ""), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, tt.rule.Check())
			if !tt.valid {
				assert.Equal(t, tt.message, tt.rule.Error.Message)
				assert.NotEmpty(t, tt.rule.Error.TranslationKey)
			}
		})
	}
}

func TestRequiredAndNotNil(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Required("name", "Jane").Check())
	assert.False(t, validator.Required("name", "").Check())
	assert.False(t, validator.Required("name", "   ").Check())
	assert.Equal(t, "validation.required", validator.Required("name", "").Error.TranslationKey)

	var nilPtr *int
	var nilMap map[string]string
	assert.False(t, validator.NotNil("v", nil).Check())
	assert.False(t, validator.NotNil("v", nilPtr).Check())
	assert.False(t, validator.NotNil("v", nilMap).Check())
	assert.True(t, validator.NotNil("v", 0).Check())
	assert.True(t, validator.NotNil("v", "").Check())
	assert.True(t, validator.NotNil("v", map[string]string{}).Check())
}

func TestRange(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Range("age", 18, 18, 120).Check())
	assert.True(t, validator.Range("age", 120, 18, 120).Check())
	assert.False(t, validator.Range("age", 17, 18, 120).Check())
	assert.False(t, validator.Range("score", 5.5, 0.0, 5.0).Check())

	rule := validator.Range("age", 150, 18, 120)
	assert.Equal(t, "must be between 18 and 120", rule.Error.Message)
	assert.Equal(t, 18, rule.Error.TranslationValues["min"])
}

func TestMaxLengthAndWhen(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxLength("bio", "élève", 5).Check())
	assert.False(t, validator.MaxLength("bio", "abcdef", 5).Check())

	assert.True(t, validator.When(false, validator.Required("x", "")).Check())
	assert.False(t, validator.When(true, validator.Required("x", "")).Check())
}

func TestApply(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply())
	assert.NoError(t, validator.Apply(validator.Required("name", "Jane")))

	err := validator.Apply(
		validator.Required("email", ""),
		validator.StrictEmail("email", "bad"),
		validator.FrenchPostalCode("zip", "7500"),
		validator.Required("name", "Jane"),
	)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	ve := validator.ExtractValidationErrors(err)
	require.Len(t, ve, 3)
	assert.True(t, ve.Has("email"))
	assert.False(t, ve.Has("name"))
	assert.Equal(t, []string{"email", "zip"}, ve.FieldNames())
	assert.Equal(t, []string{"must not be empty", "Invalid email address"}, ve.Get("email"))
	assert.Contains(t, err.Error(), "zip: Invalid French postal code format")
}

func TestFields(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("email", ""),
		validator.StrictEmail("email", "bad"),
		validator.FrenchPhone("phone", "123"),
	)
	assert.Equal(t, map[string]string{
		"email": "Invalid email address",
		"phone": "Invalid French phone number",
	}, validator.Fields(err))

	assert.Nil(t, validator.Fields(nil))
	assert.Nil(t, validator.Fields(assert.AnError))
	assert.Nil(t, validator.ValidationErrors{}.Map())
}

func TestEnforce(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Enforce(validator.StrictEmail("email", "user@example.com")))

	err := validator.Enforce(
		validator.StrictEmail("email", "not-an-email"),
		validator.Range("age", 10, 18, 120),
	)
	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, core.KindValidation, apiErr.Kind)
	assert.Equal(t, core.CodeValidation, apiErr.Code)
	assert.Equal(t, validator.EnforceMessage, apiErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status())
	assert.Equal(t, map[string]string{
		"email": "Invalid email address",
		"age":   "must be between 18 and 120",
	}, apiErr.Fields)
}
