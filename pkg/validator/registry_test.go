package validator_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/pkg/validator"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := validator.NewDefaultRegistry()
	assert.Equal(t, []string{"email", "french_phone", "french_postal_code", "iban", "iso_date", "uuid"}, r.Names())

	c, ok := r.Lookup(validator.RuleFrenchPhone)
	require.True(t, ok)
	assert.Equal(t, "Invalid French phone number", c.Message)
	assert.True(t, c.Check("0612345678"))

	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistry_Check(t *testing.T) {
	t.Parallel()

	r := validator.NewDefaultRegistry()

	ok, err := r.Check(validator.RuleFrenchPostalCode, "75001")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Check(validator.RuleISODate, "2019-02-29")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Check("unknown", "x")
	assert.ErrorIs(t, err, validator.ErrUnknownRule)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := validator.NewRegistry()
	siret := validator.Constraint{
		Name:  "siret",
		Check: func(v string) bool { return v == "" || len(v) == 14 },
	}
	require.NoError(t, r.Register(siret))

	c, ok := r.Lookup("siret")
	require.True(t, ok)
	assert.Equal(t, "is invalid", c.Message)
	assert.Equal(t, "validation.siret", c.TranslationKey)

	assert.ErrorIs(t, r.Register(siret), validator.ErrDuplicateRule)
	assert.ErrorIs(t, r.Register(validator.Constraint{Name: "x"}), validator.ErrInvalidConstraint)
	assert.ErrorIs(t, r.Register(validator.Constraint{Check: validator.IsEmail}), validator.ErrInvalidConstraint)
	assert.Panics(t, func() { r.MustRegister(siret) })
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()

	r := validator.NewDefaultRegistry()

	assert.NoError(t, r.Validate("email", "user@example.com", validator.RuleEmail))
	assert.NoError(t, r.Validate("email", "", validator.RuleEmail))

	err := r.Validate("contact", "bad", validator.RuleEmail, validator.RuleFrenchPhone)
	require.Error(t, err)
	ve := validator.ExtractValidationErrors(err)
	require.Len(t, ve, 2)
	assert.Equal(t, []string{"Invalid email address", "Invalid French phone number"}, ve.Get("contact"))
	assert.Equal(t, "email", ve[0].TranslationValues["rule"])

	err = r.Validate("x", "y", "missing")
	assert.ErrorIs(t, err, validator.ErrUnknownRule)
	assert.False(t, validator.IsValidationError(err))
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := validator.NewDefaultRegistry()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "rule_" + strings.Repeat("x", i+1)
			assert.NoError(t, r.Register(validator.Constraint{Name: name, Check: validator.IsUUID}))
			ok, err := r.Check(validator.RuleEmail, "user@example.com")
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.Len(t, r.Names(), 26)
}

func TestPackageLevelHelpers(t *testing.T) {
	t.Parallel()

	ok, err := validator.Check(validator.RuleUUID, "zz")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, validator.Validate("iban", "bad", validator.RuleIBAN))
	assert.ErrorIs(t, validator.Register(validator.Constraint{Name: validator.RuleEmail, Check: validator.IsEmail}), validator.ErrDuplicateRule)
}
