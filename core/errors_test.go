package core_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/core"
)

func TestNewResourceNotFound(t *testing.T) {
	t.Parallel()

	err := core.NewResourceNotFound("User", 42)
	assert.Equal(t, "User with id 42 not found", err.Message)
	assert.Equal(t, core.CodeResourceMissing, err.Code)
	assert.Equal(t, core.KindNotFound, err.Kind)
	assert.Equal(t, http.StatusNotFound, err.Status())

	err = core.NewResourceNotFound("Order", "a1b2")
	assert.Equal(t, "Order with id a1b2 not found", err.Message)
}

func TestNewNotFound(t *testing.T) {
	t.Parallel()

	err := core.NewNotFound("no such invoice")
	assert.Equal(t, core.CodeResourceMissing, err.Code)
	assert.Equal(t, "no such invoice", err.Message)

	custom := core.NewNotFoundWithCode("INVOICE_NOT_FOUND", "no such invoice")
	assert.Equal(t, core.Code("INVOICE_NOT_FOUND"), custom.Code)
	assert.Equal(t, core.KindNotFound, custom.Kind)
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	fields := map[string]string{"email": "Invalid email address", "zip": "Invalid French postal code format"}
	err := core.NewValidationError("Validation error", fields)

	assert.Equal(t, core.KindValidation, err.Kind)
	assert.Equal(t, core.CodeValidation, err.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status())
	assert.Equal(t, fields, err.Fields)

	fields["email"] = "changed"
	assert.Equal(t, "Invalid email address", err.Fields["email"], "fields must be copied")

	custom := core.NewValidationErrorWithCode("SIGNUP_INVALID", "bad signup", nil)
	assert.Equal(t, core.Code("SIGNUP_INVALID"), custom.Code)
	assert.Nil(t, custom.Fields)
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	t.Run("client error", func(t *testing.T) {
		t.Parallel()
		err := core.NewAPIError(core.CodeAPIException, "quota exceeded")
		assert.Equal(t, core.KindClient, err.Kind)
		assert.Equal(t, http.StatusBadRequest, err.Status())
		assert.Equal(t, "API_EXCEPTION: quota exceeded", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("wrapped cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("upstream timeout")
		err := core.WrapAPIError(core.CodeBadRequest, "cannot process", cause)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "upstream timeout")
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := errors.Join(errors.New("context"), core.NewResourceNotFound("User", 1))
		var apiErr *core.APIError
		require.ErrorAs(t, wrapped, &apiErr)
		assert.Equal(t, core.KindNotFound, apiErr.Kind)
	})

	t.Run("internal", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("db down")
		err := core.NewInternal(cause)
		assert.Equal(t, http.StatusInternalServerError, err.Status())
		assert.ErrorIs(t, err, cause)
	})
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, core.StatusFor(core.KindClient))
	assert.Equal(t, http.StatusNotFound, core.StatusFor(core.KindNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, core.StatusFor(core.KindValidation))
	assert.Equal(t, http.StatusInternalServerError, core.StatusFor(core.KindInternal))
	assert.Equal(t, http.StatusInternalServerError, core.StatusFor(core.Kind(99)))
	assert.Equal(t, "kind(99)", core.Kind(99).String())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unauthorized", core.ErrUnauthorized.Error())
	custom := core.NewHTTPError(http.StatusConflict, "conflict")
	assert.Equal(t, http.StatusConflict, custom.Code)

	var httpErr core.HTTPError
	require.ErrorAs(t, errors.Join(errors.New("ctx"), core.ErrForbidden), &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
