package validator

import "github.com/dmitrymomot/apicommons/core"

// EnforceMessage is the summary message of errors returned by Enforce.
const EnforceMessage = "Validation error"

// Enforce applies rules and turns a failure into a *core.APIError of
// validation kind carrying the field → message map. The central error
// handler answers it with 422.
//
//	if err := validator.Enforce(
//		validator.Required("email", req.Email),
//		validator.StrictEmail("email", req.Email),
//		validator.Range("age", req.Age, 18, 120),
//	); err != nil {
//		return err
//	}
func Enforce(rules ...Rule) error {
	err := Apply(rules...)
	if err == nil {
		return nil
	}
	return core.NewValidationError(EnforceMessage, Fields(err))
}
