// Package validator checks field values against named constraints.
//
// Predicates such as IsEmail or IsIBAN are pure functions from a string to
// a bool. Each treats the empty string as an absent value and accepts it, so
// presence is checked separately with Required.
//
// Constraints pair a name with a predicate and a message. They live in a
// Registry; Default holds the built-ins:
//
//	email               Invalid email address
//	french_phone        Invalid French phone number
//	french_postal_code  Invalid French postal code format
//	uuid                Invalid UUID format
//	iban                Invalid IBAN format (format only, no MOD-97 check)
//	iso_date            Invalid ISO 8601 date format (expected yyyy-MM-dd)
//
// Services add their own rules at startup:
//
//	validator.MustRegister(validator.Constraint{
//		Name:    "siret",
//		Message: "Invalid SIRET number",
//		Check:   isSIRET,
//	})
//
// A request type validates itself by returning the result of Apply from a
// Validate method; handler.Wrap calls it after binding and the central
// error handler answers ValidationErrors with 400 and a field map:
//
//	func (r CreateUserRequest) Validate() error {
//		return validator.Apply(
//			validator.Required("email", r.Email),
//			validator.StrictEmail("email", r.Email),
//			validator.FrenchPhone("phone", r.Phone),
//		)
//	}
//
// Enforce does the same for service code but returns a *core.APIError of
// validation kind, answered with 422.
package validator
