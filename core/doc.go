// Package core holds the data carried across API boundaries: the response
// envelopes and the error taxonomy.
//
// Every operation answers with a Response envelope:
//
//	core.Success(user)                       // {"success":true,"data":{...},"message":null}
//	core.SuccessWithMessage(user, "created") // same, with a message
//	core.Error[any]("not allowed")           // {"success":false,"data":null,"message":"not allowed"}
//
// Listings use PagedResponse which adds page, size, totalElements and
// totalPages as sibling fields of the envelope.
//
// Failures are raised as *APIError values. The Kind decides the HTTP status
// (client 400, not found 404, validation 422, internal 500) while Code is a
// machine-readable string for clients:
//
//	return core.NewResourceNotFound("User", 42) // "User with id 42 not found"
//
//	return core.NewValidationError("invalid payload", map[string]string{
//		"email": "Invalid email address",
//	})
//
// The central error handler in package handler converts these errors into
// envelopes; nothing in this package writes to the network.
package core
