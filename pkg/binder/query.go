package binder

import "net/http"

// Query returns a binder that fills fields tagged `query:"name"` from the
// URL query string. Untagged fields are skipped; repeated keys and
// comma-separated values both fill slice fields.
//
//	type ListUsersRequest struct {
//		Page int      `query:"page"`
//		Size int      `query:"size"`
//		Tags []string `query:"tag"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
