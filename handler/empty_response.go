package handler

import "net/http"

// statusResponse writes a status line and headers without a body.
type statusResponse struct {
	status int
	header http.Header
}

func (s statusResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for k, v := range s.header {
		w.Header()[k] = v
	}
	w.WriteHeader(s.status)
	return nil
}

// Empty answers 204 No Content, e.g. after a delete.
func Empty() Response {
	return statusResponse{status: http.StatusNoContent}
}

// Accepted answers 202 with Location pointing at the resource to poll.
// An empty location omits the header.
func Accepted(location string) Response {
	resp := statusResponse{status: http.StatusAccepted}
	if location != "" {
		resp.header = http.Header{"Location": {location}}
	}
	return resp
}

// Status answers status without a body.
func Status(status int) Response {
	return statusResponse{status: status}
}
