package apidoc

import (
	"maps"
	"net/http"
)

// Help request headers.
const (
	HeaderHelpRequest = "X-Help-Request"
	HeaderRequestType = "X-Request-Type"
)

// Doc describes how to call an endpoint.
type Doc struct {
	Endpoint    string          `json:"endpoint"`
	Description string          `json:"description"`
	Headers     map[string]any  `json:"headers"`
	Request     map[string]any  `json:"request"`
	Response    ExampleResponse `json:"response"`
}

// ExampleResponse is the documented answer of an endpoint.
type ExampleResponse struct {
	Status string         `json:"status"`
	Body   map[string]any `json:"body"`
}

// Method returns the documented HTTP method, or "" when the example request
// does not name one.
func (d Doc) Method() string {
	m, _ := d.Request["method"].(string)
	return m
}

// StandardHeaders are the headers a client sends to ask for help instead of
// calling the endpoint.
func StandardHeaders() map[string]any {
	return map[string]any{
		HeaderHelpRequest: true,
		HeaderRequestType: "HELP",
		"Accept":          "application/json",
	}
}

// Describe documents endpoint with an example request.
func Describe(endpoint, description string, exampleRequest map[string]any) Doc {
	return Doc{
		Endpoint:    endpoint,
		Description: description,
		Headers:     StandardHeaders(),
		Request:     maps.Clone(exampleRequest),
		Response: ExampleResponse{
			Status: "200 OK",
			Body:   map[string]any{"info": "Example response body"},
		},
	}
}

func Get(endpoint, description string) Doc {
	return Describe(endpoint, description, map[string]any{"method": http.MethodGet})
}

func Post(endpoint, description string) Doc {
	return Describe(endpoint, description, map[string]any{"method": http.MethodPost})
}

func Put(endpoint, description string) Doc {
	return Describe(endpoint, description, map[string]any{"method": http.MethodPut})
}

func Delete(endpoint, description string) Doc {
	return Describe(endpoint, description, map[string]any{"method": http.MethodDelete})
}
