package apidoc

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/apicommons/core"
	"github.com/dmitrymomot/apicommons/handler"
)

// Catalog indexes docs by endpoint pattern. Patterns use chi syntax:
// "{name}" matches one path segment and a trailing "*" matches the rest.
// Build it at startup; it is read-only while serving.
type Catalog struct {
	docs []Doc
}

// NewCatalog creates a catalog from docs.
func NewCatalog(docs ...Doc) *Catalog {
	c := &Catalog{}
	return c.Add(docs...)
}

// Add registers docs.
func (c *Catalog) Add(docs ...Doc) *Catalog {
	c.docs = append(c.docs, docs...)
	return c
}

// Lookup returns the docs whose endpoint matches path, in registration order.
func (c *Catalog) Lookup(path string) []Doc {
	var out []Doc
	for _, d := range c.docs {
		if matchPattern(d.Endpoint, path) {
			out = append(out, d)
		}
	}
	return out
}

// IsHelpRequest reports whether r asks for documentation rather than the
// endpoint itself.
func IsHelpRequest(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.Header.Get(HeaderHelpRequest))
	return ok || strings.EqualFold(r.Header.Get(HeaderRequestType), "HELP")
}

// Middleware answers help requests with the docs matching the request path,
// wrapped in a success envelope. Paths without docs get a 404 rendered by eh;
// a nil eh uses handler.NewErrorHandler with slog.Default. Other requests
// pass through.
func (c *Catalog) Middleware(eh handler.ErrorHandler[handler.Context]) func(http.Handler) http.Handler {
	if eh == nil {
		eh = handler.NewErrorHandler(nil)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsHelpRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			docs := c.Lookup(r.URL.Path)
			if len(docs) == 0 {
				handler.ServeError(eh, w, r, core.NewNotFound("No documentation for "+r.URL.Path))
				return
			}

			var resp handler.Response
			if len(docs) == 1 {
				resp = handler.OK(docs[0])
			} else {
				resp = handler.OK(docs)
			}
			if err := resp.Render(w, r); err != nil {
				handler.ServeError(eh, w, r, err)
			}
		})
	}
}

// Middleware is NewCatalog(docs...).Middleware(nil).
func Middleware(docs ...Doc) func(http.Handler) http.Handler {
	return NewCatalog(docs...).Middleware(nil)
}

func matchPattern(pattern, path string) bool {
	pp := strings.Split(strings.Trim(pattern, "/"), "/")
	sp := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range pp {
		if seg == "*" && i == len(pp)-1 {
			return true
		}
		if i >= len(sp) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if sp[i] == "" {
				return false
			}
			continue
		}
		if seg != sp[i] {
			return false
		}
	}
	return len(pp) == len(sp)
}
