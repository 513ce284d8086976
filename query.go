package transitcatalogue

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
)

// QueryError is a client error reported with status 400.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseFormat reads the format query parameter, falling back to def.
func parseFormat(r *http.Request, def string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if f == "" {
		f = def
	}
	switch f {
	case formatter.FormatJSON, formatter.FormatXML, formatter.FormatText, formatter.FormatProto:
		return f, nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + f}
}

// parseRouteQuery reads the from and to query parameters.
func parseRouteQuery(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		return "", "", &QueryError{Msg: "You must provide both from and to."}
	}
	return from, to, nil
}

// parseNameParam returns the decoded {name} path segment. chi matches on
// RawPath when the request carries one, and then the segment is still escaped.
func parseNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", &QueryError{Msg: "Malformed name: " + name}
	}
	return decoded, nil
}
