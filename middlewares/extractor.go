package middlewares

import "net/http"

// Source extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type Source func(*http.Request) (string, bool)

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}
