package handlers

import (
	"net/http"
	"strconv"
)

// getParam reads a path or query parameter whether the router stores it
// with a leading colon or the request carries it as a plain query value.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	if val := r.URL.Query().Get(name); val != "" {
		return val
	}
	return r.PathValue(name)
}

// getIntParam parses a numeric parameter, returning fallback when the
// parameter is absent or malformed.
func getIntParam(r *http.Request, name string, fallback int) int {
	raw := getParam(r, name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
