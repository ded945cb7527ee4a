package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// ExtractBearer looks up the Authorization header and returns the bearer
// token after the literal "Bearer " prefix. A missing header or a malformed
// prefix yields ok=false, never an error.
func ExtractBearer(h http.Header) (string, bool) {
	v := h.Get("Authorization")
	if !strings.HasPrefix(v, bearerPrefix) {
		return "", false
	}
	return v[len(bearerPrefix):], true
}
