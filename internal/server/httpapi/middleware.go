package httpapi

import (
	"context"
	"net/http"

	"github.com/avolkovs/benfordapp/internal/logging"
	"github.com/avolkovs/benfordapp/internal/server/auth"
)

type ctxKey string

const ctxKeyUserID ctxKey = "userid"

// BearerAuth verifies the Authorization bearer token and injects the
// authenticated user id into the request context.
func BearerAuth(secret []byte, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.ExtractBearer(r.Header)
			if !ok {
				writeError(w, http.StatusUnauthorized, "no bearer token in headers")
				return
			}

			userID, err := auth.UserIDFromToken(token, secret)
			if err != nil {
				logger.Warn(r.Context(), "token rejected", "error", err.Error())
				writeError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFrom returns the authenticated user id injected by BearerAuth.
func userIDFrom(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKeyUserID).(string)
	return userID, ok && userID != ""
}
