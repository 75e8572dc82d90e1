package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

type contextKey string

const ContextKeySession = contextKey("session")

// RequireRole gates a route on a valid session token carrying the given
// role. An agent token on a renter route (or vice versa) is rejected the
// same way a missing token is: 401, the API analogue of the original
// redirect-to-login.
func RequireRole(secret []byte, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractSessionToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(),
				)
				return
			}

			sess, err := ParseSessionToken(secret, tokenStr)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Session expired", err,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid session", err,
				)
				return
			}
			if sess.Role != role {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Wrong role for this area",
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed by RequireRole, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ContextKeySession).(*Session)
	return s
}
