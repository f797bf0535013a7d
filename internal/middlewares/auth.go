package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autoops/taskboard/internal/jwt"
	"go.uber.org/zap"
)

// Tokener defines the minimal token operations the guard needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a verifiable bearer token and
// binds the decoded claims to the request context. A missing or malformed
// header answers 401; an expired or cryptographically invalid token
// answers 403 so clients can tell a stale session from no session.
func AuthMiddleware(tokener Tokener, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				msg := "Invalid token format"
				if errors.Is(err, jwt.ErrNoToken) {
					msg = "Token is missing"
				}
				reject(w, http.StatusUnauthorized, msg)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Debugw("token rejected", "err", err)
				msg := "Invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "Token has expired"
				}
				reject(w, http.StatusForbidden, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
