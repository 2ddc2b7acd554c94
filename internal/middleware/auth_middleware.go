package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thegrihome/grihome-api/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID = contextKey("userID")

	// Cookie name follows the __Host- prefix rule (no Domain attribute allowed)
	AccessTokenCookieName = "__Host-accessToken"
)

// Auth gates session-required endpoints. The JWT is read from the
// Authorization: Bearer header, falling back to the access-token cookie for
// browser clients. Any missing/invalid/expired token, or a token with an
// empty subject, yields 401 {"message":"Unauthorized"} before the wrapped
// handler runs.
func Auth(pub *rsa.PublicKey, debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized", err, debug)
				return
			}

			tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return pub, nil
			})
			if err != nil || !tok.Valid {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized", err, debug)
				return
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized", nil, debug)
				return
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized", nil, debug)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID resolves the authenticated user's id from the request context.
func UserID(r *http.Request) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(ContextKeyUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer "), nil
	}

	c, err := r.Cookie(AccessTokenCookieName)
	if err != nil || c.Value == "" {
		return "", errors.New("missing access token")
	}
	return c.Value, nil
}
