package middleware

import (
	"net/http"

	"github.com/thegrihome/grihome-api/internal/utils"
)

// ErrKey selects which 405 body an endpoint family uses. Almost everything
// responds {"message":"Method not allowed"}; the projects listing responds
// {"error":"Method not allowed"}. Both are load-bearing for their callers.
type ErrKey int

const (
	MessageKey ErrKey = iota
	ErrorKey
)

// RequireMethod is the first pipeline stage of every endpoint: exactly one
// HTTP method is accepted, anything else is rejected with the documented 405
// body and no further processing.
func RequireMethod(method string, key ErrKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				if key == ErrorKey {
					utils.RespondErrorKeyed(w, http.StatusMethodNotAllowed, "Method not allowed", nil, false)
				} else {
					utils.RespondMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
