package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/session"
)

// Session resolves the session cookie, if any, into a user id on the request
// context. It never rejects a request; handlers decide whether a session is
// required.
func Session(manager *session.Manager, log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			userID, ok := manager.UserIDFromRequest(r)
			if !ok {
				if _, err := r.Cookie(manager.CookieName()); err == nil {
					log.Debug().
						Str("path", r.URL.Path).
						Msg("Ignoring invalid session cookie")
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithUserID(r.Context(), userID)))
		}
		return http.HandlerFunc(fn)
	}
}
