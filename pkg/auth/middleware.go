package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/dosadiner/pkg/httpx"
	"github.com/ghuser/dosadiner/pkg/logger"
)

const sessionName = "dosadiner_session"
const sessionStaffIDKey = "staff_id"

// RequireStaff is a chi middleware that gates endpoints behind a staff
// session cookie. It reads the session, extracts the staff ID, and injects
// it into the request context. Returns 401 Unauthorized when the session is
// missing, invalid, or lacks a staff_id.
//
// The public ordering endpoints do not use this middleware; mount it on
// staff-only route groups.
func RequireStaff(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			staffID, ok := session.Values[sessionStaffIDKey].(string)
			if !ok || staffID == "" {
				log.WarnContext(r.Context(), "session missing staff_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStaffID(r.Context(), staffID)))
		})
	}
}
