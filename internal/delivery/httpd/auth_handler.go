package httpd

import (
	"net/http"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/service"
	"github.com/RubachokBoss/task-manager/internal/session"
)

func (h *Handler) CheckSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, struct{}{})
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		if service.KindOf(err) == service.KindUnauthenticated {
			writeJSON(w, http.StatusUnauthorized, struct{}{})
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if err := h.sessions.SetCookie(w, user.ID); err != nil {
		h.requestLogger(r).Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue session")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
