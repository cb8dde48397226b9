package httpd

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/service"
)

const msgInvalidBody = "Invalid request body"

// requestLogger prefers the logger RequestLogger put on the context, which
// already carries the request id.
func (h *Handler) requestLogger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}

// handleServiceError maps a service error kind to its status and body shape.
// Wrapped details are logged and never written to the client.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.requestLogger(r)

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		log.Error().Err(err).Msg("Unhandled error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch svcErr.Kind {
	case service.KindNotFound:
		writeError(w, http.StatusNotFound, svcErr.Message)
	case service.KindUnauthenticated:
		writeError(w, http.StatusUnauthorized, svcErr.Message)
	case service.KindBadReference:
		writeError(w, http.StatusBadRequest, svcErr.Message)
	case service.KindValidation:
		if svcErr.Err != nil {
			log.Warn().Err(svcErr.Err).Msg(svcErr.Message)
		}
		writeErrors(w, http.StatusBadRequest, svcErr.Message)
	default:
		log.Error().
			Err(svcErr.Err).
			Str("kind", svcErr.Kind.String()).
			Msg(svcErr.Message)
		writeError(w, http.StatusInternalServerError, svcErr.Message)
	}
}
