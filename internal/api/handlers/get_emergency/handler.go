package get_emergency

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/service/emergencies"
)

const (
	msgEmergencyNotFound = "emergency not found"
	msgAccessDenied      = "you do not have access to this emergency"
)

type Handler struct {
	service EmergenciesService
	logger  Logger
}

func NewHandler(service EmergenciesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/emergencies/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id, principal.Ref)
	if err != nil {
		switch {
		case errors.Is(err, emergencies.ErrEmergencyNotFound):
			handlers.RespondNotFound(w, msgEmergencyNotFound)

		case errors.Is(err, emergencies.ErrAccessDenied):
			h.logger.Warn("GET /emergencies/{id} - Access denied: id=%s, owner=%s", id, principal.Ref)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /emergencies/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
