package cancel_emergency

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

type cancelledResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service EmergenciesService
	logger  Logger
}

func NewHandler(service EmergenciesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/v1/emergencies/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]

	if err := h.service.Cancel(r.Context(), id, principal.Ref); err != nil {
		switch {
		case errors.Is(err, emergencies.ErrEmergencyNotFound):
			handlers.RespondNotFound(w, msgEmergencyNotFound)

		case errors.Is(err, emergencies.ErrAccessDenied):
			h.logger.Warn("DELETE /emergencies/{id} - Access denied: id=%s, owner=%s", id, principal.Ref)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /emergencies/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /emergencies/{id} - Emergency cancelled: id=%s, owner=%s", id, principal.Ref)
	handlers.RespondJSON(w, http.StatusOK, cancelledResponse{Message: "emergency cancelled"})
}
