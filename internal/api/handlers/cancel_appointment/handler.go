package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/service/appointments"
	"github.com/umurava/maternalcare-booking/internal/service/appointments/models"
)

const (
	msgInvalidID           = "invalid appointment id"
	msgAppointmentNotFound = "appointment not found"
	msgAccessDenied        = "you do not have access to this appointment"
	msgCannotCancel        = "appointment cannot be cancelled in its current state"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Cancel(r.Context(), &models.CancelAppointmentRequest{
		ID:       id,
		OwnerRef: principal.Ref,
		Contact:  principal.Contact,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: id=%d, owner=%s", id, principal.Ref)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled: id=%d, owner=%s", id, principal.Ref)
	handlers.RespondJSON(w, http.StatusOK, result)
}
