package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/service/appointments"
)

const (
	msgInvalidID           = "invalid appointment id"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDate         = "invalid date or time format"
	msgAppointmentNotFound = "appointment not found"
	msgAccessDenied        = "you do not have access to this appointment"
	msgAlreadyFinalized    = "completed appointments cannot be rescheduled"
	msgNotReschedulable    = "only scheduled appointments can be rescheduled"
	msgSlotNotAvailable    = "the selected time slot is not available"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/appointments/{id}
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

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(id, principal.Ref)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Reschedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/{id} - Access denied: id=%d, owner=%s", id, principal.Ref)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrAlreadyFinalized):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalized)

		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondError(w, http.StatusConflict, msgNotReschedulable)

		case errors.Is(err, appointments.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: id=%d, time=%s", id, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment rescheduled: id=%d, owner=%s", id, principal.Ref)
	handlers.RespondJSON(w, http.StatusOK, result)
}
