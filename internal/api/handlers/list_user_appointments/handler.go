package list_user_appointments

import (
	"errors"
	"net/http"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/service/appointments"
	"github.com/umurava/maternalcare-booking/internal/service/appointments/models"
)

const msgInvalidStatus = "invalid status filter"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/appointments/user?status=scheduled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req := &models.GetUserAppointmentsRequest{OwnerRef: principal.Ref}
	if s := r.URL.Query().Get("status"); s != "" {
		req.Status = &s
	}

	result, err := h.service.GetUserAppointments(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /appointments/user - Failed: owner=%s, error=%v", principal.Ref, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
