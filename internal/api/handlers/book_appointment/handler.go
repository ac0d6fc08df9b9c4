package book_appointment

import (
	"errors"
	"net/http"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	bookAppointment "github.com/umurava/maternalcare-booking/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSlotNotAvailable   = "the selected time slot is not available"
	msgFacilityNotFound   = "facility not found"
	msgUnknownType        = "unknown appointment type"
	msgInvalidBookingDate = "appointment date cannot be in the past"
	msgStorageUnavailable = "service temporarily unavailable, please retry"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *bookAppointment.SlotUnavailableError

		switch {
		case errors.As(err, &slotErr):
			h.logger.Warn("POST /appointments - Slot not available: owner=%s, facility=%d, time=%s",
				principal.Ref, req.FacilityID, req.StartTime)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:          msgSlotNotAvailable,
				AvailableSlots: slotsToStrings(slotErr.AvailableSlots),
			})

		case errors.Is(err, bookAppointment.ErrSlotNotAvailable):
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrFacilityNotFound):
			h.logger.Warn("POST /appointments - Facility not found: facility=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookAppointment.ErrUnknownAppointmentType):
			handlers.RespondBadRequest(w, msgUnknownType)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookAppointment.ErrStorageUnavailable):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to book: owner=%s, error=%v", principal.Ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: id=%d, owner=%s, facility=%d",
		result.ID, principal.Ref, result.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
