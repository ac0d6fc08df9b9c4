package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/domain"
	getAvailableSlots "github.com/umurava/maternalcare-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidFacilityID  = "invalid facility id"
	msgMissingDate        = "date query parameter is required, format YYYY-MM-DD"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast         = "date cannot be in the past"
	msgFacilityNotFound   = "facility not found"
	msgUnknownType        = "unknown appointment type"
	msgStorageUnavailable = "service temporarily unavailable, please retry"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/facilities/{facilityId}/slots?date=YYYY-MM-DD&type=prenatal
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{FacilityID: facilityID, Date: date}
	if t := r.URL.Query().Get("type"); t != "" {
		req.AppointmentType = &t
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/slots - Facility not found: facility=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrUnknownAppointmentType):
			handlers.RespondBadRequest(w, msgUnknownType)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrStorageUnavailable):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageUnavailable)

		default:
			h.logger.Error("GET /facilities/{id}/slots - Failed: facility=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
