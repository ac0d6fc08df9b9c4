package respond_emergency

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/service/emergencies"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFacilityID  = "facilityId is required"
	msgEmergencyNotFound  = "emergency not found"
	msgFacilityNotAlerted = "facility was not alerted for this emergency"
	msgAlreadyResponded   = "emergency already responded to"
)

// RespondEmergencyRequest HTTP request model
type RespondEmergencyRequest struct {
	FacilityID int64 `json:"facilityId"`
}

type Handler struct {
	service EmergenciesService
	logger  Logger
}

func NewHandler(service EmergenciesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PATCH /api/v1/emergencies/{id}/respond
//
// Called by facility systems, not patients: the route sits behind the
// same bearer auth but skips the ownership check.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RespondEmergencyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /emergencies/{id}/respond - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.FacilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	result, err := h.service.Respond(r.Context(), id, req.FacilityID)
	if err != nil {
		switch {
		case errors.Is(err, emergencies.ErrEmergencyNotFound):
			handlers.RespondNotFound(w, msgEmergencyNotFound)

		case errors.Is(err, emergencies.ErrFacilityNotAlerted):
			handlers.RespondNotFound(w, msgFacilityNotAlerted)

		case errors.Is(err, emergencies.ErrAlreadyResponded):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResponded)

		default:
			h.logger.Error("PATCH /emergencies/{id}/respond - Failed: id=%s, facility=%d, error=%v",
				id, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /emergencies/{id}/respond - Emergency taken: id=%s, facility=%d", id, req.FacilityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
