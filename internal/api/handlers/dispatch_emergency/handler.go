package dispatch_emergency

import (
	"errors"
	"net/http"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	dispatchEmergency "github.com/umurava/maternalcare-booking/internal/usecase/dispatch_emergency"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingPatientData = "patient name and phone are required"
	msgInvalidLocation    = "invalid location coordinates"
	msgNoFacilities       = "no nearby facilities found"
)

type Handler struct {
	useCase DispatchEmergencyUseCase
	logger  Logger
}

func NewHandler(useCase DispatchEmergencyUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/emergencies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req DispatchEmergencyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /emergencies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal))
	if err != nil {
		switch {
		case errors.Is(err, dispatchEmergency.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPatientData)

		case errors.Is(err, dispatchEmergency.ErrInvalidLocation):
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, dispatchEmergency.ErrNoFacilities):
			handlers.RespondNotFound(w, msgNoFacilities)

		default:
			h.logger.Error("POST /emergencies - Failed: owner=%s, error=%v", principal.Ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /emergencies - Alert dispatched: id=%s, owner=%s, facilities=%v",
		result.EmergencyID, principal.Ref, result.AlertedFacilityIDs)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
