package facilities_by_sector

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/handlers/list_facilities"
)

const msgMissingParams = "district and sector are required"

// SectorMatchResponse is a facility annotated with how it matched the
// requested sector.
type SectorMatchResponse struct {
	list_facilities.FacilityResponse
	IsInSector bool   `json:"isInSector"`
	Proximity  string `json:"proximity"`
}

// SectorFacilitiesResponse HTTP response model
type SectorFacilitiesResponse struct {
	District   string                `json:"district"`
	Sector     string                `json:"sector"`
	Facilities []SectorMatchResponse `json:"facilities"`
	Total      int                   `json:"total"`
}

type Handler struct {
	directory FacilityDirectory
	logger    Logger
}

func NewHandler(directory FacilityDirectory, logger Logger) *Handler {
	return &Handler{directory: directory, logger: logger}
}

// Handle GET /api/v1/facilities/sector/{district}/{sector}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	district, sector := vars["district"], vars["sector"]
	if district == "" || sector == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	matches := h.directory.GetBySector(district, sector)

	out := make([]SectorMatchResponse, len(matches))
	for i, m := range matches {
		out[i] = SectorMatchResponse{
			FacilityResponse: list_facilities.FromDomainFacility(m.Facility),
			IsInSector:       m.IsInSector,
			Proximity:        m.Proximity,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, SectorFacilitiesResponse{
		District:   district,
		Sector:     sector,
		Facilities: out,
		Total:      len(out),
	})
}
