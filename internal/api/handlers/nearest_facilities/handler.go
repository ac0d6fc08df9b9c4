package nearest_facilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
	"github.com/umurava/maternalcare-booking/internal/api/handlers/list_facilities"
	"github.com/umurava/maternalcare-booking/internal/geo"
)

const (
	msgMissingCoordinates = "lat and lng query parameters are required"
	msgInvalidCoordinates = "invalid coordinates"
	msgInvalidLimit       = "invalid limit"
)

// RankedFacilityResponse is a facility with its distance from the
// query point.
type RankedFacilityResponse struct {
	list_facilities.FacilityResponse
	DistanceKm float64 `json:"distanceKm"`
}

// NearestFacilitiesResponse HTTP response model
type NearestFacilitiesResponse struct {
	Facilities []RankedFacilityResponse `json:"facilities"`
	Total      int                      `json:"total"`
}

type Handler struct {
	ranker FacilityRanker
	logger Logger
}

func NewHandler(ranker FacilityRanker, logger Logger) *Handler {
	return &Handler{ranker: ranker, logger: logger}
}

// Handle GET /api/v1/facilities/nearest?lat=-1.95&lng=30.06&limit=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latParam, lngParam := q.Get("lat"), q.Get("lng")
	if latParam == "" || lngParam == "" {
		handlers.RespondBadRequest(w, msgMissingCoordinates)
		return
	}

	lat, errLat := strconv.ParseFloat(latParam, 64)
	lng, errLng := strconv.ParseFloat(lngParam, 64)
	if errLat != nil || errLng != nil {
		handlers.RespondBadRequest(w, msgInvalidCoordinates)
		return
	}

	limit := 0
	if l := q.Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	ranked, err := h.ranker.Nearest(lat, lng, limit)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
			return
		}
		h.logger.Error("GET /facilities/nearest - Failed: lat=%f, lng=%f, error=%v", lat, lng, err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]RankedFacilityResponse, len(ranked))
	for i, rf := range ranked {
		out[i] = RankedFacilityResponse{
			FacilityResponse: list_facilities.FromDomainFacility(rf.Facility),
			DistanceKm:       rf.DistanceKm,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, NearestFacilitiesResponse{Facilities: out, Total: len(out)})
}
