package list_facilities

import (
	"net/http"

	"github.com/umurava/maternalcare-booking/internal/api/handlers"
)

type Handler struct {
	directory FacilityDirectory
	logger    Logger
}

func NewHandler(directory FacilityDirectory, logger Logger) *Handler {
	return &Handler{directory: directory, logger: logger}
}

// Handle GET /api/v1/facilities?q=kigali
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var result *FacilityListResponse
	if q := r.URL.Query().Get("q"); q != "" {
		result = FromDomainFacilities(h.directory.Search(q))
	} else {
		result = FromDomainFacilities(h.directory.GetAll())
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
