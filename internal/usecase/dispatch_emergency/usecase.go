package dispatch_emergency

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/geo"
)

// alertedFacilityCount is how many facilities get paged per alert.
const alertedFacilityCount = 4

// UseCase raises an emergency alert: it picks the nearest
// emergency-capable facilities, persists the dispatch record and pages
// each facility over SMS.
type UseCase struct {
	emergencies EmergencyRepository
	ranker      FacilityRanker
	notifier    Notifier
	logger      Logger
}

func NewUseCase(emergencies EmergencyRepository, ranker FacilityRanker, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		emergencies: emergencies,
		ranker:      ranker,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DispatchEmergency: owner=%s, patient=%s, hasLocation=%t",
		req.OwnerRef, req.PatientName, req.Lat != nil && req.Lng != nil)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DispatchEmergency: validation failed: %v", err)
		return nil, err
	}

	hasLocation := req.Lat != nil && req.Lng != nil
	var lat, lng float64
	if hasLocation {
		lat, lng = *req.Lat, *req.Lng
	}

	ranked, err := uc.ranker.NearestEmergency(lat, lng, alertedFacilityCount, hasLocation)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			uc.logger.Warn("DispatchEmergency: invalid location (%v, %v)", lat, lng)
			return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		uc.logger.Error("DispatchEmergency: ranking facilities failed: %v", err)
		return nil, fmt.Errorf("%w: ranking facilities: %v", ErrInternal, err)
	}
	if len(ranked) == 0 {
		uc.logger.Error("DispatchEmergency: no emergency-capable facilities in catalog")
		return nil, ErrNoFacilities
	}

	facilityIDs := make([]int64, len(ranked))
	for i, rf := range ranked {
		facilityIDs[i] = rf.Facility.ID
	}

	emergency := &domain.Emergency{
		ID:                 "EMG-" + uuid.NewString(),
		OwnerRef:           req.OwnerRef,
		PatientName:        req.PatientName,
		PatientPhone:       req.PatientPhone,
		PatientEmail:       req.PatientEmail,
		PatientAge:         req.PatientAge,
		PatientGender:      req.PatientGender,
		Lat:                req.Lat,
		Lng:                req.Lng,
		AlertedFacilityIDs: facilityIDs,
		Status:             domain.EmergencyPending,
	}

	created, err := uc.emergencies.Create(ctx, emergency)
	if err != nil {
		uc.logger.Error("DispatchEmergency: persisting emergency failed: %v", err)
		return nil, fmt.Errorf("%w: persisting emergency: %v", ErrInternal, err)
	}

	uc.logger.Info("DispatchEmergency: alert %s created, paging %d facilities", created.ID, len(ranked))

	facilities := make([]AlertedFacility, len(ranked))
	for i, rf := range ranked {
		uc.notifier.EmergencyDispatch(rf.Facility, created)

		af := AlertedFacility{
			ID:             rf.Facility.ID,
			Name:           rf.Facility.Name,
			EmergencyPhone: rf.Facility.EmergencyPhone,
		}
		if hasLocation {
			d := rf.DistanceKm
			af.DistanceKm = &d
		}
		facilities[i] = af
	}

	return &Response{
		EmergencyID:        created.ID,
		Status:             string(created.Status),
		AlertedFacilityIDs: facilityIDs,
		Facilities:         facilities,
		AlertedAt:          created.AlertedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.OwnerRef == "" {
		return fmt.Errorf("%w: owner reference is required", ErrInvalidInput)
	}
	if req.PatientName == "" || req.PatientPhone == "" {
		return fmt.Errorf("%w: patient name and phone are required", ErrInvalidInput)
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		return fmt.Errorf("%w: latitude and longitude must be supplied together", ErrInvalidInput)
	}
	return nil
}
