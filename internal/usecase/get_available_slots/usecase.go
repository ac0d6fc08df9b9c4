package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// UseCase resolves the open slots at a facility on a date, either for
// one appointment type or across the whole facility grid.
type UseCase struct {
	reservations ReservationRepository
	facilities   FacilityDirectory
	resolver     SlotResolver
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	reservations ReservationRepository,
	facilities FacilityDirectory,
	resolver SlotResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		facilities:   facilities,
		resolver:     resolver,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s, type=%v",
		req.FacilityID, req.Date.Format(domain.DateFormat), stringOrAll(req.AppointmentType))

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	facility, err := uc.facilities.GetByID(req.FacilityID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
		return nil, ErrFacilityNotFound
	}

	booked, err := uc.reservations.ListBookedTimes(ctx, req.FacilityID, req.Date)
	if err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			uc.logger.Error("GetAvailableSlots: storage unavailable: %v", err)
			return nil, ErrStorageUnavailable
		}
		uc.logger.Error("GetAvailableSlots: listing booked times failed: %v", err)
		return nil, fmt.Errorf("%w: listing booked times: %v", ErrInternal, err)
	}

	resp := &Response{
		FacilityID:      req.FacilityID,
		FacilityName:    facility.Name,
		Date:            req.Date,
		AppointmentType: req.AppointmentType,
	}

	var effective []types.TimeString
	if req.AppointmentType != nil {
		appointmentType, err := domain.ParseAppointmentType(*req.AppointmentType)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: unknown appointment type %q", *req.AppointmentType)
			return nil, fmt.Errorf("%w: %q", ErrUnknownAppointmentType, *req.AppointmentType)
		}

		effective, err = uc.resolver.EffectiveSlots(req.FacilityID, appointmentType)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving slots: %v", ErrInternal, err)
		}

		template, err := uc.resolver.ResolveTemplate(appointmentType)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving template: %v", ErrInternal, err)
		}
		resp.SlotInfo = &SlotInfo{
			DurationMinutes:    template.DurationMinutes,
			MaxPerDay:          template.MaxPerDay,
			RequiresSpecialist: template.RequiresSpecialist,
			Priority:           string(template.Priority),
		}

		resp.Slots, err = uc.resolver.Available(req.FacilityID, appointmentType, booked)
		if err != nil {
			return nil, fmt.Errorf("%w: computing availability: %v", ErrInternal, err)
		}
	} else {
		effective, err = uc.resolver.AllSlotsForFacility(req.FacilityID)
		if err != nil {
			return nil, fmt.Errorf("%w: resolving facility grid: %v", ErrInternal, err)
		}
		resp.Slots = subtractBooked(effective, booked)
	}

	resp.TotalSlots = len(effective)
	resp.AvailableCount = len(resp.Slots)
	resp.BookedCount = resp.TotalSlots - resp.AvailableCount

	uc.logger.Info("GetAvailableSlots: facility=%d date=%s, %d/%d slots open",
		req.FacilityID, req.Date.Format(domain.DateFormat), resp.AvailableCount, resp.TotalSlots)
	return resp, nil
}

func subtractBooked(effective, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	open := make([]types.TimeString, 0, len(effective))
	for _, s := range effective {
		if _, ok := taken[s]; !ok {
			open = append(open, s)
		}
	}
	return open
}

func stringOrAll(s *string) string {
	if s == nil {
		return "all"
	}
	return *s
}
