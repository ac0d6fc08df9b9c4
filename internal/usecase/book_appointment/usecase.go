package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// UseCase books an appointment slot. The database's partial unique
// index on (facility_id, date, start_time) is the arbiter for
// concurrent requests: the availability check here is advisory and the
// insert settles the race.
type UseCase struct {
	reservations ReservationRepository
	facilities   FacilityDirectory
	resolver     SlotResolver
	notifier     Notifier
	contacts     ContactBook
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	reservations ReservationRepository,
	facilities FacilityDirectory,
	resolver SlotResolver,
	notifier Notifier,
	contacts ContactBook,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		facilities:   facilities,
		resolver:     resolver,
		notifier:     notifier,
		contacts:     contacts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: owner=%s, facility=%d, date=%s, time=%s, type=%s",
		req.OwnerRef, req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.AppointmentType)

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	appointmentType, err := domain.ParseAppointmentType(req.AppointmentType)
	if err != nil {
		uc.logger.Warn("BookAppointment: unknown appointment type %q", req.AppointmentType)
		return nil, fmt.Errorf("%w: %q", ErrUnknownAppointmentType, req.AppointmentType)
	}

	facility, err := uc.facilities.GetByID(req.FacilityID)
	if err != nil {
		uc.logger.Warn("BookAppointment: facility id=%d not found", req.FacilityID)
		return nil, ErrFacilityNotFound
	}

	booked, err := uc.reservations.ListBookedTimes(ctx, req.FacilityID, req.Date)
	if err != nil {
		return nil, uc.mapStorageError("listing booked times", err)
	}

	validation, err := uc.resolver.Validate(req.StartTime, req.FacilityID, appointmentType, booked)
	if err != nil {
		uc.logger.Error("BookAppointment: slot validation failed: %v", err)
		return nil, fmt.Errorf("%w: slot validation: %v", ErrInternal, err)
	}
	if !validation.Valid {
		uc.logger.Warn("BookAppointment: slot %s not available at facility id=%d for type %s",
			req.StartTime, req.FacilityID, appointmentType)
		return nil, &SlotUnavailableError{
			Message:        validation.Message,
			AvailableSlots: capSuggestions(validation.AvailableSlots),
		}
	}

	template, err := uc.resolver.ResolveTemplate(appointmentType)
	if err != nil {
		uc.logger.Error("BookAppointment: resolving template for %s failed: %v", appointmentType, err)
		return nil, fmt.Errorf("%w: resolving template: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		OwnerRef:        req.OwnerRef,
		FacilityID:      req.FacilityID,
		FacilityName:    facility.Name,
		Date:            req.Date,
		StartTime:       req.StartTime,
		AppointmentType: appointmentType,
		Notes:           req.Notes,
		Status:          domain.StatusScheduled,
	}

	created, err := uc.reservations.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, storage.ErrSlotTaken) {
			// Lost the race. Refresh availability so the caller gets
			// suggestions that exclude the slot that just went.
			uc.logger.Warn("BookAppointment: slot %s at facility id=%d taken concurrently",
				req.StartTime, req.FacilityID)
			return nil, uc.slotTakenError(ctx, req, appointmentType)
		}
		return nil, uc.mapStorageError("creating reservation", err)
	}

	uc.logger.Info("BookAppointment: created reservation id=%d", created.ID)

	// Keep the contact on file for the reminder sweep. A failed upsert
	// costs a reminder, not the booking.
	if err := uc.contacts.Upsert(ctx, req.OwnerRef, req.Contact); err != nil {
		uc.logger.Error("BookAppointment: storing contact for owner=%s failed: %v", req.OwnerRef, err)
	}

	uc.notifier.BookingConfirmed(req.Contact, created)

	return &Response{
		ID:              created.ID,
		OwnerRef:        created.OwnerRef,
		FacilityID:      created.FacilityID,
		FacilityName:    created.FacilityName,
		Date:            created.Date,
		StartTime:       created.StartTime,
		AppointmentType: string(created.AppointmentType),
		DurationMinutes: template.DurationMinutes,
		Status:          string(created.Status),
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

func (uc *UseCase) slotTakenError(ctx context.Context, req *Request, appointmentType domain.AppointmentType) error {
	e := &SlotUnavailableError{Message: "This time slot was just booked by someone else"}
	booked, err := uc.reservations.ListBookedTimes(ctx, req.FacilityID, req.Date)
	if err != nil {
		return e
	}
	if available, err := uc.resolver.Available(req.FacilityID, appointmentType, booked); err == nil {
		e.AvailableSlots = capSuggestions(available)
	}
	return e
}

// capSuggestions bounds the guidance list returned with a rejection.
func capSuggestions(available []types.TimeString) []types.TimeString {
	if len(available) > domain.SuggestedSlotsLimit {
		return available[:domain.SuggestedSlotsLimit]
	}
	return available
}

func (uc *UseCase) mapStorageError(op string, err error) error {
	if errors.Is(err, storage.ErrStorageUnavailable) {
		uc.logger.Error("BookAppointment: storage unavailable while %s: %v", op, err)
		return ErrStorageUnavailable
	}
	uc.logger.Error("BookAppointment: %s failed: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
