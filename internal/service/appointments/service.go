package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	"github.com/umurava/maternalcare-booking/internal/service/appointments/models"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// Service covers the lifecycle of existing reservations: lookup,
// history, cancellation, rescheduling and administrative deletion.
// Creation lives in its own use case.
type Service struct {
	reservations ReservationRepository
	resolver     SlotResolver
	notifier     Notifier
	logger       Logger
}

func NewService(reservations ReservationRepository, resolver SlotResolver, notifier Notifier, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		resolver:     resolver,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetByID fetches a reservation. Owners can only see their own.
func (s *Service) GetByID(ctx context.Context, id int64, ownerRef string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for owner=%s", id, ownerRef)

	res, err := s.fetchOwned(ctx, id, ownerRef)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(res), nil
}

// GetUserAppointments returns an owner's history, optionally filtered
// by status.
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for owner=%s, status=%v", req.OwnerRef, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for owner=%s", *req.Status, req.OwnerRef)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	list, err := s.reservations.GetByOwner(ctx, req.OwnerRef, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for owner=%s: %v", req.OwnerRef, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for owner=%s", len(list), req.OwnerRef)
	return models.FromDomainReservationList(list), nil
}

// Cancel cancels a scheduled reservation and notifies the owner. The
// slot key frees up immediately because only non-cancelled rows occupy
// it.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d for owner=%s", req.ID, req.OwnerRef)

	res, err := s.fetchOwned(ctx, req.ID, req.OwnerRef)
	if err != nil {
		return nil, err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", req.ID, res.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, res.Status)
	}

	if err := s.reservations.UpdateStatus(ctx, req.ID, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: updating status for id=%d failed: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	res.Status = domain.StatusCancelled
	s.notifier.BookingCancelled(req.Contact, res)

	s.logger.Info("Cancel: appointment id=%d cancelled", req.ID)
	return models.FromDomainReservation(res), nil
}

// Reschedule applies a partial update to a reservation: any of date,
// time, type and notes may be provided, unset fields keep their current
// values. The target slot goes through the same availability validation
// as a fresh booking, and the unique index settles concurrent takers of
// the new slot.
func (s *Service) Reschedule(ctx context.Context, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: appointment id=%d for owner=%s", req.ID, req.OwnerRef)

	if !req.StartTime.IsZero() {
		if err := req.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	res, err := s.fetchOwned(ctx, req.ID, req.OwnerRef)
	if err != nil {
		return nil, err
	}

	if res.IsFinalized() {
		s.logger.Warn("Reschedule: appointment id=%d already completed", req.ID)
		return nil, ErrAlreadyFinalized
	}
	// Cancelled and no-show reservations stay terminal; rescheduling
	// must not resurrect them onto the slot grid.
	if res.Status != domain.StatusScheduled {
		s.logger.Warn("Reschedule: appointment id=%d has status %s", req.ID, res.Status)
		return nil, fmt.Errorf("%w: only scheduled appointments can be rescheduled", ErrInvalidStatus)
	}

	date := res.Date
	if !req.Date.IsZero() {
		date = req.Date
	}
	startTime := res.StartTime
	if !req.StartTime.IsZero() {
		startTime = req.StartTime
	}

	appointmentType := res.AppointmentType
	if req.AppointmentType != nil {
		appointmentType, err = domain.ParseAppointmentType(*req.AppointmentType)
		if err != nil {
			s.logger.Warn("Reschedule: unknown appointment type %q", *req.AppointmentType)
			return nil, fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, *req.AppointmentType)
		}
	}

	booked, err := s.reservations.ListBookedTimes(ctx, res.FacilityID, date)
	if err != nil {
		s.logger.Error("Reschedule: listing booked times failed: %v", err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}
	booked = withoutOwnSlot(booked, res, date)

	validation, err := s.resolver.Validate(startTime, res.FacilityID, appointmentType, booked)
	if err != nil {
		s.logger.Error("Reschedule: slot validation failed: %v", err)
		return nil, fmt.Errorf("%w: Reschedule - slot validation: %v", ErrInternal, err)
	}
	if !validation.Valid {
		s.logger.Warn("Reschedule: slot %s on %s not available for appointment id=%d",
			startTime, date.Format(domain.DateFormat), req.ID)
		return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, validation.Message)
	}

	res.Date = date
	res.StartTime = startTime
	res.AppointmentType = appointmentType
	if req.Notes != nil {
		res.Notes = req.Notes
	}
	// A moved appointment needs its reminder again.
	res.ReminderSent = false

	if err := s.reservations.Update(ctx, res); err != nil {
		if errors.Is(err, storage.ErrSlotTaken) {
			s.logger.Warn("Reschedule: slot %s taken concurrently for appointment id=%d", startTime, req.ID)
			return nil, fmt.Errorf("%w: this time slot was just booked", ErrSlotNotAvailable)
		}
		s.logger.Error("Reschedule: updating appointment id=%d failed: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: appointment id=%d moved to %s %s", req.ID, date.Format(domain.DateFormat), startTime)
	return models.FromDomainReservation(res), nil
}

// Delete removes a reservation outright. Administrative operation, no
// ownership check.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

func (s *Service) fetchOwned(ctx context.Context, id int64, ownerRef string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if res.OwnerRef != ownerRef {
		s.logger.Warn("owner=%s denied access to appointment id=%d", ownerRef, id)
		return nil, ErrAccessDenied
	}
	return res, nil
}

// withoutOwnSlot drops the reservation's current slot from the booked
// list so re-confirming the same time on the same day reads as
// available rather than as a conflict with itself.
func withoutOwnSlot(booked []types.TimeString, res *domain.Reservation, date time.Time) []types.TimeString {
	if !res.IsActive() || !sameDay(res.Date, date) {
		return booked
	}

	out := make([]types.TimeString, 0, len(booked))
	for _, b := range booked {
		if b != res.StartTime {
			out = append(out, b)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
