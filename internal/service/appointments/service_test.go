package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/internal/service/appointments/models"
	"github.com/umurava/maternalcare-booking/internal/slots"
	"github.com/umurava/maternalcare-booking/pkg/ptr"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

type stubRepository struct {
	byID      map[int64]*domain.Reservation
	booked    []types.TimeString
	updated   *domain.Reservation
	updateErr error
	statusSet map[int64]domain.ReservationStatus
	deleted   []int64
}

func newStubRepository(reservations ...*domain.Reservation) *stubRepository {
	byID := make(map[int64]*domain.Reservation)
	for _, r := range reservations {
		byID[r.ID] = r
	}
	return &stubRepository{byID: byID, statusSet: make(map[int64]domain.ReservationStatus)}
}

func (s *stubRepository) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (s *stubRepository) GetByOwner(_ context.Context, ownerRef string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range s.byID {
		if r.OwnerRef != ownerRef {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRepository) ListBookedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return s.booked, nil
}

func (s *stubRepository) Update(_ context.Context, res *domain.Reservation) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = res
	return nil
}

func (s *stubRepository) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := s.byID[id]; !ok {
		return storage.ErrReservationNotFound
	}
	s.statusSet[id] = status
	return nil
}

func (s *stubRepository) Delete(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return storage.ErrReservationNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type recordingNotifier struct {
	cancelled []int64
}

func (n *recordingNotifier) BookingCancelled(_ notify.Contact, res *domain.Reservation) {
	n.cancelled = append(n.cancelled, res.ID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledReservation(id int64, owner string) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		OwnerRef:        owner,
		FacilityID:      2,
		FacilityName:    "Kibagabaga District Hospital",
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		AppointmentType: domain.TypePrenatal,
		Status:          domain.StatusScheduled,
	}
}

func newTestService(repo *stubRepository, n *recordingNotifier) *Service {
	return NewService(repo, slots.NewResolver(), n, nopLogger{})
}

func TestGetByID_OwnershipEnforced(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.GetByID(context.Background(), 1, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, "owner-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, "owner-1")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	cancelled := scheduledReservation(2, "owner-1")
	cancelled.Status = domain.StatusCancelled

	repo := newStubRepository(scheduledReservation(1, "owner-1"), cancelled, scheduledReservation(3, "owner-2"))
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{OwnerRef: "owner-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		OwnerRef: "owner-1",
		Status:   ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		OwnerRef: "owner-1",
		Status:   ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancel_ScheduledOnly(t *testing.T) {
	completed := scheduledReservation(2, "owner-1")
	completed.Status = domain.StatusCompleted

	repo := newStubRepository(scheduledReservation(1, "owner-1"), completed)
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{ID: 1, OwnerRef: "owner-1"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.statusSet[1])
	assert.Equal(t, []int64{1}, notifier.cancelled)

	_, err = svc.Cancel(context.Background(), &models.CancelAppointmentRequest{ID: 2, OwnerRef: "owner-1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestReschedule_MovesToValidSlot(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.Reschedule(context.Background(), &models.RescheduleAppointmentRequest{
		ID:        1,
		OwnerRef:  "owner-1",
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	require.NotNil(t, repo.updated)
	assert.False(t, repo.updated.ReminderSent)
}

func TestReschedule_RejectsCompletedAndBadSlots(t *testing.T) {
	completed := scheduledReservation(2, "owner-1")
	completed.Status = domain.StatusCompleted

	repo := newStubRepository(scheduledReservation(1, "owner-1"), completed)
	repo.booked = []types.TimeString{"10:00"}
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Reschedule(ctx, &models.RescheduleAppointmentRequest{
		ID: 2, OwnerRef: "owner-1", Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	// Target slot already booked by someone else.
	_, err = svc.Reschedule(ctx, &models.RescheduleAppointmentRequest{
		ID: 1, OwnerRef: "owner-1", Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Outside the prenatal template entirely.
	_, err = svc.Reschedule(ctx, &models.RescheduleAppointmentRequest{
		ID: 1, OwnerRef: "owner-1", Date: date, StartTime: "12:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestReschedule_PartialUpdate(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	// The reservation's own slot shows up booked; a notes-only update
	// must re-confirm it without tripping a conflict.
	repo.booked = []types.TimeString{"09:00"}
	svc := newTestService(repo, &recordingNotifier{})

	resp, err := svc.Reschedule(context.Background(), &models.RescheduleAppointmentRequest{
		ID:       1,
		OwnerRef: "owner-1",
		Notes:    ptr.Ptr("bring previous scan results"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "bring previous scan results", *resp.Notes)

	// Time-only update keeps the date.
	repo.booked = nil
	resp, err = svc.Reschedule(context.Background(), &models.RescheduleAppointmentRequest{
		ID:        1,
		OwnerRef:  "owner-1",
		StartTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestReschedule_RejectsCancelledAndNoShow(t *testing.T) {
	cancelled := scheduledReservation(1, "owner-1")
	cancelled.Status = domain.StatusCancelled
	noShow := scheduledReservation(2, "owner-1")
	noShow.Status = domain.StatusNoShow

	repo := newStubRepository(cancelled, noShow)
	svc := newTestService(repo, &recordingNotifier{})
	ctx := context.Background()
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	_, err := svc.Reschedule(ctx, &models.RescheduleAppointmentRequest{
		ID: 1, OwnerRef: "owner-1", Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Reschedule(ctx, &models.RescheduleAppointmentRequest{
		ID: 2, OwnerRef: "owner-1", Date: date, StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Neither terminal reservation came back to life.
	assert.Nil(t, repo.updated)
}

func TestReschedule_SameSlotIsNotAConflict(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	// The reservation's own time shows up in the booked list.
	repo.booked = []types.TimeString{"09:00"}
	svc := newTestService(repo, &recordingNotifier{})

	_, err := svc.Reschedule(context.Background(), &models.RescheduleAppointmentRequest{
		ID:        1,
		OwnerRef:  "owner-1",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
	})
	assert.NoError(t, err)
}

func TestReschedule_LostRaceSurfacesConflict(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	repo.updateErr = storage.ErrSlotTaken
	svc := newTestService(repo, &recordingNotifier{})

	_, err := svc.Reschedule(context.Background(), &models.RescheduleAppointmentRequest{
		ID:        1,
		OwnerRef:  "owner-1",
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestDelete(t *testing.T) {
	repo := newStubRepository(scheduledReservation(1, "owner-1"))
	svc := newTestService(repo, &recordingNotifier{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrAppointmentNotFound)
}
