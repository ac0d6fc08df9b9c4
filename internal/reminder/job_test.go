package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/config"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

type stubStore struct {
	reservations []*domain.Reservation
	listErr      error
	marked       []int64
	markErr      error
}

func (s *stubStore) ListNeedingReminder(_ context.Context, _, _ time.Time) ([]*domain.Reservation, error) {
	return s.reservations, s.listErr
}

func (s *stubStore) MarkReminderSent(_ context.Context, id int64) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.marked = append(s.marked, id)
	return nil
}

type stubResolver struct {
	contacts map[string]notify.Contact
}

func (r *stubResolver) Resolve(_ context.Context, ownerRef string) (notify.Contact, error) {
	c, ok := r.contacts[ownerRef]
	if !ok {
		return notify.Contact{}, errors.New("owner not found")
	}
	return c, nil
}

type stubNotifier struct {
	sentIDs []int64
	err     error
}

func (n *stubNotifier) BookingReminder(_ notify.Contact, res *domain.Reservation) error {
	if n.err != nil {
		return n.err
	}
	n.sentIDs = append(n.sentIDs, res.ID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestJob(store *stubStore, resolver *stubResolver, n *stubNotifier, now time.Time) *Job {
	job := NewJob(config.ReminderConfig{Enabled: true, CronSpec: "0 * * * *"}, store, resolver, n, nopLogger{})
	job.now = func() time.Time { return now }
	return job
}

func reservationAt(id int64, owner string, date time.Time, start string) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		OwnerRef:        owner,
		FacilityID:      1,
		FacilityName:    "King Faisal Hospital",
		Date:            date,
		StartTime:       types.TimeString(start),
		AppointmentType: "prenatal",
		Status:          domain.StatusScheduled,
	}
}

func TestJobRun_SendsAndMarksInsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tomorrow := now.Add(24 * time.Hour)

	store := &stubStore{reservations: []*domain.Reservation{
		reservationAt(11, "owner-1", tomorrow, "09:00"),
	}}
	resolver := &stubResolver{contacts: map[string]notify.Contact{
		"owner-1": {Name: "Amina", Email: "amina@example.com"},
	}}
	n := &stubNotifier{}

	newTestJob(store, resolver, n, now).Run(context.Background())

	require.Equal(t, []int64{11}, n.sentIDs)
	assert.Equal(t, []int64{11}, store.marked)
}

func TestJobRun_SkipsOutsideExactWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	store := &stubStore{reservations: []*domain.Reservation{
		// Same calendar bracket but only ten hours away.
		reservationAt(21, "owner-1", now, "19:00"),
		// Two days out.
		reservationAt(22, "owner-1", now.Add(48*time.Hour), "09:00"),
	}}
	resolver := &stubResolver{contacts: map[string]notify.Contact{
		"owner-1": {Name: "Amina", Email: "amina@example.com"},
	}}
	n := &stubNotifier{}

	newTestJob(store, resolver, n, now).Run(context.Background())

	assert.Empty(t, n.sentIDs)
	assert.Empty(t, store.marked)
}

func TestJobRun_FailedSendLeavesFlagUnset(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	store := &stubStore{reservations: []*domain.Reservation{
		reservationAt(31, "owner-1", now.Add(24*time.Hour), "09:00"),
	}}
	resolver := &stubResolver{contacts: map[string]notify.Contact{
		"owner-1": {Name: "Amina", Email: "amina@example.com"},
	}}
	n := &stubNotifier{err: errors.New("smtp relay down")}

	newTestJob(store, resolver, n, now).Run(context.Background())

	assert.Empty(t, store.marked)
}

func TestJobRun_SkipsOwnerWithoutEmail(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	store := &stubStore{reservations: []*domain.Reservation{
		reservationAt(41, "owner-1", now.Add(24*time.Hour), "09:00"),
		reservationAt(42, "owner-2", now.Add(24*time.Hour), "09:00"),
	}}
	resolver := &stubResolver{contacts: map[string]notify.Contact{
		"owner-1": {Name: "Amina"},
		"owner-2": {Name: "Chantal", Email: "chantal@example.com"},
	}}
	n := &stubNotifier{}

	newTestJob(store, resolver, n, now).Run(context.Background())

	require.Equal(t, []int64{42}, n.sentIDs)
	assert.Equal(t, []int64{42}, store.marked)
}
