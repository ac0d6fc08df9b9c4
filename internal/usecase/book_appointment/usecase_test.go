package book_appointment

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/appointment"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/internal/slots"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// memRepository mimics the partial unique index: the first active
// reservation per (facility, date, time) wins, later inserts get
// ErrSlotTaken.
type memRepository struct {
	mu     sync.Mutex
	nextID int64
	byKey  map[string]*domain.Reservation
}

func newMemRepository() *memRepository {
	return &memRepository{nextID: 1, byKey: make(map[string]*domain.Reservation)}
}

func slotKey(facilityID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", facilityID, date.Format(domain.DateFormat), start)
}

func (m *memRepository) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slotKey(res.FacilityID, res.Date, res.StartTime)
	if _, exists := m.byKey[key]; exists {
		return nil, storage.ErrSlotTaken
	}

	created := *res
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.nextID++
	m.byKey[key] = &created
	return &created, nil
}

func (m *memRepository) ListBookedTimes(_ context.Context, facilityID int64, date time.Time) ([]types.TimeString, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var booked []types.TimeString
	for _, res := range m.byKey {
		if res.FacilityID == facilityID && res.Date.Equal(date) {
			booked = append(booked, res.StartTime)
		}
	}
	return booked, nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	confirmed []int64
}

func (n *recordingNotifier) BookingConfirmed(_ notify.Contact, res *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, res.ID)
}

type memContactBook struct {
	mu      sync.Mutex
	byOwner map[string]notify.Contact
}

func (b *memContactBook) Upsert(_ context.Context, ownerRef string, c notify.Contact) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.byOwner == nil {
		b.byOwner = make(map[string]notify.Contact)
	}
	b.byOwner[ownerRef] = c
	return nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *memRepository, n *recordingNotifier) *UseCase {
	uc := NewUseCase(repo, directory.New(), slots.NewResolver(), n, &memContactBook{}, nopLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		OwnerRef:        "owner-1",
		FacilityID:      2,
		Date:            time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		AppointmentType: "prenatal",
		Contact:         notify.Contact{Name: "Amina", Email: "amina@example.com"},
	}
}

func TestExecute_BooksValidSlot(t *testing.T) {
	repo := newMemRepository()
	notifier := &recordingNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Kibagabaga District Hospital", resp.FacilityName)
	assert.Equal(t, "prenatal", resp.AppointmentType)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

func TestExecute_RejectsSlotOutsideTemplate(t *testing.T) {
	uc := newTestUseCase(newMemRepository(), &recordingNotifier{})

	req := validRequest()
	req.StartTime = "09:15" // postpartum slot, not prenatal

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Contains(t, slotErr.AvailableSlots, types.TimeString("09:00"))
}

func TestExecute_RejectsDoubleBooking(t *testing.T) {
	repo := newMemRepository()
	uc := newTestUseCase(repo, &recordingNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.OwnerRef = "owner-2"
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.NotContains(t, slotErr.AvailableSlots, types.TimeString("09:00"))
}

func TestExecute_SuggestionsCappedAtTen(t *testing.T) {
	repo := newMemRepository()
	uc := newTestUseCase(repo, &recordingNotifier{})

	// Vaccination has 23 template slots, well past the cap.
	req := validRequest()
	req.AppointmentType = "vaccination"
	req.StartTime = "07:00"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Len(t, slotErr.AvailableSlots, domain.SuggestedSlotsLimit)

	// Same cap on the lost-race path.
	first := validRequest()
	first.AppointmentType = "vaccination"
	first.StartTime = "09:00"
	_, err = uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.OwnerRef = "owner-2"
	second.AppointmentType = "vaccination"
	second.StartTime = "09:00"
	_, err = uc.Execute(context.Background(), second)
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	require.ErrorAs(t, err, &slotErr)
	assert.Len(t, slotErr.AvailableSlots, domain.SuggestedSlotsLimit)
	assert.NotContains(t, slotErr.AvailableSlots, types.TimeString("09:00"))
}

func TestExecute_ConcurrentBookingsOneWins(t *testing.T) {
	repo := newMemRepository()
	notifier := &recordingNotifier{}
	uc := newTestUseCase(repo, notifier)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.OwnerRef = fmt.Sprintf("owner-%d", i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestExecute_EmergencySlotAtOverrideFacility(t *testing.T) {
	uc := newTestUseCase(newMemRepository(), &recordingNotifier{})

	req := validRequest()
	req.FacilityID = 3 // CHUK
	req.AppointmentType = "emergency"
	req.StartTime = "08:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(newMemRepository(), &recordingNotifier{})
	ctx := context.Background()

	req := validRequest()
	req.OwnerRef = ""
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Date = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = validRequest()
	req.AppointmentType = "dental"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrUnknownAppointmentType)

	req = validRequest()
	req.FacilityID = 99
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	req = validRequest()
	req.StartTime = "9:00"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	longNotes := strings.Repeat("x", domain.MaxNotesLength+1)
	req.Notes = &longNotes
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
