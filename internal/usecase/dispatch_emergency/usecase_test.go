package dispatch_emergency

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/geo"
	"github.com/umurava/maternalcare-booking/pkg/ptr"
)

type stubEmergencyRepo struct {
	created *domain.Emergency
	err     error
}

func (s *stubEmergencyRepo) Create(_ context.Context, e *domain.Emergency) (*domain.Emergency, error) {
	if s.err != nil {
		return nil, s.err
	}
	e.AlertedAt = time.Now()
	e.UpdatedAt = e.AlertedAt
	s.created = e
	return e, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	alerted []int64
}

func (n *recordingNotifier) EmergencyDispatch(facility directory.Facility, _ *domain.Emergency) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerted = append(n.alerted, facility.ID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *stubEmergencyRepo, n *recordingNotifier) *UseCase {
	ranker := geo.NewRanker(directory.New())
	return NewUseCase(repo, ranker, n, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		OwnerRef:     "owner-1",
		PatientName:  "Amina",
		PatientPhone: "+250788000001",
		// Central Kigali.
		Lat: ptr.Ptr(-1.9536),
		Lng: ptr.Ptr(30.0606),
	}
}

func TestExecute_AlertsNearestFacilities(t *testing.T) {
	repo := &stubEmergencyRepo{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.EmergencyID, "EMG-"))
	assert.Equal(t, string(domain.EmergencyPending), resp.Status)
	require.Len(t, resp.Facilities, alertedFacilityCount)
	assert.Equal(t, resp.AlertedFacilityIDs, notifier.alerted)

	// Distances are present and ascending.
	prev := -1.0
	for _, f := range resp.Facilities {
		require.NotNil(t, f.DistanceKm)
		assert.GreaterOrEqual(t, *f.DistanceKm, prev)
		prev = *f.DistanceKm
	}

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.EmergencyPending, repo.created.Status)
	assert.Equal(t, resp.AlertedFacilityIDs, repo.created.AlertedFacilityIDs)
}

func TestExecute_NoLocationFallsBackToCatalogOrder(t *testing.T) {
	repo := &stubEmergencyRepo{}
	notifier := &recordingNotifier{}
	uc := newTestUseCase(repo, notifier)

	req := validRequest()
	req.Lat, req.Lng = nil, nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Facilities, alertedFacilityCount)
	for _, f := range resp.Facilities {
		assert.Nil(t, f.DistanceKm)
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&stubEmergencyRepo{}, &recordingNotifier{})
	ctx := context.Background()

	req := validRequest()
	req.PatientName = ""
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Lng = nil
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Lat = ptr.Ptr(123.0)
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}
