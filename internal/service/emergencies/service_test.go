package emergencies

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/emergency"
)

type stubRepository struct {
	byID    map[string]*domain.Emergency
	deleted []string
}

func newStubRepository(records ...*domain.Emergency) *stubRepository {
	byID := make(map[string]*domain.Emergency)
	for _, e := range records {
		byID[e.ID] = e
	}
	return &stubRepository{byID: byID}
}

func (s *stubRepository) GetByID(_ context.Context, id string) (*domain.Emergency, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrEmergencyNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *stubRepository) MarkResponded(_ context.Context, id string, facilityID int64) error {
	e, ok := s.byID[id]
	if !ok || e.RespondedFacilityID != nil {
		return storage.ErrAlreadyResponded
	}
	e.RespondedFacilityID = &facilityID
	e.Status = domain.EmergencyResponded
	return nil
}

func (s *stubRepository) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return storage.ErrEmergencyNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingEmergency(id, owner string) *domain.Emergency {
	return &domain.Emergency{
		ID:                 id,
		OwnerRef:           owner,
		PatientName:        "Amina",
		PatientPhone:       "+250788000001",
		AlertedFacilityIDs: []int64{1, 3, 6},
		Status:             domain.EmergencyPending,
		AlertedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

func TestGetByID_OwnershipEnforced(t *testing.T) {
	repo := newStubRepository(pendingEmergency("EMG-1", "owner-1"))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "EMG-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "EMG-1", resp.ID)
	assert.Equal(t, []int64{1, 3, 6}, resp.AlertedFacilityIDs)

	_, err = svc.GetByID(context.Background(), "EMG-1", "owner-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "EMG-404", "owner-1")
	assert.ErrorIs(t, err, ErrEmergencyNotFound)
}

func TestCancel(t *testing.T) {
	repo := newStubRepository(pendingEmergency("EMG-1", "owner-1"))
	svc := NewService(repo, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), "EMG-1", "owner-2"), ErrAccessDenied)

	require.NoError(t, svc.Cancel(context.Background(), "EMG-1", "owner-1"))
	assert.Equal(t, []string{"EMG-1"}, repo.deleted)
}

func TestRespond(t *testing.T) {
	repo := newStubRepository(pendingEmergency("EMG-1", "owner-1"))
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	// A facility that was never paged cannot respond.
	_, err := svc.Respond(ctx, "EMG-1", 9)
	assert.ErrorIs(t, err, ErrFacilityNotAlerted)

	resp, err := svc.Respond(ctx, "EMG-1", 3)
	require.NoError(t, err)
	assert.Equal(t, string(domain.EmergencyResponded), resp.Status)
	require.NotNil(t, resp.RespondedFacilityID)
	assert.Equal(t, int64(3), *resp.RespondedFacilityID)

	// First responder wins.
	_, err = svc.Respond(ctx, "EMG-1", 1)
	assert.ErrorIs(t, err, ErrAlreadyResponded)
}

// racingRepository hands back a pending snapshot, then lets another
// facility claim the record before the caller's update lands.
type racingRepository struct {
	*stubRepository
	claimAs int64
	reads   int
}

func (r *racingRepository) GetByID(ctx context.Context, id string) (*domain.Emergency, error) {
	e, err := r.stubRepository.GetByID(ctx, id)
	r.reads++
	if r.reads == 1 && err == nil {
		rec := r.byID[id]
		rec.RespondedFacilityID = &r.claimAs
		rec.Status = domain.EmergencyResponded
	}
	return e, err
}

func TestRespond_LostRaceIsNotOverwritten(t *testing.T) {
	repo := &racingRepository{
		stubRepository: newStubRepository(pendingEmergency("EMG-1", "owner-1")),
		claimAs:        1,
	}
	svc := NewService(repo, nopLogger{})

	// Facility 3 saw a pending record, but facility 1 claimed it before
	// the update. The conditional update refuses the overwrite.
	_, err := svc.Respond(context.Background(), "EMG-1", 3)
	assert.ErrorIs(t, err, ErrAlreadyResponded)

	winner := repo.byID["EMG-1"].RespondedFacilityID
	require.NotNil(t, winner)
	assert.Equal(t, int64(1), *winner)
}

// vanishingRepository hands back a pending snapshot, then drops the
// record before the caller's update lands, as a cancel would.
type vanishingRepository struct {
	*stubRepository
	reads int
}

func (r *vanishingRepository) GetByID(ctx context.Context, id string) (*domain.Emergency, error) {
	e, err := r.stubRepository.GetByID(ctx, id)
	r.reads++
	if r.reads == 1 && err == nil {
		delete(r.byID, id)
	}
	return e, err
}

func TestRespond_CancelledDuringResponse(t *testing.T) {
	repo := &vanishingRepository{
		stubRepository: newStubRepository(pendingEmergency("EMG-1", "owner-1")),
	}
	svc := NewService(repo, nopLogger{})

	// The owner cancels between the responder's read and update.
	_, err := svc.Respond(context.Background(), "EMG-1", 3)
	assert.ErrorIs(t, err, ErrEmergencyNotFound)
}
