package emergencies

import (
	"context"
	"errors"
	"fmt"

	"github.com/umurava/maternalcare-booking/internal/domain"
	storage "github.com/umurava/maternalcare-booking/internal/infra/storage/emergency"
)

// Service covers the lifecycle of an emergency after dispatch: status
// lookup, cancellation by the patient and the facility response.
type Service struct {
	emergencies EmergencyRepository
	logger      Logger
}

func NewService(emergencies EmergencyRepository, logger Logger) *Service {
	return &Service{emergencies: emergencies, logger: logger}
}

// GetByID returns the dispatch record. Only the owner can see it.
func (s *Service) GetByID(ctx context.Context, id, ownerRef string) (*EmergencyResponse, error) {
	s.logger.Info("GetByID: fetching emergency %s for owner=%s", id, ownerRef)

	e, err := s.fetchOwned(ctx, id, ownerRef)
	if err != nil {
		return nil, err
	}
	return fromDomainEmergency(e), nil
}

// Cancel removes the alert. Only the owner can cancel.
func (s *Service) Cancel(ctx context.Context, id, ownerRef string) error {
	s.logger.Info("Cancel: cancelling emergency %s for owner=%s", id, ownerRef)

	if _, err := s.fetchOwned(ctx, id, ownerRef); err != nil {
		return err
	}

	if err := s.emergencies.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrEmergencyNotFound) {
			return ErrEmergencyNotFound
		}
		s.logger.Error("Cancel: repository error for emergency %s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: emergency %s cancelled", id)
	return nil
}

// Respond records that a facility took the emergency. The facility must
// be among the ones paged, and only the first responder wins.
func (s *Service) Respond(ctx context.Context, id string, facilityID int64) (*EmergencyResponse, error) {
	s.logger.Info("Respond: facility id=%d responding to emergency %s", facilityID, id)

	e, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEmergencyNotFound) {
			s.logger.Warn("Respond: emergency %s not found", id)
			return nil, ErrEmergencyNotFound
		}
		s.logger.Error("Respond: repository error for emergency %s: %v", id, err)
		return nil, fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	if e.RespondedFacilityID != nil {
		s.logger.Warn("Respond: emergency %s already taken by facility id=%d", id, *e.RespondedFacilityID)
		return nil, ErrAlreadyResponded
	}

	alerted := false
	for _, fid := range e.AlertedFacilityIDs {
		if fid == facilityID {
			alerted = true
			break
		}
	}
	if !alerted {
		s.logger.Warn("Respond: facility id=%d was not alerted for emergency %s", facilityID, id)
		return nil, ErrFacilityNotAlerted
	}

	if err := s.emergencies.MarkResponded(ctx, id, facilityID); err != nil {
		if errors.Is(err, storage.ErrAlreadyResponded) {
			// Lost the race between the read above and the update. The
			// record either got claimed or was cancelled meanwhile.
			if _, readErr := s.emergencies.GetByID(ctx, id); errors.Is(readErr, storage.ErrEmergencyNotFound) {
				s.logger.Warn("Respond: emergency %s cancelled before facility id=%d responded", id, facilityID)
				return nil, ErrEmergencyNotFound
			}
			s.logger.Warn("Respond: emergency %s taken concurrently, facility id=%d lost", id, facilityID)
			return nil, ErrAlreadyResponded
		}
		s.logger.Error("Respond: marking emergency %s responded failed: %v", id, err)
		return nil, fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	updated, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Respond: re-reading emergency %s failed: %v", id, err)
		return nil, fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Respond: emergency %s taken by facility id=%d", id, facilityID)
	return fromDomainEmergency(updated), nil
}

func (s *Service) fetchOwned(ctx context.Context, id, ownerRef string) (*domain.Emergency, error) {
	e, err := s.emergencies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrEmergencyNotFound) {
			s.logger.Warn("emergency %s not found", id)
			return nil, ErrEmergencyNotFound
		}
		s.logger.Error("repository error for emergency %s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if e.OwnerRef != ownerRef {
		s.logger.Warn("owner=%s denied access to emergency %s", ownerRef, id)
		return nil, ErrAccessDenied
	}
	return e, nil
}
