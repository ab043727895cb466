package application

import (
	"context"
	"time"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
	"carbonx/internal/domain/validation"
	"carbonx/internal/ports/output"
)

// storeTimeout bounds the single Record Store call; expiry surfaces as a
// StorageError like any other store failure.
const storeTimeout = 5 * time.Second

// RegistrationService implements the submission pipeline: server-side
// re-validation (trust boundary), then exactly one create. It holds no
// mutable state and is safe for concurrent callers; there is no retry and
// no idempotency key, so a client retry after an ambiguous failure can
// produce a duplicate record.
type RegistrationService struct {
	participantRepo output.ParticipantRepository
	schema          *validation.Schema
}

func NewRegistrationService(participantRepo output.ParticipantRepository, schema *validation.Schema) *RegistrationService {
	return &RegistrationService{
		participantRepo: participantRepo,
		schema:          schema,
	}
}

func (s *RegistrationService) Register(ctx context.Context, locale string, reg *entities.Registration) (*entities.Participant, error) {
	if errs := s.schema.Validate(locale, reg); errs != nil {
		return nil, &domain.ValidationError{Fields: errs}
	}

	participant := &entities.Participant{
		Name:       reg.Name,
		Email:      reg.Email,
		Phone:      reg.Phone,
		College:    reg.College,
		Course:     reg.Course,
		Year:       reg.Year,
		TeamName:   reg.TeamName,
		Experience: reg.Experience,
		Interest:   reg.Interest,
		Food:       reg.Food,
		ShirtSize:  reg.ShirtSize,
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, &domain.StorageError{Err: err}
	}
	return participant, nil
}
