package input

import (
	"context"

	"carbonx/internal/domain/entities"
)

// RegistrationUseCase is the submission pipeline: validate a candidate and
// persist it exactly once. Errors are *domain.ValidationError or
// *domain.StorageError; nothing else crosses this boundary.
type RegistrationUseCase interface {
	Register(ctx context.Context, locale string, reg *entities.Registration) (*entities.Participant, error)
}

// RosterUseCase serves the admin side: bulk listing and CSV export.
type RosterUseCase interface {
	ListParticipants(ctx context.Context) ([]entities.Participant, error)
	ExportCSV(ctx context.Context) (string, error)
}
