package output

import (
	"context"

	"carbonx/internal/domain/entities"
)

// ParticipantRepository is the Record Store contract: atomic single-row
// create and one bulk read, nothing else. Create fills in the generated
// ID and CreatedAt on the passed participant.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	ListAll(ctx context.Context) ([]entities.Participant, error)
}
