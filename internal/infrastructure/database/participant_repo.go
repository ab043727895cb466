package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carbonx/internal/domain/entities"
	"carbonx/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

const insertParticipant = `
INSERT INTO participants (id, name, email, phone, college, course, year, team_name, experience, interest, food, shirt_size)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at`

// Create inserts one record. The id is generated here; created_at comes
// from the database so insertion order and timestamps agree.
func (r *ParticipantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	id := uuid.NewString()
	row := r.pool.QueryRow(ctx, insertParticipant,
		id,
		participant.Name,
		participant.Email,
		participant.Phone,
		participant.College,
		participant.Course,
		participant.Year,
		participant.TeamName,
		participant.Experience,
		participant.Interest,
		participant.Food,
		participant.ShirtSize,
	)
	if err := row.Scan(&participant.CreatedAt); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	participant.ID = id
	return nil
}

const selectParticipants = `
SELECT id, name, email, phone, college, course, year, team_name, experience, interest, food, shirt_size, created_at
FROM participants
ORDER BY created_at DESC, id`

// ListAll returns every record, newest first.
func (r *ParticipantRepository) ListAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.pool.Query(ctx, selectParticipants)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	out := []entities.Participant{}
	for rows.Next() {
		var p entities.Participant
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.Phone,
			&p.College,
			&p.Course,
			&p.Year,
			&p.TeamName,
			&p.Experience,
			&p.Interest,
			&p.Food,
			&p.ShirtSize,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}
