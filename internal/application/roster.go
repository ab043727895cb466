package application

import (
	"context"
	"fmt"
	"strings"

	"carbonx/internal/domain/entities"
	"carbonx/internal/ports/output"
)

// ExportFilename is the download name of the admin CSV export.
const ExportFilename = "carbonx_participants.csv"

var csvHeader = []string{"ID", "Name", "Email", "Phone", "College", "Team", "Food", "Size"}

// RosterService serves the admin listing and its CSV export.
type RosterService struct {
	participantRepo output.ParticipantRepository
}

func NewRosterService(participantRepo output.ParticipantRepository) *RosterService {
	return &RosterService{participantRepo: participantRepo}
}

// ListParticipants returns every record, newest first.
func (s *RosterService) ListParticipants(ctx context.Context) ([]entities.Participant, error) {
	participants, err := s.participantRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

// ExportCSV renders all records as CSV in listing order.
func (s *RosterService) ExportCSV(ctx context.Context) (string, error) {
	participants, err := s.ListParticipants(ctx)
	if err != nil {
		return "", err
	}
	return BuildCSV(participants), nil
}

// BuildCSV writes one row per record under a fixed header. Only the phone
// column is quoted (so sheet tools keep leading zeros); the other fields
// are written verbatim, embedded commas included — a limitation inherited
// from the original export, kept for format compatibility.
func BuildCSV(participants []entities.Participant) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, p := range participants {
		team := ""
		if p.TeamName != nil {
			team = *p.TeamName
		}
		row := []string{
			p.ID,
			p.Name,
			p.Email,
			`"` + p.Phone + `"`,
			p.College,
			team,
			p.Food,
			p.ShirtSize,
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}
