package httpapi

import (
	"time"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
)

// ErrorResponse is the error envelope of every non-2xx reply. Fields is
// only set for validation failures and maps field names to messages.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields domain.FieldErrors `json:"fields,omitempty"`
}

type participantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	College    string    `json:"college"`
	Course     string    `json:"course"`
	Year       string    `json:"year"`
	TeamName   *string   `json:"teamName"`
	Experience string    `json:"experience"`
	Interest   *string   `json:"interest"`
	Food       string    `json:"food"`
	ShirtSize  string    `json:"shirtSize"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toParticipantResponse(p *entities.Participant) participantResponse {
	return participantResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		College:    p.College,
		Course:     p.Course,
		Year:       p.Year,
		TeamName:   p.TeamName,
		Experience: p.Experience,
		Interest:   p.Interest,
		Food:       p.Food,
		ShirtSize:  p.ShirtSize,
		CreatedAt:  p.CreatedAt,
	}
}
