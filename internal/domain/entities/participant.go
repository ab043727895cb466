package entities

import "time"

// Participant is a registered hackathon participant. ID and CreatedAt are
// generated at persistence time and never change afterwards; records are
// write-once (no update/delete path exists).
type Participant struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	College    string
	Course     string
	Year       string
	TeamName   *string // nil when the participant has no team
	Experience string
	Interest   *string
	Food       string
	ShirtSize  string
	CreatedAt  time.Time
}
