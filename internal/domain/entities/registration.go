package entities

// Registration is a candidate record: the fields a participant submits,
// before validation and before the store assigns ID/CreatedAt.
type Registration struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	College    string  `json:"college"`
	Course     string  `json:"course"`
	Year       string  `json:"year"`
	TeamName   *string `json:"teamName"`
	Experience string  `json:"experience"`
	Interest   *string `json:"interest"`
	Food       string  `json:"food"`
	ShirtSize  string  `json:"shirtSize"`
}
