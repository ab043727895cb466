package validation

import (
	"regexp"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
)

// Translator renders a user-facing message for a message ID and locale.
// Satisfied by the go-i18n backed translator in infrastructure/i18n.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// rule is one entry of the canonical field-rule table. A required field
// fails when shorter than min or when it does not match pattern; an
// optional field is valid when absent and unconstrained when present.
type rule struct {
	field     string
	optional  bool
	min       int
	pattern   *regexp.Regexp
	messageID string
	value     func(*entities.Registration) string
}

// rules is the single source of truth for the registration schema, shared
// by the step wizard and the server boundary. Order matters: fields are
// checked in declaration order and every failure is reported.
var rules = []rule{
	{field: "name", min: 2, messageID: "validation.name", value: func(r *entities.Registration) string { return r.Name }},
	{field: "email", min: 1, pattern: emailPattern, messageID: "validation.email", value: func(r *entities.Registration) string { return r.Email }},
	{field: "phone", min: 10, messageID: "validation.phone", value: func(r *entities.Registration) string { return r.Phone }},
	{field: "college", min: 2, messageID: "validation.college", value: func(r *entities.Registration) string { return r.College }},
	{field: "course", min: 2, messageID: "validation.course", value: func(r *entities.Registration) string { return r.Course }},
	{field: "year", min: 1, messageID: "validation.year", value: func(r *entities.Registration) string { return r.Year }},
	{field: "teamName", optional: true},
	{field: "experience", min: 1, messageID: "validation.experience", value: func(r *entities.Registration) string { return r.Experience }},
	{field: "interest", optional: true},
	{field: "food", min: 1, messageID: "validation.food", value: func(r *entities.Registration) string { return r.Food }},
	{field: "shirtSize", min: 1, messageID: "validation.shirtSize", value: func(r *entities.Registration) string { return r.ShirtSize }},
}

// Schema validates candidate registrations against the canonical rule
// table, resolving messages through the translator.
type Schema struct {
	t Translator
}

func NewSchema(t Translator) *Schema {
	return &Schema{t: t}
}

// Validate checks every field of the candidate and returns nil when all
// rules pass, else the accumulated per-field messages.
func (s *Schema) Validate(locale string, reg *entities.Registration) domain.FieldErrors {
	return s.validate(locale, reg, nil)
}

// ValidateFields checks only the named fields; the wizard uses it to gate
// step transitions without touching fields from later steps.
func (s *Schema) ValidateFields(locale string, reg *entities.Registration, fields []string) domain.FieldErrors {
	wanted := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		wanted[f] = struct{}{}
	}
	return s.validate(locale, reg, wanted)
}

func (s *Schema) validate(locale string, reg *entities.Registration, wanted map[string]struct{}) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for _, r := range rules {
		if wanted != nil {
			if _, ok := wanted[r.field]; !ok {
				continue
			}
		}
		if r.optional {
			continue
		}
		v := r.value(reg)
		if len(v) < r.min || (r.pattern != nil && !r.pattern.MatchString(v)) {
			errs.Add(r.field, s.t.T(locale, r.messageID, nil))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Fields returns the schema's field names in declaration order.
func Fields() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.field
	}
	return out
}
