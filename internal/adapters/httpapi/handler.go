package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
	"carbonx/internal/domain/validation"
	"carbonx/internal/ports/input"
	"carbonx/internal/ports/output"
	"carbonx/internal/wizard"
)

// Handler serves the registration API using use cases.
type Handler struct {
	registrationUseCase input.RegistrationUseCase
	rosterUseCase       input.RosterUseCase
	schema              *validation.Schema
	sessions            *sessionStore
	translator          output.Translator
	defaultLocale       string
}

// NewHandler creates a Handler.
func NewHandler(
	registrationUseCase input.RegistrationUseCase,
	rosterUseCase input.RosterUseCase,
	schema *validation.Schema,
	sessions *sessionStore,
	translator output.Translator,
	defaultLocale string,
) *Handler {
	return &Handler{
		registrationUseCase: registrationUseCase,
		rosterUseCase:       rosterUseCase,
		schema:              schema,
		sessions:            sessions,
		translator:          translator,
		defaultLocale:       defaultLocale,
	}
}

// requestLocale picks the first Accept-Language tag, falling back to the
// configured default.
func requestLocale(c *gin.Context, fallback string) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return fallback
	}
	tag := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	if i := strings.IndexByte(tag, ';'); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "*" {
		return fallback
	}
	return tag
}

func (h *Handler) locale(c *gin.Context) string {
	return requestLocale(c, h.defaultLocale)
}

func (h *Handler) translate(c *gin.Context, key string) string {
	return h.translator.T(h.locale(c), key, nil)
}

// Register handles the one-shot submission used by clients that run the
// step gating themselves. Unknown payload keys (github, linkedin, ...)
// are dropped here: the server schema is canonical and does not store them.
func (h *Handler) Register(c *gin.Context) {
	var reg entities.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: h.translate(c, "errors.invalid_payload")})
		return
	}

	participant, err := h.registrationUseCase.Register(c.Request.Context(), h.locale(c), &reg)
	if err != nil {
		h.renderSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toParticipantResponse(participant))
}

func (h *Handler) renderSubmissionError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  h.translate(c, "errors.validation"),
			Fields: verr.Fields,
		})
		return
	}
	var serr *domain.StorageError
	if errors.As(err, &serr) {
		// A single flat message; the store detail stays server-side.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: h.translate(c, "errors.storage")})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: h.translate(c, "errors.generic")})
}

type validateStepRequest struct {
	Step int `json:"step"`
	entities.Registration
}

type validateStepResponse struct {
	Valid  bool               `json:"valid"`
	Fields domain.FieldErrors `json:"fields,omitempty"`
}

var stepStates = map[int]wizard.State{
	1: wizard.StateStep1,
	2: wizard.StateStep2,
	3: wizard.StateStep3,
}

// ValidateStep runs the step-local guard for clients doing their own step
// gating: only the fields belonging to the given step are checked.
func (h *Handler) ValidateStep(c *gin.Context) {
	var req validateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: h.translate(c, "errors.invalid_payload")})
		return
	}
	state, ok := stepStates[req.Step]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: h.translate(c, "errors.invalid_payload")})
		return
	}

	errs := h.schema.ValidateFields(h.locale(c), &req.Registration, wizard.StepFields(state))
	c.JSON(http.StatusOK, validateStepResponse{Valid: errs == nil, Fields: errs})
}
