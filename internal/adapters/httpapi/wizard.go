package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
	"carbonx/internal/wizard"
)

// Wizard session endpoints: a server-side rendition of the client form
// controller for one in-progress registration per token.

type wizardStateResponse struct {
	Token        string                `json:"token"`
	State        string                `json:"state"`
	Registration entities.Registration `json:"registration"`
	Fields       domain.FieldErrors    `json:"fields,omitempty"`
	Participant  *participantResponse  `json:"participant,omitempty"`
}

func (h *Handler) wizardState(token string, w *wizard.Wizard, fields domain.FieldErrors) wizardStateResponse {
	resp := wizardStateResponse{
		Token:        token,
		State:        w.State().String(),
		Registration: w.Registration(),
		Fields:       fields,
	}
	if p := w.Result(); p != nil {
		pr := toParticipantResponse(p)
		resp.Participant = &pr
	}
	return resp
}

// WizardCreate opens a new registration session.
func (h *Handler) WizardCreate(c *gin.Context) {
	w := wizard.New(h.schema, h.registrationUseCase, h.locale(c))
	token := h.sessions.Create(w)
	c.JSON(http.StatusCreated, h.wizardState(token, w, nil))
}

// withSession resolves the token, locks the session and runs fn on it.
func (h *Handler) withSession(c *gin.Context, fn func(token string, w *wizard.Wizard)) {
	token := c.Param("token")
	sess, err := h.sessions.Get(token)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.translate(c, "errors.session_not_found")})
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(token, sess.wizard)
}

// WizardGet returns the session's current state and working record.
func (h *Handler) WizardGet(c *gin.Context) {
	h.withSession(c, func(token string, w *wizard.Wizard) {
		c.JSON(http.StatusOK, h.wizardState(token, w, nil))
	})
}

// WizardSetFields stores field values on the working record. Any field of
// the schema may be set from any input step; only transitions validate.
func (h *Handler) WizardSetFields(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: h.translate(c, "errors.invalid_payload")})
		return
	}
	h.withSession(c, func(token string, w *wizard.Wizard) {
		for name, value := range fields {
			if err := w.SetField(name, value); err != nil {
				if errors.Is(err, wizard.ErrNotEditable) {
					c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
				} else {
					c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				}
				return
			}
		}
		c.JSON(http.StatusOK, h.wizardState(token, w, nil))
	})
}

// WizardAdvance runs the current step's guard and moves forward when it
// passes; otherwise the state is unchanged and field errors are returned.
func (h *Handler) WizardAdvance(c *gin.Context) {
	h.withSession(c, func(token string, w *wizard.Wizard) {
		errs, err := w.Advance()
		if err != nil {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errs != nil {
			c.JSON(http.StatusUnprocessableEntity, h.wizardState(token, w, errs))
			return
		}
		c.JSON(http.StatusOK, h.wizardState(token, w, nil))
	})
}

// WizardRetreat moves back one step, never validating.
func (h *Handler) WizardRetreat(c *gin.Context) {
	h.withSession(c, func(token string, w *wizard.Wizard) {
		if err := w.Retreat(); err != nil {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, h.wizardState(token, w, nil))
	})
}

// WizardSubmit runs the full-record guard and the submission pipeline.
func (h *Handler) WizardSubmit(c *gin.Context) {
	h.withSession(c, func(token string, w *wizard.Wizard) {
		_, errs, err := w.Submit(c.Request.Context())
		if err != nil {
			if errors.Is(err, wizard.ErrInvalidTransition) {
				c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
				return
			}
			h.renderSubmissionError(c, err)
			return
		}
		if errs != nil {
			c.JSON(http.StatusUnprocessableEntity, h.wizardState(token, w, errs))
			return
		}
		c.JSON(http.StatusCreated, h.wizardState(token, w, nil))
	})
}

// WizardRestart clears the session back to step 1.
func (h *Handler) WizardRestart(c *gin.Context) {
	h.withSession(c, func(token string, w *wizard.Wizard) {
		w.Restart()
		c.JSON(http.StatusOK, h.wizardState(token, w, nil))
	})
}
