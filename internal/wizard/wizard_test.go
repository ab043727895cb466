package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
	"carbonx/internal/domain/validation"
)

type keyTranslator struct{}

func (keyTranslator) T(locale, key string, data map[string]any) string { return key }

// fakeSubmitter stands in for the registration pipeline.
type fakeSubmitter struct {
	calls    int
	register func(reg *entities.Registration) (*entities.Participant, error)
}

func (f *fakeSubmitter) Register(ctx context.Context, locale string, reg *entities.Registration) (*entities.Participant, error) {
	f.calls++
	return f.register(reg)
}

func acceptingSubmitter() *fakeSubmitter {
	return &fakeSubmitter{register: func(reg *entities.Registration) (*entities.Participant, error) {
		return &entities.Participant{
			ID:        "8e6f2a9c-1b7d-4e30-9c55-0f2b7f6d2a11",
			Name:      reg.Name,
			Email:     reg.Email,
			CreatedAt: time.Now(),
		}, nil
	}}
}

func newWizard(sub *fakeSubmitter) *Wizard {
	return New(validation.NewSchema(keyTranslator{}), sub, "en")
}

func fillStep1(w *Wizard) {
	w.SetField("name", "Jane Doe")
	w.SetField("email", "jane@x.com")
	w.SetField("phone", "9876543210")
	w.SetField("college", "MIT")
}

func fillStep2(w *Wizard) {
	w.SetField("course", "CS")
	w.SetField("year", "2")
}

// driveToStep3 fills steps 1 and 2 and advances through both guards.
func driveToStep3(t *testing.T, w *Wizard) {
	t.Helper()
	fillStep1(w)
	errs, err := w.Advance()
	require.NoError(t, err)
	require.Nil(t, errs)
	fillStep2(w)
	errs, err = w.Advance()
	require.NoError(t, err)
	require.Nil(t, errs)
	require.Equal(t, StateStep3, w.State())
}

func TestNew_StartsOnStep1WithDefaults(t *testing.T) {
	w := newWizard(acceptingSubmitter())

	assert.Equal(t, StateStep1, w.State())
	reg := w.Registration()
	assert.Equal(t, "Beginner", reg.Experience)
	assert.Equal(t, "Veg", reg.Food)
	assert.Equal(t, "M", reg.ShirtSize)
	assert.Nil(t, reg.TeamName)
}

func TestAdvance_ShortNameKeepsStep1(t *testing.T) {
	w := newWizard(acceptingSubmitter())
	fillStep1(w)
	w.SetField("name", "A")

	errs, err := w.Advance()

	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "name")
	assert.Equal(t, StateStep1, w.State())
}

func TestAdvance_Step1IgnoresLaterFields(t *testing.T) {
	// course/year are still empty; the step-1 guard must not look at them.
	w := newWizard(acceptingSubmitter())
	fillStep1(w)

	errs, err := w.Advance()

	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, StateStep2, w.State())
}

func TestRetreat_NeverValidates(t *testing.T) {
	w := newWizard(acceptingSubmitter())
	fillStep1(w)
	_, err := w.Advance()
	require.NoError(t, err)

	// Garbage staged on step 2 does not block going back.
	w.SetField("course", "")
	require.NoError(t, w.Retreat())
	assert.Equal(t, StateStep1, w.State())

	// Retreating from step 1 is a no-op.
	require.NoError(t, w.Retreat())
	assert.Equal(t, StateStep1, w.State())
}

func TestSubmit_OnlyFromStep3(t *testing.T) {
	w := newWizard(acceptingSubmitter())

	_, _, err := w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSubmit_FullGuardCatchesEditedEarlierField(t *testing.T) {
	sub := acceptingSubmitter()
	w := newWizard(sub)
	driveToStep3(t, w)
	w.SetField("name", "A")

	participant, errs, err := w.Submit(context.Background())

	require.NoError(t, err)
	assert.Nil(t, participant)
	require.Len(t, errs, 1)
	assert.Contains(t, errs, "name")
	assert.Equal(t, StateStep3, w.State())
	assert.Zero(t, sub.calls, "pipeline must not run when the guard fails")
}

func TestSubmit_Success(t *testing.T) {
	sub := acceptingSubmitter()
	w := newWizard(sub)
	driveToStep3(t, w)

	participant, errs, err := w.Submit(context.Background())

	require.NoError(t, err)
	require.Nil(t, errs)
	require.NotNil(t, participant)
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, StateSuccess, w.State())
	assert.Equal(t, participant, w.Result())

	// Success is terminal: no edits, no second submit.
	assert.ErrorIs(t, w.SetField("name", "Other"), ErrNotEditable)
	_, _, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSubmit_StorageFailureReturnsToStep3(t *testing.T) {
	sub := &fakeSubmitter{register: func(*entities.Registration) (*entities.Participant, error) {
		return nil, &domain.StorageError{Err: errors.New("connection refused")}
	}}
	w := newWizard(sub)
	driveToStep3(t, w)

	_, errs, err := w.Submit(context.Background())

	assert.Nil(t, errs)
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StateStep3, w.State())
}

func TestSubmit_ServerValidationFailureMapsFields(t *testing.T) {
	sub := &fakeSubmitter{register: func(*entities.Registration) (*entities.Participant, error) {
		return nil, &domain.ValidationError{Fields: domain.FieldErrors{"email": {"validation.email"}}}
	}}
	w := newWizard(sub)
	driveToStep3(t, w)

	_, errs, err := w.Submit(context.Background())

	require.NoError(t, err)
	require.Contains(t, errs, "email")
	assert.Equal(t, StateStep3, w.State())
}

func TestRestart_ClearsEverything(t *testing.T) {
	w := newWizard(acceptingSubmitter())
	driveToStep3(t, w)
	_, _, err := w.Submit(context.Background())
	require.NoError(t, err)

	w.Restart()

	assert.Equal(t, StateStep1, w.State())
	assert.Nil(t, w.Result())
	reg := w.Registration()
	assert.Empty(t, reg.Name)
	assert.Equal(t, "Beginner", reg.Experience)
}

func TestSetField(t *testing.T) {
	w := newWizard(acceptingSubmitter())

	require.NoError(t, w.SetField("teamName", "CyberSquad"))
	require.NotNil(t, w.Registration().TeamName)
	assert.Equal(t, "CyberSquad", *w.Registration().TeamName)

	// Clearing an optional field stores null, not "".
	require.NoError(t, w.SetField("teamName", ""))
	assert.Nil(t, w.Registration().TeamName)

	assert.Error(t, w.SetField("github", "https://github.com/jane"), "fields outside the schema are rejected")
}
