package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "Name must be at least 2 characters", tr.T("en", "validation.name", nil))
	assert.Equal(t, "Access restricted", tr.T("en", "errors.access_denied", nil))

	// Unknown locales fall back to the default language.
	assert.Equal(t, "Invalid email address", tr.T("xx", "validation.email", nil))

	// Unknown keys fall back to the key itself.
	assert.Equal(t, "errors.nope", tr.T("en", "errors.nope", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}
