package aivis_test

import (
	"errors"
	"testing"

	"github.com/mkarolik/aivis"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := aivis.Errorf(aivis.EFETCH, "fetching %q failed", "https://example.com")

	assert.Equal(t, aivis.EFETCH, aivis.ErrorCode(err))
	assert.Equal(t, "fetching \"https://example.com\" failed", aivis.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, aivis.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, aivis.EINTERNAL, aivis.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, aivis.ErrorMessage(nil))
}
