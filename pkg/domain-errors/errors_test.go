package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeConflict, "already registered")
	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(errors.New("plain"), CodeConflict))
}

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to save registration")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeInternal, CodeOf(err))
	assert.Contains(t, err.Error(), "failed to save registration")

	// Still classifiable after further wrapping.
	outer := fmt.Errorf("register: %w", err)
	assert.True(t, HasCode(outer, CodeInternal))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("unclassified")))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusConflict, ToHTTPStatus(CodeConflict))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
}
