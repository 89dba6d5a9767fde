package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := LoadError("not a spreadsheet", stderrors.New("zip: not a valid zip file"))
	wrapped := Wrap(base, "upload failed")

	assert.Equal(t, CodeLoadError, GetCode(wrapped))
	assert.True(t, HasCode(wrapped, CodeLoadError))
	assert.Contains(t, wrapped.Error(), "zip: not a valid zip file")
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapPlainError(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), "step %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 3: boom", err.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("dataset"))
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{LoadError("bad", nil), http.StatusUnprocessableEntity},
		{InvalidInput("bad"), http.StatusBadRequest},
		{NotFound("dataset"), http.StatusNotFound},
		{InternalError("bad"), http.StatusInternalServerError},
		{stderrors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}
