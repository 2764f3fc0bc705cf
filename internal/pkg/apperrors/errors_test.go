// internal/pkg/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(E(KindNotFound, "missing")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	// Kind survives wrapping
	wrapped := fmt.Errorf("context: %w", E(KindInsufficientStock, "no stock"))
	assert.Equal(t, KindInsufficientStock, KindOf(wrapped))
}

func TestIsKind(t *testing.T) {
	err := E(KindForbidden, "nope")

	assert.True(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(nil, KindInternal))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindDuplicateLineItem, http.StatusBadRequest},
		{KindInsufficientStock, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusOf(E(tt.kind, "x")))
		})
	}

	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "cart is empty", MessageOf(E(KindValidation, "cart is empty")))

	// Internal details never reach the client
	assert.Equal(t, "something went wrong", MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, "something went wrong",
		MessageOf(Wrap(KindInternal, "query failed", errors.New("pq: timeout"))))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(KindInternal, "wrapped", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "root cause")
}
