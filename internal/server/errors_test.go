package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/ranking"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "candidate", Message: "required"}
	assert.Equal(t, "validation error: candidate - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrStoreDisabled(t *testing.T) {
	err := &ErrStoreDisabled{}
	assert.Equal(t, "score storage is not configured", err.Error())
	assert.Equal(t, http.StatusNotImplemented, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", db.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", db.ErrNotFound), http.StatusNotFound},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{Field: "body"}), http.StatusBadRequest},
		{"cancelled scoring", &ranking.ScoringError{Message: "scoring cancelled", Cause: context.Canceled}, http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"scoring failure", &ranking.ScoringError{Category: "keywords", Message: "boom", Cause: errors.New("tagger")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
