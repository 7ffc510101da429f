package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestMapNotFound(t *testing.T) {
	if err := mapNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	other := errors.New("connection refused")
	if err := mapNotFound(other); !errors.Is(err, other) || errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected mapping: %v", err)
	}
}
