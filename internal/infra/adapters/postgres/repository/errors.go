package repository

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

// mapNotFound превращает sql.ErrNoRows в ErrNotFound
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return err
}
