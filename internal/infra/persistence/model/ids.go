package model

import (
	"github.com/google/uuid"
)

// assignID fills a missing primary key with a time-ordered UUID (v7), so
// inserts do not depend on a database side default.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
