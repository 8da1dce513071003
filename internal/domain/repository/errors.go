package repository

import "errors"

// Constraint violations reported by the store, translated by the gorm layer
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrForeignKey   = errors.New("foreign key violation")
)
