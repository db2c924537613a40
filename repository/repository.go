// Package repository wraps all database access behind narrow, context-aware
// interfaces so the service layer never touches gorm directly.
package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup or conditional update matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)
