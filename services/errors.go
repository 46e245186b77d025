package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned by checkout when the user has no active cart rows.
var ErrEmptyCart = errors.New("cart is empty: nothing to check out")

// ErrNotFound is returned when a requested record does not exist or is
// soft-deleted and the caller did not ask for deleted records.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a bad field value, such as a negative price.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StaleCartItemError is returned by checkout when a cart row references a
// menu item that has been removed from the catalog since it was added.
type StaleCartItemError struct {
	CartID     uint
	MenuItemID uint
	Title      string
}

func (e *StaleCartItemError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("cart row %d references removed menu item %q (id %d)", e.CartID, e.Title, e.MenuItemID)
	}
	return fmt.Sprintf("cart row %d references missing menu item %d", e.CartID, e.MenuItemID)
}

// ReferentialIntegrityError rejects deletion of a record that other records
// still reference.
type ReferentialIntegrityError struct {
	Entity   string
	ID       uint
	RefCount int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: still referenced by %d record(s)", e.Entity, e.ID, e.RefCount)
}

// PersistenceError wraps a failed storage write. The enclosing transaction
// has been rolled back by the time the caller sees it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
