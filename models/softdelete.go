package models

import (
	"time"

	"gorm.io/gorm"
)

// SoftDelete is embedded by every entity that is logically removed instead
// of physically erased. A deleted record keeps its row and stays
// recoverable; listing operations exclude it unless the caller passes
// includeDeleted explicitly.
type SoftDelete struct {
	Deleted   bool       `json:"deleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// MarkDeleted flags the record as deleted. Calling it on an already-deleted
// record is a no-op, so a second delete never fails.
func (s *SoftDelete) MarkDeleted() {
	if s.Deleted {
		return
	}
	now := time.Now()
	s.Deleted = true
	s.DeletedAt = &now
}

// Restore clears the deleted flag, making the record visible again.
func (s *SoftDelete) Restore() {
	s.Deleted = false
	s.DeletedAt = nil
}

func (s *SoftDelete) IsDeleted() bool {
	return s.Deleted
}

// ActiveOnly is a query scope filtering out soft-deleted rows unless the
// caller explicitly asks for them.
func ActiveOnly(includeDeleted bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if includeDeleted {
			return db
		}
		return db.Where("deleted = ?", false)
	}
}
