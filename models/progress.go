// models/progress.go - Progress Ledger Data Model
package models

import (
	"time"
)

// Progress status constants
type ProgressStatus string

const (
	ProgressStatusPending   ProgressStatus = "pending"
	ProgressStatusCompleted ProgressStatus = "completed"
)

// Progress tracks, per (user, challenge) pair, whether the child has
// solved the challenge. The composite unique index guarantees at most
// one row per pair; submissions write through a single atomic upsert.
//
// CompletedAt is non-nil exactly when Status is completed. Every
// submission recomputes both fields from the current attempt, so a
// wrong answer after a right one downgrades the row back to pending.
type Progress struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_challenge"`
	ChallengeID uint           `json:"challenge_id" gorm:"not null;uniqueIndex:idx_progress_user_challenge"`
	Status      ProgressStatus `json:"status" gorm:"not null;default:'pending';size:20"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relationships
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Challenge *Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
}

func (Progress) TableName() string {
	return "progress"
}
