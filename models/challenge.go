// models/challenge.go - Challenge Catalog Data Model
package models

import (
	"time"
)

// Challenge is a buggy-code exercise with a single canonical answer.
// Rows are seeded at startup and read-only afterwards; ExpectedCode is
// the sole ground truth for grading.
type Challenge struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:100"`
	Language     string    `json:"language" gorm:"not null;size:20;index"`
	Instruction  string    `json:"instruction" gorm:"not null;type:text"`
	BuggyCode    string    `json:"buggy_code" gorm:"not null;type:text"`
	ExpectedCode string    `json:"expected_code" gorm:"not null;type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}
