// models/user.go
package models

import (
	"time"
)

// User is a child account. Age is optional so the frontend can skip it.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Progress []Progress `json:"progress,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
