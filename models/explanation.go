// models/explanation.go
package models

// Explanation kind constants
const (
	ExplanationKindIntro   = "intro"
	ExplanationKindConcept = "concept"
)

// Explanation is a static instructional card shown on the intro screen.
// Cards are seeded at startup, ordered by id, and unrelated to grading.
type Explanation struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Kind       string  `json:"kind" gorm:"not null;size:20"`
	Title      string  `json:"title" gorm:"not null;size:200"`
	Body       string  `json:"body" gorm:"not null;type:text"`
	SampleCode *string `json:"sample_code" gorm:"type:text"`
}

func (Explanation) TableName() string {
	return "explanations"
}
