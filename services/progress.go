// services/progress.go - Progress Ledger and query projection
package services

import (
	"time"

	"codebrincando/database"
	"codebrincando/models"

	"gorm.io/gorm/clause"
)

// ChallengeWithStatus merges a challenge with the resolved progress
// status for one user. Challenges without a progress row show pending.
type ChallengeWithStatus struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	Language     string                `json:"language"`
	Instruction  string                `json:"instruction"`
	Status       models.ProgressStatus `json:"status"`
	BuggyCode    string                `json:"buggy_code"`
	ExpectedCode string                `json:"expected_code"`
}

// UpsertProgress records the outcome of a submission for the pair
// (userID, challengeID). Status and the completion timestamp are always
// recomputed from the current attempt, so an incorrect submission after
// a correct one downgrades the row back to pending.
//
// The write is a single INSERT ... ON CONFLICT DO UPDATE against the
// unique (user_id, challenge_id) index, so two simultaneous submissions
// for the same pair cannot produce duplicate rows.
func UpsertProgress(userID, challengeID uint, isCorrect bool) (models.ProgressStatus, error) {
	db := database.GetDB()

	status := models.ProgressStatusPending
	var completedAt *time.Time
	if isCorrect {
		status = models.ProgressStatusCompleted
		now := time.Now().UTC()
		completedAt = &now
	}

	entry := models.Progress{
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      status,
		CompletedAt: completedAt,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       status,
			"completed_at": completedAt,
			"updated_at":   time.Now().UTC(),
		}),
	}).Create(&entry).Error
	if err != nil {
		return "", err
	}

	return status, nil
}

// ListChallengesWithStatus left-joins every challenge with the user's
// progress rows. Deliberately permissive: an unknown user id is not an
// error, it just reports every challenge as pending.
func ListChallengesWithStatus(userID uint) ([]ChallengeWithStatus, error) {
	db := database.GetDB()

	entries := make([]ChallengeWithStatus, 0)
	err := db.Table("challenges").
		Select(`challenges.id, challenges.name, challenges.language, challenges.instruction,
			COALESCE(progress.status, 'pending') AS status,
			challenges.buggy_code, challenges.expected_code`).
		Joins("LEFT JOIN progress ON progress.challenge_id = challenges.id AND progress.user_id = ?", userID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
