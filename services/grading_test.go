package services

import (
	"errors"
	"testing"

	"codebrincando/apperror"
	"codebrincando/models"

	"gorm.io/gorm"
)

// The seed catalog puts "Aluno Teste" at user id 1 and the h1 challenge
// (expected code "<h1>Olá, Mundo!</h1>") at challenge id 1.
const (
	seedUserID      = 1
	seedChallengeID = 1
	correctAnswer   = "<h1>Olá, Mundo!</h1>"
)

func progressRows(t *testing.T, db *gorm.DB, userID, challengeID uint) []models.Progress {
	t.Helper()
	var rows []models.Progress
	if err := db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).Find(&rows).Error; err != nil {
		t.Fatalf("query progress: %v", err)
	}
	return rows
}

func TestGradeSubmissionCorrect(t *testing.T) {
	db := testDB(t)

	result, err := GradeSubmission(seedUserID, seedChallengeID, correctAnswer)
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected is_correct = true")
	}
	if result.Status != models.ProgressStatusCompleted {
		t.Errorf("status = %q, want completed", result.Status)
	}
	if result.Message != "Parabéns! Resposta correta!" {
		t.Errorf("unexpected message %q", result.Message)
	}

	rows := progressRows(t, db, seedUserID, seedChallengeID)
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	if rows[0].Status != models.ProgressStatusCompleted {
		t.Errorf("stored status = %q, want completed", rows[0].Status)
	}
	if rows[0].CompletedAt == nil {
		t.Error("completed_at should be set for a correct submission")
	}
}

func TestGradeSubmissionIncorrect(t *testing.T) {
	db := testDB(t)

	result, err := GradeSubmission(seedUserID, seedChallengeID, "<titul0>Olá, Mundo!</titul0>")
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected is_correct = false")
	}
	if result.Status != models.ProgressStatusPending {
		t.Errorf("status = %q, want pending", result.Status)
	}
	if result.Message != "Código incorreto. Tente novamente!" {
		t.Errorf("unexpected message %q", result.Message)
	}

	rows := progressRows(t, db, seedUserID, seedChallengeID)
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	if rows[0].CompletedAt != nil {
		t.Error("completed_at should be nil for an incorrect submission")
	}
}

func TestGradeSubmissionTrimsOuterWhitespaceOnly(t *testing.T) {
	testDB(t)

	result, err := GradeSubmission(seedUserID, seedChallengeID, "  \n"+correctAnswer+"\t ")
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if !result.IsCorrect {
		t.Error("leading/trailing whitespace should be ignored")
	}

	// Internal spacing is not normalized.
	result, err = GradeSubmission(seedUserID, seedChallengeID, "<h1> Olá, Mundo!</h1>")
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if result.IsCorrect {
		t.Error("different internal spacing must grade as incorrect")
	}
}

func TestGradeSubmissionEmptyCodeIsIncorrect(t *testing.T) {
	testDB(t)

	result, err := GradeSubmission(seedUserID, seedChallengeID, "")
	if err != nil {
		t.Fatalf("GradeSubmission: %v", err)
	}
	if result.IsCorrect || result.Status != models.ProgressStatusPending {
		t.Errorf("empty submission should grade pending/incorrect, got %q/%v", result.Status, result.IsCorrect)
	}
}

func TestGradeSubmissionIdempotent(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 2; i++ {
		if _, err := GradeSubmission(seedUserID, seedChallengeID, correctAnswer); err != nil {
			t.Fatalf("GradeSubmission #%d: %v", i+1, err)
		}
	}

	rows := progressRows(t, db, seedUserID, seedChallengeID)
	if len(rows) != 1 {
		t.Fatalf("progress rows after resubmission = %d, want 1", len(rows))
	}
	if rows[0].Status != models.ProgressStatusCompleted {
		t.Errorf("status = %q, want completed", rows[0].Status)
	}
}

func TestGradeSubmissionDowngradesOnIncorrectResubmission(t *testing.T) {
	db := testDB(t)

	if _, err := GradeSubmission(seedUserID, seedChallengeID, correctAnswer); err != nil {
		t.Fatalf("correct submission: %v", err)
	}

	result, err := GradeSubmission(seedUserID, seedChallengeID, "<h1>errado</h1>")
	if err != nil {
		t.Fatalf("incorrect resubmission: %v", err)
	}
	if result.Status != models.ProgressStatusPending {
		t.Errorf("status = %q, want pending after downgrade", result.Status)
	}

	rows := progressRows(t, db, seedUserID, seedChallengeID)
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	if rows[0].Status != models.ProgressStatusPending {
		t.Errorf("stored status = %q, want pending", rows[0].Status)
	}
	if rows[0].CompletedAt != nil {
		t.Error("completed_at should be cleared on downgrade")
	}
}

func TestGradeSubmissionUnknownUser(t *testing.T) {
	db := testDB(t)

	_, err := GradeSubmission(999, seedChallengeID, correctAnswer)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperror.NotFoundError {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if rows := progressRows(t, db, 999, seedChallengeID); len(rows) != 0 {
		t.Errorf("no progress row should exist for an unknown user, got %d", len(rows))
	}
}

func TestGradeSubmissionUnknownChallenge(t *testing.T) {
	testDB(t)

	_, err := GradeSubmission(seedUserID, 999, correctAnswer)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperror.NotFoundError {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
