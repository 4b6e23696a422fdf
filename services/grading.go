// services/grading.go - Grading Operation
package services

import (
	"errors"
	"strings"

	"codebrincando/apperror"
	"codebrincando/database"
	"codebrincando/models"

	"gorm.io/gorm"
)

const (
	correctMessage   = "Parabéns! Resposta correta!"
	incorrectMessage = "Código incorreto. Tente novamente!"
)

// GradeResult is the outcome of one submission.
type GradeResult struct {
	Status    models.ProgressStatus `json:"status"`
	Message   string                `json:"message"`
	IsCorrect bool                  `json:"is_correct"`
}

// GradeSubmission compares the submitted code against the challenge's
// expected code and records the outcome in the progress ledger.
//
// The comparison trims leading and trailing whitespace on both sides and
// then requires byte-for-byte equality. Internal spacing, case and
// attribute order are NOT normalized; a semantically equivalent answer
// with different spacing still grades as incorrect.
func GradeSubmission(userID, challengeID uint, submittedCode string) (*GradeResult, error) {
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Usuário não encontrado")
		}
		return nil, apperror.NewInternalError("Falha ao buscar usuário", err)
	}

	var challenge models.Challenge
	if err := db.First(&challenge, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Desafio não encontrado")
		}
		return nil, apperror.NewInternalError("Falha ao buscar desafio", err)
	}

	isCorrect := strings.TrimSpace(submittedCode) == strings.TrimSpace(challenge.ExpectedCode)

	status, err := UpsertProgress(user.ID, challenge.ID, isCorrect)
	if err != nil {
		return nil, apperror.NewInternalError("Falha ao registrar progresso", err)
	}

	message := incorrectMessage
	if isCorrect {
		message = correctMessage
	}

	return &GradeResult{
		Status:    status,
		Message:   message,
		IsCorrect: isCorrect,
	}, nil
}
