// handlers/progress.go - Challenge listing and submission grading
package handlers

import (
	"codebrincando/apperror"
	"codebrincando/services"

	"github.com/gofiber/fiber/v2"
)

type submitRequest struct {
	UserID        uint    `json:"user_id"`
	ChallengeID   uint    `json:"challenge_id"`
	SubmittedCode *string `json:"submitted_code"`
}

// GetUserProgress handles GET /progresso/:usuario_id. Always answers
// with the full challenge list; an id that matches no user just shows
// everything as pending.
func GetUserProgress(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return apperror.NewValidationError("ID de usuário inválido")
	}

	entries, err := services.ListChallengesWithStatus(uint(userID))
	if err != nil {
		return apperror.NewInternalError("Falha ao buscar progresso", err)
	}

	return c.JSON(entries)
}

// SubmitChallenge handles POST /progresso. An empty submitted_code is
// accepted (it just grades as incorrect); only a missing field is a
// validation error.
func SubmitChallenge(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Dados incompletos")
	}

	if req.UserID == 0 || req.ChallengeID == 0 || req.SubmittedCode == nil {
		return apperror.NewValidationError("Dados incompletos")
	}

	result, err := services.GradeSubmission(req.UserID, req.ChallengeID, *req.SubmittedCode)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
