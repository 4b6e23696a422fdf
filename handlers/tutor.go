// handlers/tutor.go - RoboTeca tutoring proxy
package handlers

import (
	"errors"
	"log"
	"strings"

	"codebrincando/apperror"
	"codebrincando/middleware"
	"codebrincando/services"

	"github.com/gofiber/fiber/v2"
)

type tutorRequest struct {
	UserID   uint   `json:"user_id"`
	Context  string `json:"context"`
	Question string `json:"question"`
}

// AskTutor handles POST /ajuda-bot. The question plus optional context
// is forwarded to the Groq API; the child gets back a simplified answer
// or a generic retry-later message.
func AskTutor(c *fiber.Ctx) error {
	var req tutorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Corpo da requisição inválido")
	}

	if strings.TrimSpace(req.Question) == "" {
		return apperror.NewValidationError("Nenhuma dúvida enviada")
	}

	answer, err := services.AskTutor(c.UserContext(), req.Context, req.Question)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Type == apperror.UpstreamError {
			log.Printf("[%s] Erro com a API da Groq: %v", middleware.GetRequestID(c), appErr.Err)
		}
		return err
	}

	return c.JSON(fiber.Map{
		"simplified_answer": answer,
	})
}
