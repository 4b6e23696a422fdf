// handlers/explanations.go
package handlers

import (
	"codebrincando/apperror"
	"codebrincando/database"
	"codebrincando/models"

	"github.com/gofiber/fiber/v2"
)

// GetExplanations handles GET /explicacoes, returning every explanation
// card in ascending id order for the intro screen.
func GetExplanations(c *fiber.Ctx) error {
	db := database.GetDB()

	explanations := make([]models.Explanation, 0)
	if err := db.Order("id").Find(&explanations).Error; err != nil {
		return apperror.NewInternalError("Falha ao buscar explicações", err)
	}

	return c.JSON(explanations)
}
