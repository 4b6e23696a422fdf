// handlers/users.go - User registration, update and removal
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"codebrincando/apperror"
	"codebrincando/database"
	"codebrincando/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type createUserRequest struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

type updateUserRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// CreateUser handles POST /cadastrar_usuario
func CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Corpo da requisição inválido")
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperror.NewValidationError("O campo 'name' é obrigatório")
	}

	user := models.User{Name: req.Name, Age: req.Age}
	if err := database.GetDB().Create(&user).Error; err != nil {
		return apperror.NewInternalError("Falha ao cadastrar usuário", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Usuário '%s' cadastrado com sucesso!", user.Name),
		"user_id": user.ID,
	})
}

// UpdateUser handles PUT /usuarios/:id. Only the supplied fields change;
// absent fields keep their previous value.
func UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.NewValidationError("ID de usuário inválido")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Corpo da requisição inválido")
	}

	if req.Name == nil && req.Age == nil {
		return apperror.NewValidationError("Nada para atualizar. Envie name e/ou age.")
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Usuário não encontrado.")
		}
		return apperror.NewInternalError("Falha ao buscar usuário", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = req.Age
	}

	if err := db.Save(&user).Error; err != nil {
		return apperror.NewInternalError("Falha ao atualizar usuário", err)
	}

	return c.JSON(fiber.Map{
		"message": "Usuário atualizado com sucesso.",
		"user_id": user.ID,
		"name":    user.Name,
		"age":     user.Age,
	})
}

// DeleteUser handles DELETE /usuarios/:id. The user's progress rows go
// with the user, in one transaction.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperror.NewValidationError("ID de usuário inválido")
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Usuário não encontrado.")
		}
		return apperror.NewInternalError("Falha ao buscar usuário", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return apperror.NewInternalError("Falha ao remover usuário", err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Usuário %d removido com sucesso.", user.ID),
	})
}
