// main.go - CodeBrincando API entrypoint
package main

import (
	"errors"
	"log"
	"os"
	"time"

	"codebrincando/apperror"
	"codebrincando/database"
	"codebrincando/handlers"
	"codebrincando/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize database and seed the catalog
	database.InitDB()
	database.Seed()
	defer database.CloseDB()

	app := newApp()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	log.Printf("🚀 CodeBrincando API starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🤖 Groq API key configured: %v", os.Getenv("GROQ_API_KEY") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// newApp builds the Fiber app with all middleware and routes. Split from
// main so handler tests can spin up the same app.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RateLimitMiddleware())

	// User routes
	app.Post("/cadastrar_usuario", handlers.CreateUser)
	app.Put("/usuarios/:id", handlers.UpdateUser)
	app.Delete("/usuarios/:id", handlers.DeleteUser)

	// Progress routes
	app.Get("/progresso/:usuario_id", handlers.GetUserProgress)
	app.Post("/progresso", handlers.SubmitChallenge)

	// Content routes
	app.Get("/explicacoes", handlers.GetExplanations)

	// RoboTeca tutoring proxy
	app.Post("/ajuda-bot", handlers.AskTutor)

	// Status probe
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API do CodeBrincando está no ar 🚀",
			"status":  "ok",
		})
	})

	return app
}

// errorHandler maps application errors to JSON responses. Upstream
// failures only surface their sanitized message; the underlying detail
// stays in the server logs.
func errorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.Type == apperror.InternalError {
			message = appErr.Error()
			log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), appErr)
		}
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"error": message,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
