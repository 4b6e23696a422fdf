// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"os"

	"codebrincando/models"
)

// RunMigrations runs all database migrations. With DB_RESET=true the
// tables are dropped first, so the catalog is rebuilt from scratch;
// never enable that against a store you care about.
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if os.Getenv("DB_RESET") == "true" {
		log.Println("⚠️  DB_RESET=true: dropping all tables")
		if err := db.Migrator().DropTable(
			&models.Progress{},
			&models.Explanation{},
			&models.Challenge{},
			&models.User{},
		); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Progress{},
		&models.Explanation{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ Migrations completed")
}

func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_progress_user ON progress(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_progress_challenge ON progress(challenge_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_language ON challenges(language)")
}
