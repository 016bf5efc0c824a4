// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"os"

	"hackreg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and seeds the admin account.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.Problem{},
		&models.Team{},
		&models.Participant{},
		&models.AdminUser{},
	); err != nil {
		return err
	}

	createIndexes(db)

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("All migrations completed successfully")
	return nil
}

// createIndexes creates indexes beyond what AutoMigrate derives from tags
func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participants_team_role ON participants(team_id, role)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_problem ON teams(problem_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_problems_active ON problems(is_active)")
}

// seedAdminUser creates the organizer account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Skipped when the variables are unset or the account
// already exists.
func seedAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.AdminUser
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username: username,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account %q", username)
	return nil
}
