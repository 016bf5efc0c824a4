package services

import (
	"fmt"
	"strings"
	"testing"

	"hackreg/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database with error
// translation enabled, so unique-index violations surface as
// gorm.ErrDuplicatedKey just like in Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Problem{},
		&models.Team{},
		&models.Participant{},
		&models.AdminUser{},
	))

	return db
}

type recordingMailer struct {
	sent []*Credentials
}

func (m *recordingMailer) QueueCredentials(creds *Credentials) {
	m.sent = append(m.sent, creds)
}

func validRegistration() RegistrationInput {
	return RegistrationInput{
		Team: TeamInput{
			Name:        "Alpha",
			Description: "First team",
		},
		Leader: LeaderInput{
			Name:   "Alice",
			Email:  "a@x.com",
			Phone:  "+1234567890",
			Gender: "female",
		},
		Members: []MemberInput{
			{Name: "Bob", Email: "b@x.com", Gender: "male"},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
