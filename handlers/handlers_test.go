package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hackreg/middleware"
	"hackreg/models"
	"hackreg/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("handlers-test-secret-key-long-enough")

// newTestApp wires the real services and routes against a per-test
// in-memory SQLite database, mirroring the route table in main.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	teamService := services.NewTeamService(db, nil)
	authService := services.NewAuthService(db, testSecret, time.Hour)
	problemService := services.NewProblemService(db)

	teamHandler := NewTeamHandler(teamService)
	authHandler := NewAuthHandler(authService)
	problemHandler := NewProblemHandler(problemService)
	guard := middleware.NewGuard(testSecret)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/register-team", teamHandler.RegisterTeam)
	api.Post("/login/team", authHandler.LoginTeam)
	api.Post("/problems", problemHandler.CreateProblem)
	api.Get("/problems", problemHandler.ListProblems)
	api.Get("/me",
		guard.RequireRoles(models.RoleLeader, models.RoleMember, models.RoleAdmin),
		authHandler.Me)
	api.Get("/team",
		guard.RequireRoles(models.RoleLeader, models.RoleMember),
		teamHandler.GetMyTeam)
	api.Get("/team/members",
		guard.RequireRoles(models.RoleLeader),
		teamHandler.GetTeamMembers)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&m))
	return m
}

func registrationBody() map[string]interface{} {
	return map[string]interface{}{
		"team": map[string]interface{}{
			"name":        "Alpha",
			"description": "First team",
			"problemId":   "0",
		},
		"leader": map[string]interface{}{
			"name":   "Alice",
			"email":  "a@x.com",
			"phone":  "+1234567890",
			"gender": "female",
		},
		"members": []map[string]interface{}{
			{"name": "Bob", "email": "b@x.com", "gender": "male"},
		},
	}
}
