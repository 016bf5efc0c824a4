package handlers

import (
	"testing"

	"hackreg/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTeamEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/register-team", registrationBody(), nil)
	require.Equal(t, 201, resp.StatusCode)

	body := decodeJSON(t, resp.Body)
	assert.Contains(t, body["message"], "registration successful")

	creds, ok := body["credentials"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alpha", creds["teamName"])

	leader, ok := creds["leader"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a@x.com", leader["email"])
	assert.Equal(t, "leader", leader["role"])
	assert.Len(t, leader["password"], 8)

	var count int64
	require.NoError(t, db.Model(&models.Team{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterTeamEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
	}{
		{
			name:   "missing leader",
			mutate: func(b map[string]interface{}) { delete(b, "leader") },
		},
		{
			name:   "missing team",
			mutate: func(b map[string]interface{}) { delete(b, "team") },
		},
		{
			name:   "empty members",
			mutate: func(b map[string]interface{}) { b["members"] = []map[string]interface{}{} },
		},
		{
			name: "members not a list",
			mutate: func(b map[string]interface{}) {
				b["members"] = map[string]interface{}{"name": "Bob"}
			},
		},
		{
			name: "invalid gender",
			mutate: func(b map[string]interface{}) {
				b["leader"].(map[string]interface{})["gender"] = "unknown"
			},
		},
		{
			name: "invalid member email",
			mutate: func(b map[string]interface{}) {
				b["members"].([]map[string]interface{})[0]["email"] = "not-an-email"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, db := newTestApp(t)

			body := registrationBody()
			tt.mutate(body)

			resp := doJSON(t, app, "POST", "/api/register-team", body, nil)
			assert.Equal(t, 400, resp.StatusCode)

			var count int64
			require.NoError(t, db.Model(&models.Team{}).Count(&count).Error)
			assert.EqualValues(t, 0, count)
		})
	}
}

func TestRegisterTeamEndpoint_DuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/register-team", registrationBody(), nil)
	require.Equal(t, 201, resp.StatusCode)

	// Second team reusing the first team's member email as leader
	second := registrationBody()
	second["team"].(map[string]interface{})["name"] = "Beta"
	second["leader"].(map[string]interface{})["email"] = "b@x.com"
	second["members"].([]map[string]interface{})[0]["email"] = "c@x.com"

	resp = doJSON(t, app, "POST", "/api/register-team", second, nil)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON(t, resp.Body)
	assert.Contains(t, body["error"], "already registered")

	var count int64
	require.NoError(t, db.Model(&models.Team{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTeamRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/register-team", registrationBody(), nil)
	require.Equal(t, 201, resp.StatusCode)
	creds := decodeJSON(t, resp.Body)["credentials"].(map[string]interface{})

	leaderToken := loginFor(t, app, "a@x.com", creds["leader"].(map[string]interface{})["password"].(string))
	memberCreds := creds["members"].([]interface{})[0].(map[string]interface{})
	memberToken := loginFor(t, app, "b@x.com", memberCreds["password"].(string))

	// Both roles can view their team
	resp = doJSON(t, app, "GET", "/api/team", nil, bearer(leaderToken))
	assert.Equal(t, 200, resp.StatusCode)
	team := decodeJSON(t, resp.Body)["team"].(map[string]interface{})
	assert.Equal(t, "Alpha", team["name"])

	resp = doJSON(t, app, "GET", "/api/team", nil, bearer(memberToken))
	assert.Equal(t, 200, resp.StatusCode)

	// The roster view is leader-only
	resp = doJSON(t, app, "GET", "/api/team/members", nil, bearer(leaderToken))
	assert.Equal(t, 200, resp.StatusCode)
	members := decodeJSON(t, resp.Body)["members"].([]interface{})
	assert.Len(t, members, 1)

	resp = doJSON(t, app, "GET", "/api/team/members", nil, bearer(memberToken))
	assert.Equal(t, 403, resp.StatusCode)

	// No token at all
	resp = doJSON(t, app, "GET", "/api/team", nil, nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func loginFor(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/login/team", map[string]interface{}{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, 200, resp.StatusCode)
	return decodeJSON(t, resp.Body)["token"].(string)
}
