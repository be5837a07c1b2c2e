package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltracker/config"
	"skilltracker/repository"
	"skilltracker/service"
	"skilltracker/testutil"
	"skilltracker/util"
)

const pdfBytes = "%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"

type stubHealth struct{ err error }

func (s stubHealth) Ping(context.Context) error { return s.err }

type silentMailer struct{}

func (silentMailer) SendPortfolioPublished(string, string, string) error { return nil }

func newTestApp(t *testing.T) (*fiber.App, *testutil.FakeMediaStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	media := testutil.NewFakeMediaStore()

	users := repository.NewUserRepository(db)
	certs := repository.NewCertificateRepository(db)
	skills := repository.NewSkillRepository(db)
	projects := repository.NewProjectRepository(db)
	tokens := util.NewTokenIssuer("test-secret", time.Hour, "skilltracker")

	app := NewApp(config.HTTP{BodyLimit: 6 << 20, AllowOrigins: []string{"*"}})
	SetupRoutes(app, Services{
		Auth:         service.NewAuthService(users, media, tokens, "https://media.test/default.png"),
		Certificates: service.NewCertificateService(certs, media),
		Skills:       service.NewSkillService(skills),
		Projects:     service.NewProjectService(projects, skills),
		Portfolio:    service.NewPortfolioService(users, certs, skills, projects, silentMailer{}, "https://skilltracker.test"),
		Dashboard:    service.NewDashboardService(repository.NewStatsRepository(db)),
		Health:       repository.NewHealthRepository(db),
		Tokens:       tokens,
	}, func(c *fiber.Ctx) error { return c.Next() })
	return app, media
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func register(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	status, body := do(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "password1",
	})
	require.Equal(t, http.StatusCreated, status, body)
	return body["token"].(string)
}

func multipartRequest(t *testing.T, method, path, token, field, filename string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if data != nil {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("x-auth-token", token)
	return req
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token := register(t, app, "Ann", "ann@example.com")

	status, body := do(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Ann", "email": "ANN@example.com", "password": "password1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user already exists", body["error"])

	status, body = do(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Bob", "email": "not-an-email", "password": "password1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, body = do(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ann@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid credentials", body["error"])

	status, body = do(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ann@example.com", body["email"])
	assert.NotContains(t, body, "passwordHash")

	status, body = do(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "no token, authorization denied", body["error"])

	status, _ = do(t, app, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = do(t, app, http.MethodPut, "/api/auth/password", token, map[string]any{
		"currentPassword": "password1", "newPassword": "password2",
	})
	assert.Equal(t, http.StatusOK, status, body)

	status, _ = do(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ann@example.com", "password": "password2",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestAvatarUpload(t *testing.T) {
	app, media := newTestApp(t)
	token := register(t, app, "Ann", "ann@example.com")

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	status, body := send(t, app, multipartRequest(t, http.MethodPut, "/api/auth/avatar", token, "avatar", "me.png", png, nil))
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body["avatarUrl"], "https://media.test/")
	assert.Equal(t, 1, media.Count())

	status, body = send(t, app, multipartRequest(t, http.MethodPut, "/api/auth/avatar", token, "avatar", "me.pdf", []byte(pdfBytes), nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, _ = send(t, app, multipartRequest(t, http.MethodPut, "/api/auth/avatar", token, "avatar", "", nil, nil))
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodDelete, "/api/auth/avatar", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "https://media.test/default.png", body["avatarUrl"])
	assert.Equal(t, 0, media.Count())
}

func TestCertificateEndpoints(t *testing.T) {
	app, media := newTestApp(t)
	ann := register(t, app, "Ann", "ann@example.com")
	bob := register(t, app, "Bob", "bob@example.com")

	status, body := send(t, app, multipartRequest(t, http.MethodPost, "/api/certificates", ann,
		"certificateFile", "cert.pdf", []byte(pdfBytes), map[string]string{
			"title": "Go Developer", "issueDate": "2024-03-01", "category": "Programming", "isPublic": "true",
		}))
	require.Equal(t, http.StatusCreated, status, body)
	id := body["id"].(string)
	assert.Equal(t, "Programming", body["category"])
	assert.Equal(t, true, body["isPublic"])
	assert.Equal(t, 1, media.Count())

	status, _ = send(t, app, multipartRequest(t, http.MethodPost, "/api/certificates", ann,
		"certificateFile", "", nil, map[string]string{"title": "No file"}))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = send(t, app, multipartRequest(t, http.MethodPost, "/api/certificates", ann,
		"certificateFile", "cert.pdf", []byte(pdfBytes), map[string]string{"title": "x", "category": "Cooking"}))
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodGet, "/api/certificates/"+id, bob, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "user not authorized", body["error"])

	status, body = do(t, app, http.MethodGet, "/api/certificates/nope", ann, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "certificate not found", body["error"])

	status, body = do(t, app, http.MethodPut, "/api/certificates/"+id, ann, map[string]any{"issuer": "Acme", "category": ""})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Acme", body["issuer"])
	assert.Equal(t, "Programming", body["category"])

	status, _ = do(t, app, http.MethodDelete, "/api/certificates/"+id, ann, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, media.Count())
}

func TestPortfolioScenario(t *testing.T) {
	app, _ := newTestApp(t)
	token := register(t, app, "Ann", "ann@example.com")

	status, skill := do(t, app, http.MethodPost, "/api/skills", token, map[string]any{
		"name": "Python", "category": "Backend Development", "level": "Advanced", "isPublic": true,
	})
	require.Equal(t, http.StatusCreated, status, skill)
	assert.Equal(t, "python", skill["name"])

	status, body := do(t, app, http.MethodPost, "/api/skills", token, map[string]any{"name": "python"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "skill with this name already exists", body["error"])

	status, body = do(t, app, http.MethodPost, "/api/skills", token, map[string]any{"name": "go", "level": "Guru"})
	assert.Equal(t, http.StatusBadRequest, status, body)

	status, project := do(t, app, http.MethodPost, "/api/projects", token, map[string]any{
		"title":            "Scraper",
		"description":      "Collects things",
		"technologies":     "Python, SQL",
		"startDate":        "2024-01-01",
		"associatedSkills": []string{skill["id"].(string)},
		"isPublic":         true,
	})
	require.Equal(t, http.StatusCreated, status, project)
	assert.Equal(t, []any{"Python", "SQL"}, project["technologies"])

	status, body = do(t, app, http.MethodGet, "/api/public-portfolio/settings", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["enabled"])

	status, body = do(t, app, http.MethodPut, "/api/public-portfolio/settings", token, map[string]any{
		"enabled": true,
		"theme":   "dark",
		"settings": map[string]any{
			"showCertificates": false,
			"aboutMe":          "I *like* Go",
		},
	})
	require.Equal(t, http.StatusOK, status, body)
	publicID, _ := body["publicId"].(string)
	require.NotEmpty(t, publicID)

	status, body = do(t, app, http.MethodPut, "/api/public-portfolio/settings", token, map[string]any{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, status, body)

	status, body = do(t, app, http.MethodGet, "/api/public-portfolio/"+publicID, "", nil)
	require.Equal(t, http.StatusOK, status, body)

	owner := body["user"].(map[string]any)
	assert.Equal(t, "Ann", owner["name"])
	assert.Equal(t, "dark", owner["theme"])
	assert.Contains(t, owner["aboutMeHtml"], "<em>like</em>")
	assert.Equal(t, []any{"skills", "projects"}, body["sections"])

	projects := body["projects"].([]any)
	require.Len(t, projects, 1)
	linked := projects[0].(map[string]any)["associatedSkills"].([]any)
	require.Len(t, linked, 1)
	assert.Equal(t, "python", linked[0].(map[string]any)["name"])

	status, body = do(t, app, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Backend Development", body["topSkillCategory"])
	assert.Equal(t, "N/A", body["topCertificateCategory"])

	status, _ = do(t, app, http.MethodPut, "/api/public-portfolio/settings", token, map[string]any{"enabled": false})
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, app, http.MethodGet, "/api/public-portfolio/"+publicID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "public portfolio not found or not enabled", body["error"])
}

func TestProjectRejectsForeignSkill(t *testing.T) {
	app, _ := newTestApp(t)
	ann := register(t, app, "Ann", "ann@example.com")
	bob := register(t, app, "Bob", "bob@example.com")

	status, skill := do(t, app, http.MethodPost, "/api/skills", bob, map[string]any{"name": "rust"})
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, app, http.MethodPost, "/api/projects", ann, map[string]any{
		"title": "x", "description": "y", "associatedSkills": []string{skill["id"].(string)},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "one or more associated skills are invalid or do not belong to the user", body["error"])
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	down := NewApp(config.HTTP{BodyLimit: 1 << 20})
	down.Get("/health", NewHealthController(stubHealth{err: errors.New("db gone")}).Health)
	status, body = do(t, down, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", body["status"])
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, body["error"])
}

func TestPublicPortfolioHidesStorageDetails(t *testing.T) {
	app, _ := newTestApp(t)
	token := register(t, app, "Ann", "ann@example.com")

	status, body := send(t, app, multipartRequest(t, http.MethodPost, "/api/certificates", token,
		"certificateFile", "cert.pdf", []byte(pdfBytes), map[string]string{"title": "Go Developer", "isPublic": "true"}))
	require.Equal(t, http.StatusCreated, status, body)
	require.NotEmpty(t, body["fileMediaId"], "owner view keeps the media id")

	status, body = do(t, app, http.MethodPut, "/api/public-portfolio/settings", token, map[string]any{"enabled": true})
	require.Equal(t, http.StatusOK, status, body)
	publicID := body["publicId"].(string)

	status, body = do(t, app, http.MethodGet, "/api/public-portfolio/"+publicID, "", nil)
	require.Equal(t, http.StatusOK, status, body)

	certs := body["certificates"].([]any)
	require.Len(t, certs, 1)
	cert := certs[0].(map[string]any)
	assert.Equal(t, "Go Developer", cert["title"])
	assert.NotEmpty(t, cert["fileUrl"])
	assert.NotContains(t, cert, "fileMediaId")
	assert.NotContains(t, cert, "user")
}
