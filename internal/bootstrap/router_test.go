package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewater-lab/site-backend/config"
	"github.com/tidewater-lab/site-backend/internal/projects/domain"
	"github.com/tidewater-lab/site-backend/internal/projects/repository"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Admin:  config.AdminConfig{Email: "admin@example.org", Password: "hunter2"},
		Auth:   config.AuthConfig{Secret: "test-secret", TokenTTL: 2 * time.Hour},
		Storage: config.StorageConfig{
			DataFile:   filepath.Join(dir, "data", "projects.json"),
			UploadsDir: filepath.Join(dir, "public", "uploads"),
			PublicDir:  filepath.Join(dir, "public"),
		},
		App: config.AppConfig{Environment: "test", Version: "0.0.0-test"},
	}
}

func testRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	require.NoError(t, repository.NewStore(cfg.Storage.DataFile).Ensure())
	return BuildRouter(RouterDeps{ServiceName: "site-backend-test", Cfg: cfg}), cfg
}

// multipartBody builds a multipart form with text fields plus files under
// the "images" field.
func multipartBody(t *testing.T, fields map[string]string, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range fileNames {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, "bytes-of-"+name)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	body := strings.NewReader(`{"email":"admin@example.org","password":"hunter2"}`)
	req := httptest.NewRequest("POST", "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func createProject(t *testing.T, r *gin.Engine, session *http.Cookie, fields map[string]string, files ...string) domain.ProjectRecord {
	t.Helper()

	body, contentType := multipartBody(t, fields, files...)
	req := httptest.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp struct {
		OK      bool                 `json:"ok"`
		Project domain.ProjectRecord `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	return resp.Project
}

func TestHealth(t *testing.T) {
	r, _ := testRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rr.Body.String(), `"store":"ok"`)
}

func TestMutationsRequireSession(t *testing.T) {
	r, cfg := testRouter(t)
	store := repository.NewStore(cfg.Storage.DataFile)

	body, contentType := multipartBody(t, map[string]string{
		"title": "Sneaky", "summary": "s", "date": "2024-01-01", "results": "r",
	})
	req := httptest.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, store.Load(), "rejected request must not touch the store")

	for _, m := range []string{"PUT", "DELETE"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(m, "/api/projects/some-id", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, m)
	}
}

func TestProjectLifecycle(t *testing.T) {
	r, _ := testRouter(t)
	session := login(t, r)

	p := createProject(t, r, session, map[string]string{
		"title":    "Reef Survey",
		"summary":  "Annual reef condition survey.",
		"date":     "2024-01-01",
		"results":  "Coral cover stable.",
		"outcomes": "Dr. A\nDr. B",
	}, "one.jpg", "two.jpg")

	require.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"Dr. A", "Dr. B"}, p.Outcomes)
	require.Len(t, p.Images, 2)

	t.Run("public list and get", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/projects", nil))
		assert.Equal(t, http.StatusOK, rr.Code)

		var list []domain.ProjectRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, p.ID, list[0].ID)

		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/projects/"+p.ID, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("uploaded files are served", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/"+p.Images[0], nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "bytes-of-one.jpg", rr.Body.String())
	})

	t.Run("detail page renders", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/project/"+p.ID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rr.Body.String(), "Reef Survey")
		assert.Contains(t, rr.Body.String(), p.Images[0])
	})

	t.Run("update removes adds and reorders images", func(t *testing.T) {
		first, second := p.Images[0], p.Images[1]

		removeList, err := json.Marshal([]string{first})
		require.NoError(t, err)
		body, contentType := multipartBody(t, map[string]string{
			"removeImages": string(removeList),
			"makePrimary":  "1",
		}, "three.png")
		req := httptest.NewRequest("PUT", "/api/projects/"+p.ID, body)
		req.Header.Set("Content-Type", contentType)
		req.AddCookie(session)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp struct {
			Project domain.ProjectRecord `json:"project"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Project.Images, 2)
		assert.Equal(t, second, resp.Project.Images[1])
		assert.Contains(t, resp.Project.Images[0], ".png")
		p = resp.Project
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/projects/"+p.ID, nil)
		req.AddCookie(session)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"deleted"`)

		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/projects/"+p.ID, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateValidationFailure(t *testing.T) {
	r, _ := testRouter(t)
	session := login(t, r)

	body, contentType := multipartBody(t, map[string]string{
		"title": "No results", "summary": "s", "date": "2024-01-01",
	})
	req := httptest.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "results")
}

func TestNotFoundShapes(t *testing.T) {
	r, _ := testRouter(t)

	t.Run("api get is json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/projects/missing", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), `"message":"Project not found"`)
	})

	t.Run("detail page is plain text", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/project/missing", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Project not found", rr.Body.String())
	})
}

func TestExpiredSessionIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.Auth.TokenTTL = -time.Minute
	require.NoError(t, repository.NewStore(cfg.Storage.DataFile).Ensure())
	r := BuildRouter(RouterDeps{ServiceName: "site-backend-test", Cfg: cfg})

	session := login(t, r)

	body, contentType := multipartBody(t, map[string]string{
		"title": "T", "summary": "s", "date": "2024-01-01", "results": "r",
	})
	req := httptest.NewRequest("POST", "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(session)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
