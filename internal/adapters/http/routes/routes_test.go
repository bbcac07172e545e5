package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"masterdesk/internal/adapters/http/middleware"
	"masterdesk/internal/adapters/persistence"
	"masterdesk/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "3000",
		Store: config.StoreConfig{
			Driver:  config.StoreDriverFile,
			DataDir: t.TempDir(),
		},
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  30,
			RefreshTokenDays: 7,
		},
		Cookie:  config.CookieConfig{SameSite: "lax"},
		Session: config.SessionConfig{TimerMins: 30},
	}
	config.AppConfig = cfg

	repos, err := persistence.Open(cfg, nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, repos, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	t.Run("demo credentials grant access", func(t *testing.T) {
		token := login(t, app)

		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		user := data["user"].(map[string]any)
		assert.Equal(t, "admin", user["username"])
		assert.LessOrEqual(t, data["remaining_secs"].(float64), float64(30*60))
	})

	t.Run("wrong credentials rejected", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "admin",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("master routes require a token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDocumentTypeEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	t.Run("default list shows active seeds", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		assert.Equal(t, float64(2), data["total"])
	})

	t.Run("inactive filter shows the third seed", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types?status=inactive", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		records := data["document_types"].([]any)
		require.Len(t, records, 1)
		first := records[0].(map[string]any)
		assert.Equal(t, "Invalid Status Report", first["name"])
	})

	t.Run("search matches case-insensitively", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types?search=lab", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		records := data["document_types"].([]any)
		require.Len(t, records, 1)
		assert.Equal(t, "Lab Report", records[0].(map[string]any)["name"])
	})

	t.Run("create then list shows the new record first", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/document-types", token, map[string]any{
			"name":        "Design Spec",
			"description": "Layout documents",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		created := body["data"].(map[string]any)["document_type"].(map[string]any)
		assert.Equal(t, float64(4), created["id"])
		assert.Equal(t, "admin", created["created_by"])

		_, listBody := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types", token, nil)
		records := listBody["data"].(map[string]any)["document_types"].([]any)
		assert.Equal(t, "Design Spec", records[0].(map[string]any)["name"])
	})

	t.Run("duplicate name conflicts and leaves the list unchanged", func(t *testing.T) {
		_, before := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types?status=all", token, nil)
		beforeTotal := before["data"].(map[string]any)["total"]

		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/document-types", token, map[string]any{
			"name": "PROTOTYPE",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Name must be unique", body["error"])

		_, after := doJSON(t, app, http.MethodGet, "/api/v1/master/document-types?status=all", token, nil)
		assert.Equal(t, beforeTotal, after["data"].(map[string]any)["total"])
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/document-types", token, map[string]any{
			"name": "   ",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Name is required", body["error"])
	})

	t.Run("update unknown id is not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/v1/master/document-types/99", token, map[string]any{
			"name": "Ghost",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProductEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	t.Run("type dropdown lists the fixed options", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/master/products/types", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		types := body["data"].(map[string]any)["product_types"].([]any)
		assert.Len(t, types, 4)
	})

	t.Run("filters combine", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/master/products?product_type=Biologic&product_name=adalimumab", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		records := body["data"].(map[string]any)["products"].([]any)
		require.Len(t, records, 1)
		assert.Equal(t, "ADL-40", records[0].(map[string]any)["product_code"])
	})

	t.Run("oversized code is a validation error", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/products", token, map[string]any{
			"product_name": "Unique Product",
			"product_type": "Device",
			"product_code": "CODE-0123456789X",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Product code exceeds 15 characters", body["error"])
	})

	t.Run("duplicate product name conflicts", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/products", token, map[string]any{
			"product_name": "insulin delivery PEN",
			"product_type": "Device",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Product name already exists (case-insensitive match)", body["error"])
	})

	t.Run("create and update round trip", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/master/products", token, map[string]any{
			"product_name": "Metformin 500mg Tablet",
			"product_type": "Small Molecule",
			"product_code": "MET-500",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := body["data"].(map[string]any)["product"].(map[string]any)
		id := created["id"].(float64)

		resp, body = doJSON(t, app, http.MethodPut, "/api/v1/master/products/5", token, map[string]any{
			"product_name": "Metformin 500mg Tablet",
			"product_type": "Small Molecule",
			"product_code": "MET-500",
			"description":  "Oral biguanide for type 2 diabetes.",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		updated := body["data"].(map[string]any)["product"].(map[string]any)
		assert.Equal(t, id, updated["id"])
		assert.Equal(t, "Oral biguanide for type 2 diabetes.", updated["description"])
	})
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
