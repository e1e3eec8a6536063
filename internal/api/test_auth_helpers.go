package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kairoszero/satlog/internal/models"
)

func createTestUser(t *testing.T, database *gorm.DB, email, username, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := database.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// loginAndExtractAuthCookie logs in through the HTTP surface and returns
// the auth cookie value for use on subsequent requests.
func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp := postJSON(t, app, "/users/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("login returned status %d: %s", resp.StatusCode, body)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatalf("login response did not set the %s cookie", authCookieName)
	return ""
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, authCookie string) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPost, path, payload, authCookie)
}

func putJSON(t *testing.T, app *fiber.App, path string, payload any, authCookie string) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPut, path, payload, authCookie)
}

func sendJSON(t *testing.T, app *fiber.App, method, path string, payload any, authCookie string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request payload: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		req.Header.Set("Cookie", fmt.Sprintf("%s=%s", authCookieName, authCookie))
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func doRequest(t *testing.T, app *fiber.App, method, path, authCookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authCookie != "" {
		req.Header.Set("Cookie", fmt.Sprintf("%s=%s", authCookieName, authCookie))
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeJSONBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return body
}
