package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/repository/memory"
	authservice "github.com/shewell/maternity-api/internal/service/auth"
	"github.com/shewell/maternity-api/internal/service/notification"
	"github.com/shewell/maternity-api/pkg/auth"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	tokens := auth.NewJWTService("test-secret", time.Hour)
	svc := authservice.NewService(
		memory.NewPatientRepository(),
		memory.NewDoctorRepository(),
		memory.NewProfileRepository(),
		tokens,
		notification.NewService(nil, zerolog.Nop()),
	)
	handler := NewHandler(svc, 3600)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api"), middleware.NewAuthMiddleware(tokens))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func registerBody() map[string]any {
	return map[string]any{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "+15550001111",
		"password": "hunter22",
		"dueDate":  "2026-12-01",
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", registerBody())
	assert.Equal(t, http.StatusCreated, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var resp struct {
		User struct {
			Email string `json:"email"`
			Kind  string `json:"kind"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "patient", resp.User.Kind)
	assert.NotContains(t, w.Body.String(), "hunter22")
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	body := registerBody()
	body["email"] = "not-an-email"

	w := postJSON(t, r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsUnknownKind(t *testing.T) {
	r := newTestRouter(t)

	body := registerBody()
	body["kind"] = "admin"

	w := postJSON(t, r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsBadDueDate(t *testing.T) {
	r := newTestRouter(t)

	body := registerBody()
	body["dueDate"] = "01-12-2026"

	w := postJSON(t, r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/register", registerBody())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAndCheck(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "jane@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	check := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(check, req)

	assert.Equal(t, http.StatusOK, check.Code)
	assert.Contains(t, check.Body.String(), "jane@example.com")
}

func TestLoginBadPassword(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckWithoutSession(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
