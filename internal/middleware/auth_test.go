package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewJWTService("test-secret", time.Hour)
	mw := NewAuthMiddleware(tokens)

	r := gin.New()
	r.GET("/patient-only", mw.RequireKind(model.AccountKindPatient), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountId": AccountID(c).String()})
	})
	r.GET("/any", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"kind": string(AccountKind(c))})
	})
	return r, tokens
}

func sessionToken(t *testing.T, tokens auth.TokenService, kind model.AccountKind) string {
	t.Helper()
	token, err := tokens.Generate(auth.SessionClaims{
		AccountID:   uuid.New(),
		AccountKind: kind,
		Email:       "jane@example.com",
	})
	require.NoError(t, err)
	return token
}

func TestRequireKindWithoutSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
}

func TestRequireKindWithCookie(t *testing.T) {
	r, tokens := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, tokens, model.AccountKindPatient)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireKindWithBearerFallback(t *testing.T) {
	r, tokens := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, tokens, model.AccountKindPatient))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireKindRejectsWrongKind(t *testing.T) {
	r, tokens := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, tokens, model.AccountKindDoctor)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"wrong account type for this operation"}`, w.Body.String())
}

func TestRequireKindRejectsTamperedToken(t *testing.T) {
	r, _ := newTestRouter(t)
	foreign := auth.NewJWTService("other-secret", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patient-only", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, foreign, model.AccountKindPatient)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsAnyKind(t *testing.T) {
	r, tokens := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, tokens, model.AccountKindDoctor)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doctor")
}
