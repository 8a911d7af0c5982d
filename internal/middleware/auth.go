package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/session"
	"github.com/shewell/maternity-api/pkg/auth"
)

const (
	// SessionCookie carries the signed session token for browser callers.
	SessionCookie = "shewell_session"

	ContextAccountID   = "accountID"
	ContextAccountKind = "accountKind"
	ContextEmail       = "accountEmail"
)

type AuthMiddleware struct {
	tokens auth.TokenService
}

func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) sessionState(c *gin.Context) session.State {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		// fall back to a bearer token for non-browser clients
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return session.State{}
		}
		token = parts[1]
	}

	claims, err := m.tokens.Validate(token)
	if err != nil {
		return session.State{}
	}

	c.Set(ContextAccountID, claims.AccountID)
	c.Set(ContextAccountKind, claims.AccountKind)
	c.Set(ContextEmail, claims.Email)
	return session.State{AccountID: claims.AccountID, AccountKind: claims.AccountKind}
}

// RequireKind authenticates the session and rejects accounts of the wrong
// kind. API callers get JSON 401s; the underlying decision is the shared
// session guard.
func (m *AuthMiddleware) RequireKind(kind model.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := m.sessionState(c)

		switch session.Authorize(state, kind).Verdict {
		case session.Unauthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
		case session.WrongRole:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong account type for this operation"})
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireAuth accepts any authenticated account kind.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.RequireKind("")
}

// AccountID returns the authenticated account id set by the middleware.
func AccountID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextAccountID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// AccountKind returns the authenticated account kind.
func AccountKind(c *gin.Context) model.AccountKind {
	if v, ok := c.Get(ContextAccountKind); ok {
		if kind, ok := v.(model.AccountKind); ok {
			return kind
		}
	}
	return ""
}
