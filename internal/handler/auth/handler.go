package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/auth"
	"github.com/shewell/maternity-api/pkg/httputil"
)

type Handler struct {
	service   *auth.Service
	cookieTTL int
}

func NewHandler(service *auth.Service, cookieTTLSeconds int) *Handler {
	return &Handler{service: service, cookieTTL: cookieTTLSeconds}
}

type registerRequest struct {
	Kind     model.AccountKind `json:"kind" binding:"omitempty,accountkind"`
	Name     string            `json:"name" binding:"required"`
	Email    string            `json:"email" binding:"required,email"`
	Phone    string            `json:"phone" binding:"required"`
	Password string            `json:"password" binding:"required,min=6"`

	DueDate       string `json:"dueDate" binding:"omitempty,calendardate"`
	WeeksPregnant int    `json:"weeksPregnant"`

	Specialization string   `json:"specialty"`
	Location       string   `json:"location"`
	Hospital       string   `json:"hospital"`
	Insurance      []string `json:"insurance"`
	AvailableDays  string   `json:"availableDays"`
	PricePerMinute float64  `json:"pricePerMinute"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Kind == "" {
		req.Kind = model.AccountKindPatient
	}

	sess, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		Kind:           req.Kind,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		DueDate:        req.DueDate,
		WeeksPregnant:  req.WeeksPregnant,
		Specialization: req.Specialization,
		Location:       req.Location,
		Hospital:       req.Hospital,
		Insurance:      req.Insurance,
		AvailableDays:  req.AvailableDays,
		PricePerMinute: req.PricePerMinute,
	})
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, sess.Token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    sess.Account,
	})
}

type loginRequest struct {
	Kind     model.AccountKind `json:"kind"`
	Email    string            `json:"email" binding:"required"`
	Password string            `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	if req.Kind == "" {
		req.Kind = model.AccountKindPatient
	}

	sess, err := h.service.Login(c.Request.Context(), req.Kind, req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, sess.Token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    sess.Account,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":    middleware.AccountID(c),
			"kind":  middleware.AccountKind(c),
			"email": c.GetString(middleware.ContextEmail),
		},
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, h.cookieTTL, "/", "", false, true)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/check", authMW.RequireAuth(), h.Check)
	}
}
