package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/chat"
	"github.com/shewell/maternity-api/pkg/httputil"
)

type Handler struct {
	service *chat.Service
}

func NewHandler(service *chat.Service) *Handler {
	return &Handler{service: service}
}

type askRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.service.Ask(c.Request.Context(), middleware.AccountID(c), req.Message, req.Language)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (h *Handler) History(c *gin.Context) {
	turns, err := h.service.History(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, turns)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.AccountID(c)); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared successfully"})
}

func (h *Handler) GenerateDietPlan(c *gin.Context) {
	var req chat.DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.GeneratePlan(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	patientOnly := authMW.RequireKind(model.AccountKindPatient)

	chatGroup := r.Group("/chat", patientOnly)
	{
		chatGroup.POST("", h.Ask)
		chatGroup.GET("/history", h.History)
		chatGroup.POST("/clear", h.Clear)
	}

	r.POST("/diet/generate", patientOnly, h.GenerateDietPlan)
}
