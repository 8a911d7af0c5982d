package reminder

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/profile"
	"github.com/shewell/maternity-api/pkg/httputil"
)

type Handler struct {
	service *profile.Service
}

func NewHandler(service *profile.Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required,calendardate"`
	Time        string `json:"time" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.service.AddReminder(c.Request.Context(), middleware.AccountID(c), model.Reminder{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Reminder created successfully",
		"reminder": reminder,
	})
}

func (h *Handler) List(c *gin.Context) {
	reminders, err := h.service.ListReminders(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reminder ID"})
		return
	}

	if err := h.service.RemoveReminder(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	patientOnly := authMW.RequireKind(model.AccountKindPatient)
	reminders := r.Group("/reminders", patientOnly)
	{
		reminders.POST("", h.Create)
		reminders.GET("", h.List)
		reminders.DELETE("/:id", h.Delete)
	}
}
