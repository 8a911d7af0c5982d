package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/appointment"
	"github.com/shewell/maternity-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

type bookRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required,calendardate"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

func (h *Handler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor ID"})
		return
	}

	apt, err := h.service.Book(c.Request.Context(), middleware.AccountID(c), doctorID, req.Date, req.Time, req.Reason)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment scheduled successfully",
		"appointment": apt,
	})
}

func (h *Handler) List(c *gin.Context) {
	apts, err := h.service.List(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var patch model.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apt, err := h.service.Update(c.Request.Context(), middleware.AccountID(c), id, patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully",
		"appointment": apt,
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), middleware.AccountID(c), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}

func (h *Handler) ListForDoctor(c *gin.Context) {
	apts, err := h.service.ListForDoctor(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	patientOnly := authMW.RequireKind(model.AccountKindPatient)
	appointments := r.Group("/appointments", patientOnly)
	{
		appointments.POST("", h.Book)
		appointments.GET("", h.List)
		appointments.PUT("/:id", h.Update)
		appointments.DELETE("/:id", h.Cancel)
	}

	r.GET("/doctor/appointments", authMW.RequireKind(model.AccountKindDoctor), h.ListForDoctor)
}
