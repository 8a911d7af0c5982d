package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/middleware"
	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/service/doctor"
	"github.com/shewell/maternity-api/pkg/httputil"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context(), model.DoctorFilters{
		Location:  c.Query("location"),
		Specialty: c.Query("specialty"),
		Insurance: c.Query("insurance"),
	})
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor ID"})
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateSelf lets the authenticated doctor edit their own listing.
func (h *Handler) UpdateSelf(c *gin.Context) {
	var patch doctor.UpdatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.service.Update(c.Request.Context(), middleware.AccountID(c), patch)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"doctor":  d,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.List)
		doctors.PUT("/me", authMW.RequireKind(model.AccountKindDoctor), h.UpdateSelf)
		doctors.GET("/:id", h.Get)
	}
}
