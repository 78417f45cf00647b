package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-console/internal/backend"
	"clinic-console/internal/usecase/visitor"
	"clinic-console/internal/validate"
)

// PublicHandler handles HTTP requests for the public site surface.
type PublicHandler struct {
	uc  *visitor.Usecase
	api *backend.Client
	log *zap.Logger
}

// NewPublicHandler creates a new PublicHandler instance
func NewPublicHandler(uc *visitor.Usecase, api *backend.Client, log *zap.Logger) *PublicHandler {
	return &PublicHandler{uc: uc, api: api, log: log}
}

// Signup handles POST /signup
func (h *PublicHandler) Signup(c *gin.Context) {
	var form validate.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Warn("invalid signup request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be valid JSON",
		})
		return
	}

	registrant, err := h.uc.Signup(c.Request.Context(), form)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    registrant,
	})
}

// BookAppointment handles POST /appointments
func (h *PublicHandler) BookAppointment(c *gin.Context) {
	var form validate.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Warn("invalid booking request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "request body must be valid JSON",
		})
		return
	}

	appt, err := h.uc.BookAppointment(c.Request.Context(), form)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": appt,
	})
}

// Offers handles GET /offers
func (h *PublicHandler) Offers(c *gin.Context) {
	offers, err := h.uc.ActiveOffers(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": offers})
}

// SliderImages handles GET /slider
func (h *PublicHandler) SliderImages(c *gin.Context) {
	slides, err := h.uc.ActiveSliderImages(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slides})
}

// Countries handles GET /countries
func (h *PublicHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.uc.Countries()})
}

// Health handles GET /health. It reports healthy when the remote backend
// answers its health probe.
func (h *PublicHandler) Health(c *gin.Context) {
	if err := h.api.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"service": "clinic-console",
			"backend": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "clinic-console",
	})
}
