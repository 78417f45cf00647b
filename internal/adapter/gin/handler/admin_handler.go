package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-console/internal/backend"
	"clinic-console/internal/report"
	"clinic-console/internal/usecase/admin"
	"clinic-console/internal/validate"
)

// AdminHandler handles HTTP requests for the control panel.
type AdminHandler struct {
	uc  *admin.Usecase
	log *zap.Logger
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(uc *admin.Usecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.uc.Dashboard(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dashboard})
}

// Registrants handles GET /admin/registrants with optional period, from,
// and to query parameters. Explicit from/to take precedence over period.
func (h *AdminHandler) Registrants(c *gin.Context) {
	var filter report.DateFilter

	if p := c.Query("period"); p != "" {
		period := report.Period(p)
		if !period.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "unknown period: " + p,
			})
			return
		}
		filter.Period = period
	}
	if s := c.Query("from"); s != "" {
		from, err := validate.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "from must be YYYY-MM-DD",
			})
			return
		}
		filter.From = from
	}
	if s := c.Query("to"); s != "" {
		to, err := validate.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "to must be YYYY-MM-DD",
			})
			return
		}
		filter.To = to
	}

	users, err := h.uc.ListRegistrants(c.Request.Context(), filter)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"users": users, "count": len(users)},
	})
}

// StatusRequest represents the HTTP request body for status updates
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRegistrantStatus handles PATCH /admin/registrants/:id/status
func (h *AdminHandler) UpdateRegistrantStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "status is required"})
		return
	}
	if err := h.uc.UpdateRegistrantStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteRegistrant handles DELETE /admin/registrants/:id
func (h *AdminHandler) DeleteRegistrant(c *gin.Context) {
	if err := h.uc.DeleteRegistrant(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Appointments handles GET /admin/appointments
func (h *AdminHandler) Appointments(c *gin.Context) {
	appts, err := h.uc.Appointments(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// UpdateAppointmentStatus handles PATCH /admin/appointments/:id/status
func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "status is required"})
		return
	}
	appts, err := h.uc.SetAppointmentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointments": appts})
}

// Offers handles GET /admin/offers
func (h *AdminHandler) Offers(c *gin.Context) {
	offers, err := h.uc.Offers(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": offers})
}

// CreateOffer handles POST /admin/offers
func (h *AdminHandler) CreateOffer(c *gin.Context) {
	var form validate.OfferForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "request body must be valid JSON"})
		return
	}
	offers, err := h.uc.CreateOffer(c.Request.Context(), form)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": offers})
}

// UpdateOffer handles PUT /admin/offers/:id
func (h *AdminHandler) UpdateOffer(c *gin.Context) {
	var payload backend.OfferPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "request body must be valid JSON"})
		return
	}
	offers, err := h.uc.UpdateOffer(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": offers})
}

// DeleteOffer handles DELETE /admin/offers/:id
func (h *AdminHandler) DeleteOffer(c *gin.Context) {
	offers, err := h.uc.DeleteOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": offers})
}

// SliderImages handles GET /admin/slider
func (h *AdminHandler) SliderImages(c *gin.Context) {
	slides, err := h.uc.SliderImages(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slides})
}

// CreateSliderImage handles POST /admin/slider
func (h *AdminHandler) CreateSliderImage(c *gin.Context) {
	var form validate.SliderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "request body must be valid JSON"})
		return
	}
	slides, err := h.uc.CreateSliderImage(c.Request.Context(), form)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": slides})
}

// UpdateSliderImage handles PUT /admin/slider/:id
func (h *AdminHandler) UpdateSliderImage(c *gin.Context) {
	var payload backend.SliderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "request body must be valid JSON"})
		return
	}
	slides, err := h.uc.UpdateSliderImage(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slides})
}

// DeleteSliderImage handles DELETE /admin/slider/:id
func (h *AdminHandler) DeleteSliderImage(c *gin.Context) {
	slides, err := h.uc.DeleteSliderImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slides})
}
