package schedule

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-studio/booking-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the availability query endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.GetSlots)
}

// RegisterStaffRoutes mounts the blocked-date management endpoints.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/blocked-dates", h.ListBlockedDates)
	rg.POST("/blocked-dates/toggle", h.ToggleBlockedDate)
}

// GetSlots returns the slot grid for a date. service_ids and addon_ids
// reflect the customer's in-progress selection; with no services chosen
// the grid still renders, with only point-in-time conflict checks.
func (h *Handler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "date is required"})
		return
	}

	slots, err := h.service.AvailableSlots(
		c.Request.Context(),
		date,
		splitIDs(c.Query("service_ids")),
		splitIDs(c.Query("addon_ids")),
	)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": slots})
}

func (h *Handler) ListBlockedDates(c *gin.Context) {
	dates, err := h.service.BlockedDates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": dates})
}

type toggleRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *Handler) ToggleBlockedDate(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	blocked, err := h.service.ToggleBlockedDate(c.Request.Context(), req.Date)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"date":    req.Date,
		"blocked": blocked,
	}})
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
