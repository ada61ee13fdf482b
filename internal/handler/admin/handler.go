package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-studio/booking-api/internal/repository"
	"github.com/velora-studio/booking-api/internal/service/stats"
)

type Handler struct {
	bookings  repository.BookingRepository
	customers repository.CustomerRepository
	stats     *stats.Service
}

func NewHandler(bookings repository.BookingRepository, customers repository.CustomerRepository, statsSvc *stats.Service) *Handler {
	return &Handler{bookings: bookings, customers: customers, stats: statsSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/dashboard", h.Dashboard)
	rg.GET("/admin/customers", h.ListCustomers)
}

func (h *Handler) Dashboard(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), nil)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   h.stats.Dashboard(bookings, time.Now()),
	})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": customers})
}
