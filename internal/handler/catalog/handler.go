package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-studio/booking-api/internal/service/catalog"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
}

func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.catalog.List()})
}
