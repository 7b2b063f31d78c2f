// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"beautyspa/services/catalog"
	"beautyspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public service and time-slot listings.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(cat catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

// ListServices returns the active service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.GetServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListTimeSlots returns the active time slots in start-time order.
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.Catalog.GetTimeSlots(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list time slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list time slots")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SlotCapacity reports remaining bookable capacity for a slot on a day.
func (h *CatalogHandler) SlotCapacity(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	timeSlotID := c.Query("timeSlotId")
	if date == "" || timeSlotID == "" {
		utils.JSONError(c, http.StatusBadRequest, "date and timeSlotId query parameters are required")
		return
	}
	capacity, err := h.Catalog.GetSlotCapacity(c.Request.Context(), date, serviceID, timeSlotID)
	if err != nil {
		h.Logger.Error("failed to compute slot capacity",
			zap.String("date", date), zap.String("timeSlotId", timeSlotID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute slot capacity")
		return
	}
	c.JSON(http.StatusOK, capacity)
}
