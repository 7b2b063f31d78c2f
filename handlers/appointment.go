// File: handlers/appointment.go
package handlers

import (
	"net/http"

	"beautyspa/services/appointment"
	"beautyspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves appointment lookups and cancellation.
type AppointmentHandler struct {
	Appointments appointment.AppointmentService
	Logger       *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Appointments: svc, Logger: logger}
}

// GetAppointment returns a single appointment by id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Appointments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListByStaff returns the appointments assigned to a staff member.
func (h *AppointmentHandler) ListByStaff(c *gin.Context) {
	appts, err := h.Appointments.ListByStaff(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		h.Logger.Error("failed to list staff appointments",
			zap.String("staffId", c.Param("staffId")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListByDay returns a day's schedule for the front desk.
func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	appts, err := h.Appointments.ListByDay(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CancelAppointment cancels an upcoming appointment with an optional reason.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a bare POST cancels without a reason.
	_ = c.ShouldBindJSON(&input)

	appt, err := h.Appointments.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}
