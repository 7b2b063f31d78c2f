// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"beautyspa/models"
	"beautyspa/services/booking"
	"beautyspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session lifecycle over HTTP.
type BookingHandler struct {
	Sessions booking.BookingSessionService
	Logger   *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(sessions booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Logger: logger}
}

// statusForBookingError maps typed booking errors onto HTTP statuses. Unknown
// errors come back as 500.
func statusForBookingError(err error) int {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}
	switch be.Code {
	case "sessionNotFound":
		return http.StatusNotFound
	case "validation":
		return http.StatusBadRequest
	case "invalidStage", "staffUnavailable":
		return http.StatusConflict
	case "cooldown":
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	status := statusForBookingError(err)
	if status == http.StatusInternalServerError {
		h.Logger.Error("booking request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
	}
	utils.JSONError(c, status, err.Error())
}

// StartSession creates a new, empty booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Sessions.CreateSession(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the session snapshot, including any resolved staff list.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetSelection records the (service, date, slot) choice and resolves staff.
func (h *BookingHandler) SetSelection(c *gin.Context) {
	var input struct {
		ServiceID  string `json:"serviceId" binding:"required"`
		Date       string `json:"date" binding:"required"`
		TimeSlotID string `json:"timeSlotId" binding:"required"`
		Search     string `json:"search"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	session, err := h.Sessions.SetSelection(c.Request.Context(), c.Param("sessionID"), models.BookingSelection{
		ServiceID:  input.ServiceID,
		Date:       input.Date,
		TimeSlotID: input.TimeSlotID,
	}, input.Search)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ChooseStaff records the customer's staff pick.
func (h *BookingHandler) ChooseStaff(c *gin.Context) {
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	session, err := h.Sessions.ChooseStaff(c.Request.Context(), c.Param("sessionID"), input.StaffID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetCustomer records customer contact details.
func (h *BookingHandler) SetCustomer(c *gin.Context) {
	var input models.CustomerInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}
	session, err := h.Sessions.SetCustomer(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm persists the appointment and closes out the session.
func (h *BookingHandler) Confirm(c *gin.Context) {
	appt, err := h.Sessions.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelSession discards the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
