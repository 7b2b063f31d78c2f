package models

import "time"

// SessionStage tracks where a customer is in the booking flow.
type SessionStage string

const (
	StageNoSelection    SessionStage = "noSelection"
	StageSelectionMade  SessionStage = "serviceDateTimeChosen"
	StageResolving      SessionStage = "staffListResolving"
	StageStaffListReady SessionStage = "staffListReady"
	StageStaffChosen    SessionStage = "staffChosen"
	StageCustomerInfo   SessionStage = "customerInfoEntered"
	StageConfirmed      SessionStage = "confirmed"
)

// BookingSelection is the customer's (service, date, time slot) choice.
type BookingSelection struct {
	ServiceID  string `json:"serviceId"`
	Date       string `json:"date"` // "2006-01-02"
	TimeSlotID string `json:"timeSlotId"`
}

// CustomerInfo carries the identity fields required before confirmation.
type CustomerInfo struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Notes       string `json:"notes,omitempty"`
}

// BookingSession holds context between selection, staff resolution and final
// confirmation. Stored in Redis with a TTL.
type BookingSession struct {
	SessionID string            `json:"sessionId"`
	Stage     SessionStage      `json:"stage"`
	Selection *BookingSelection `json:"selection,omitempty"`
	// ResolutionSeq identifies the most recently initiated resolution pass;
	// passes finishing out of order must not clobber a newer one.
	ResolutionSeq   uint64           `json:"resolutionSeq"`
	Resolution      *StaffResolution `json:"resolution,omitempty"`
	Capacity        *SlotCapacity    `json:"capacity,omitempty"`
	SelectedStaffID string           `json:"selectedStaffId,omitempty"`
	Customer        *CustomerInfo    `json:"customer,omitempty"`
	AppointmentID   string           `json:"appointmentId,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
