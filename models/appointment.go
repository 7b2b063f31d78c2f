package models

import "time"

// Appointment statuses follow the salon's lifecycle.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a persisted booking.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	FullName        string    `bson:"fullName" json:"fullName"`
	PhoneNumber     string    `bson:"phoneNumber" json:"phoneNumber"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	AppointmentDate time.Time `bson:"appointmentDate" json:"appointmentDate"`
	EndTime         time.Time `bson:"endTime" json:"endTime"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	ServiceName     string    `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	TimeSlotID      string    `bson:"timeSlotId" json:"timeSlotId"`
	StaffID         string    `bson:"staffId,omitempty" json:"staffId,omitempty"`
	BranchID        string    `bson:"branchId,omitempty" json:"branchId,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	Status          string    `bson:"status" json:"status"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
