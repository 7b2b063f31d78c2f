package models

// TimeSlot represents a bookable window of the salon day.
type TimeSlot struct {
	SlotID    string `bson:"slotId" json:"slotId"`
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM", 24-hour
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM", 24-hour
	IsActive  bool   `bson:"isActive" json:"isActive"`
	Capacity  int    `bson:"capacity" json:"capacity"` // parallel bookings the slot can hold
}

// SlotCapacity reports remaining capacity for a (date, service, slot) triple.
type SlotCapacity struct {
	AvailableSlot int `json:"availableSlot"`
	TotalSlot     int `json:"totalSlot"`
}
