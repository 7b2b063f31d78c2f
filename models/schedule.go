package models

// WorkSchedule is a staff member's planned work entry for a day.
// Shift is free text maintained by managers ("Morning", "ca sáng", "full"...).
type WorkSchedule struct {
	UserID   string `bson:"userId" json:"userId"`
	WorkDate string `bson:"workDate" json:"workDate"` // "2006-01-02" or a full timestamp
	Shift    string `bson:"shift" json:"shift"`
	IsActive bool   `bson:"isActive" json:"isActive"`
	Status   string `bson:"status" json:"status"` // "scheduled", "completed", ...
}
