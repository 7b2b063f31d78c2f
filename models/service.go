package models

// Service is a bookable spa service from the catalog.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL        string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive        bool    `bson:"isActive" json:"isActive"`
}
