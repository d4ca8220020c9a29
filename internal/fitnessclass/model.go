package fitnessclass

import "time"

type FitnessClass struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	DateTime       time.Time `db:"date_time" json:"dateTime"`
	Instructor     string    `db:"instructor" json:"instructor"`
	AvailableSlots int       `db:"available_slots" json:"availableSlots"`
}

// CreateClassRequest carries dateTime as wall-clock time in the display zone,
// e.g. "2024-05-01T10:00:00".
type CreateClassRequest struct {
	Name           string `json:"name" binding:"required"`
	DateTime       string `json:"dateTime" binding:"required" example:"2024-05-01T10:00:00"`
	Instructor     string `json:"instructor" binding:"required"`
	AvailableSlots *int   `json:"availableSlots" binding:"required,gte=0"`
}
