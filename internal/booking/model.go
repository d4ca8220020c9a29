package booking

type Booking struct {
	ID          int    `db:"id" json:"id"`
	ClassID     int    `db:"class_id" json:"class_id"`
	UserID      int    `db:"user_id" json:"user_id"`
	ClientName  string `db:"client_name" json:"client_name"`
	ClientEmail string `db:"client_email" json:"client_email"`
}

// CreateBookingRequest accepts any class_id; ids with no class answer 404.
type CreateBookingRequest struct {
	ClassID     *int   `json:"class_id" binding:"required" example:"1"`
	ClientName  string `json:"client_name" binding:"required" example:"Asha Rao"`
	ClientEmail string `json:"client_email" binding:"required,email" example:"asha@example.com"`
}
