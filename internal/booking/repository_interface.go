package booking

import "context"

type Repository interface {
	GetAvailableSlots(ctx context.Context, classID int) (int, error)
	UserHasBooking(ctx context.Context, classID, userID int) (bool, error)
	DecrementSlots(ctx context.Context, classID int) (bool, error)
	Create(ctx context.Context, classID, userID int, clientName, clientEmail string) (*Booking, error)
	ListByUser(ctx context.Context, userID int) ([]Booking, error)
}
