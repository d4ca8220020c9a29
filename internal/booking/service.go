package booking

import (
	"context"
	"errors"
	"fmt"

	"fitbook/internal/db"
	"fitbook/internal/metrics"
)

var (
	ErrClassNotFound = errors.New("fitness class not found")
	ErrNoSlots       = errors.New("no slots available")
	ErrAlreadyBooked = errors.New("class already booked by this user")
)

type Service interface {
	Book(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error)
	ListForUser(ctx context.Context, userID int) ([]Booking, error)
}

type service struct {
	repo Repository
	tx   db.Transactor
}

func NewService(repo Repository, tx db.Transactor) Service {
	return &service{
		repo: repo,
		tx:   tx,
	}
}

// Book reserves one slot of the class for userID. The slot check, duplicate
// check, decrement and insert share one write transaction.
func (s *service) Book(ctx context.Context, userID int, req CreateBookingRequest) (*Booking, error) {
	classID := *req.ClassID
	var booking *Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		slots, err := s.repo.GetAvailableSlots(ctx, classID)
		if err != nil {
			return err
		}
		if slots <= 0 {
			return ErrNoSlots
		}

		booked, err := s.repo.UserHasBooking(ctx, classID, userID)
		if err != nil {
			return fmt.Errorf("failed to check existing booking: %w", err)
		}
		if booked {
			return ErrAlreadyBooked
		}

		taken, err := s.repo.DecrementSlots(ctx, classID)
		if err != nil {
			return fmt.Errorf("failed to decrement slots: %w", err)
		}
		if !taken {
			return ErrNoSlots
		}

		booking, err = s.repo.Create(ctx, classID, userID, req.ClientName, req.ClientEmail)
		return err
	})

	metrics.RecordBooking(outcome(err))
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *service) ListForUser(ctx context.Context, userID int) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrClassNotFound):
		return "class_not_found"
	case errors.Is(err, ErrNoSlots):
		return "no_slots"
	case errors.Is(err, ErrAlreadyBooked):
		return "duplicate"
	default:
		return "error"
	}
}
