package booking

import (
	"context"
	"database/sql"
	"errors"

	"fitbook/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// GetAvailableSlots reads the remaining capacity of a class. On PostgreSQL
// the row stays locked until the surrounding transaction ends.
func (r *repository) GetAvailableSlots(ctx context.Context, classID int) (int, error) {
	exec := db.Conn(ctx, r.db)
	query := `SELECT available_slots FROM fitness_classes WHERE id = ?`
	if r.db.DriverName() == db.DriverPostgres {
		query += ` FOR UPDATE`
	}

	var slots int
	err := exec.GetContext(ctx, &slots, exec.Rebind(query), classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrClassNotFound
		}
		return 0, err
	}

	return slots, nil
}

func (r *repository) UserHasBooking(ctx context.Context, classID, userID int) (bool, error) {
	return db.Exists(ctx, db.Conn(ctx, r.db), `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE class_id = ? AND user_id = ?
		)
	`, classID, userID)
}

// DecrementSlots takes one slot and reports false when none was left.
func (r *repository) DecrementSlots(ctx context.Context, classID int) (bool, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		UPDATE fitness_classes
		SET available_slots = available_slots - 1
		WHERE id = ? AND available_slots > 0
	`

	result, err := exec.ExecContext(ctx, exec.Rebind(query), classID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

func (r *repository) Create(ctx context.Context, classID, userID int, clientName, clientEmail string) (*Booking, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		INSERT INTO bookings (class_id, user_id, client_name, client_email)
		VALUES (?, ?, ?, ?)
		RETURNING id, class_id, user_id, client_name, client_email
	`

	var booking Booking
	err := exec.GetContext(ctx, &booking, exec.Rebind(query), classID, userID, clientName, clientEmail)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyBooked
		}
		return nil, err
	}

	return &booking, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		SELECT id, class_id, user_id, client_name, client_email
		FROM bookings
		WHERE user_id = ?
		ORDER BY id ASC
	`

	bookings := []Booking{}
	err := exec.SelectContext(ctx, &bookings, exec.Rebind(query), userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
