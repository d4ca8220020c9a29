package fitnessclass

import (
	"context"
	"errors"
	"time"

	"fitbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("fitness class not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name string, dateTime time.Time, instructor string, availableSlots int) (*FitnessClass, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		INSERT INTO fitness_classes (name, date_time, instructor, available_slots)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, date_time, instructor, available_slots
	`

	var class FitnessClass
	err := exec.GetContext(ctx, &class, exec.Rebind(query), name, dateTime.UTC(), instructor, availableSlots)
	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *repository) List(ctx context.Context) ([]FitnessClass, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		SELECT id, name, date_time, instructor, available_slots
		FROM fitness_classes
		ORDER BY date_time ASC, id ASC
	`

	classes := []FitnessClass{}
	err := exec.SelectContext(ctx, &classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

// Delete removes the class; the schema cascades the delete to its bookings.
func (r *repository) Delete(ctx context.Context, id int) error {
	exec := db.Conn(ctx, r.db)

	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM fitness_classes WHERE id = ?`), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrClassNotFound
	}

	return nil
}
