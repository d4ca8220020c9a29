package fitnessclass

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name string, dateTime time.Time, instructor string, availableSlots int) (*FitnessClass, error)
	List(ctx context.Context) ([]FitnessClass, error)
	Delete(ctx context.Context, id int) error
}
