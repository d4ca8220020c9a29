package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, hashedPassword string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int) error
}
