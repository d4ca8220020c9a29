package user

import (
	"context"
	"database/sql"
	"errors"

	"fitbook/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, email, hashedPassword string) (*User, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		INSERT INTO users (name, email, hashed_password)
		VALUES (?, ?, ?)
		RETURNING id, name, email, hashed_password
	`

	var user User
	err := exec.GetContext(ctx, &user, exec.Rebind(query), name, email, hashedPassword)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		SELECT id, name, email, hashed_password
		FROM users
		WHERE email = ?
	`

	var user User
	err := exec.GetContext(ctx, &user, exec.Rebind(query), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	exec := db.Conn(ctx, r.db)
	query := `
		SELECT id, name, email, hashed_password
		FROM users
		WHERE id = ?
	`

	var user User
	err := exec.GetContext(ctx, &user, exec.Rebind(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, db.Conn(ctx, r.db), `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email)
}

// Delete removes the user; the schema cascades the delete to its bookings.
func (r *repository) Delete(ctx context.Context, id int) error {
	exec := db.Conn(ctx, r.db)

	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
