package booking

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingColumns = []string{"id", "class_id", "user_id", "client_name", "client_email"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		require.NoError(t, mock.ExpectationsWereMet())
		sqlxDB.Close()
	}
	return repo, mock, closer
}

func TestGetAvailableSlots(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT available_slots FROM fitness_classes WHERE id = ?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"available_slots"}).AddRow(3))

	slots, err := repo.GetAvailableSlots(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, slots)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT available_slots FROM fitness_classes WHERE id = ?")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"available_slots"}))

	_, err = repo.GetAvailableSlots(ctx, 99)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestUserHasBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS( SELECT 1 FROM bookings WHERE class_id = ? AND user_id = ? )")).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	booked, err := repo.UserHasBooking(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestDecrementSlots(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	ctx := context.Background()
	query := regexp.QuoteMeta("UPDATE fitness_classes SET available_slots = available_slots - 1 WHERE id = ? AND available_slots > 0")

	mock.ExpectExec(query).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	taken, err := repo.DecrementSlots(ctx, 1)
	require.NoError(t, err)
	assert.True(t, taken)

	mock.ExpectExec(query).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	taken, err = repo.DecrementSlots(ctx, 1)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestCreateBooking(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	ctx := context.Background()
	query := regexp.QuoteMeta("INSERT INTO bookings (class_id, user_id, client_name, client_email) VALUES (?, ?, ?, ?) RETURNING id, class_id, user_id, client_name, client_email")

	mock.ExpectQuery(query).
		WithArgs(1, 7, "Asha", "asha@example.com").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(10, 1, 7, "Asha", "asha@example.com"))

	b, err := repo.Create(ctx, 1, 7, "Asha", "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, &Booking{ID: 10, ClassID: 1, UserID: 7, ClientName: "Asha", ClientEmail: "asha@example.com"}, b)

	mock.ExpectQuery(query).
		WithArgs(1, 7, "Asha", "asha@example.com").
		WillReturnError(sqlite.Error{Code: sqlite.ErrConstraint, ExtendedCode: sqlite.ErrConstraintUnique})

	_, err = repo.Create(ctx, 1, 7, "Asha", "asha@example.com")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestListByUser(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, class_id, user_id, client_name, client_email FROM bookings WHERE user_id = ? ORDER BY id ASC")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(1, 1, 7, "Asha", "asha@example.com").
			AddRow(4, 2, 7, "Asha", "asha@example.com"))

	bookings, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 4, bookings[1].ID)
}
