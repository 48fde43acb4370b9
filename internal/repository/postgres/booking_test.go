package postgres_test

import (
	"context"
	"testing"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var bookingCols = []string{
	"booking_id", "start_ts", "end_ts", "status",
	"item_id", "name", "description", "available", "owner_id", "request_id",
	"user_id", "name", "email",
}

func bookingRow(rows *sqlmock.Rows, id int64, start, end time.Time, status string) *sqlmock.Rows {
	return rows.AddRow(id, start, end, status,
		2, "Drill", "cordless", true, 10, nil,
		1, "Renter", "renter@test.com")
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Joins item and booker", func(t *testing.T) {
		rows := bookingRow(sqlmock.NewRows(bookingCols), 5, now, now.Add(time.Hour), "WAITING")
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booking_id = \\$1").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		b, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), b.ID)
		assert.Equal(t, domain.BookingStatusWaiting, b.Status)
		assert.Equal(t, int64(2), b.ItemID)
		assert.Equal(t, int64(1), b.BookerID)
		assert.Equal(t, int64(10), b.OwnerID())
	})

	t.Run("Absent booking maps to NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booking_id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		b, err := repo.GetByID(ctx, 99)
		assert.Nil(t, b)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	b := &domain.Booking{
		Start:    now.Add(time.Hour),
		End:      now.Add(2 * time.Hour),
		ItemID:   2,
		BookerID: 1,
		Status:   domain.BookingStatusWaiting,
	}

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(7))

	err = repo.Create(ctx, b)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Flips the status while still waiting", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE booking_id = \\$2 AND status = \\$3").
			WithArgs(domain.BookingStatusApproved, int64(7), domain.BookingStatusWaiting).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Booking{ID: 7, Status: domain.BookingStatusApproved})
		assert.NoError(t, err)
	})

	t.Run("Concurrent decision that lost the row fails validation", func(t *testing.T) {
		// The conditional WHERE is the serialization point: a writer that
		// finds the booking no longer WAITING matches 0 rows and must not
		// overwrite the terminal status.
		mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE booking_id = \\$2 AND status = \\$3").
			WithArgs(domain.BookingStatusRejected, int64(7), domain.BookingStatusWaiting).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Booking{ID: 7, Status: domain.BookingStatusRejected})
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "already decided")
	})
}

func TestBookingRepository_ListByBooker(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Orders by start descending", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingCols)
		bookingRow(rows, 2, now.Add(3*time.Hour), now.Add(4*time.Hour), "WAITING")
		bookingRow(rows, 1, now.Add(time.Hour), now.Add(2*time.Hour), "APPROVED")

		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booker_id = \\$1 ORDER BY b.start_ts DESC").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		bookings, err := repo.ListByBooker(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, int64(2), bookings[0].ID)
		assert.Equal(t, int64(1), bookings[1].ID)
	})

	t.Run("Current uses strict bounds around the instant", func(t *testing.T) {
		// The strict < and > in the matched SQL are the boundary contract:
		// a booking whose start or end equals the query instant is in
		// neither CURRENT nor PAST nor FUTURE. Postgres evaluates the
		// comparison; this pins the predicate the engine ships to it.
		rows := bookingRow(sqlmock.NewRows(bookingCols), 3, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
		mock.ExpectQuery("WHERE b.booker_id = \\$1 AND b.start_ts < \\$2 AND b.end_ts > \\$2 ORDER BY b.start_ts DESC").
			WithArgs(int64(1), now).
			WillReturnRows(rows)

		bookings, err := repo.ListByBookerCurrent(ctx, 1, now)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("Status filter", func(t *testing.T) {
		rows := bookingRow(sqlmock.NewRows(bookingCols), 4, now, now.Add(time.Hour), "REJECTED")
		mock.ExpectQuery("WHERE b.booker_id = \\$1 AND b.status = \\$2 ORDER BY b.start_ts DESC").
			WithArgs(int64(1), domain.BookingStatusRejected).
			WillReturnRows(rows)

		bookings, err := repo.ListByBookerStatus(ctx, 1, domain.BookingStatusRejected)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, domain.BookingStatusRejected, bookings[0].Status)
	})
}

func TestBookingRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	// Ownership is resolved through the joined item, not a booking column.
	rows := bookingRow(sqlmock.NewRows(bookingCols), 6, now, now.Add(time.Hour), "WAITING")
	mock.ExpectQuery("WHERE i.owner_id = \\$1 ORDER BY b.start_ts DESC").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	bookings, err := repo.ListByOwner(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, int64(10), bookings[0].OwnerID())
}

func TestBookingRepository_AdjacentAndGateQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("GetLastForItem returns nil without error when absent", func(t *testing.T) {
		mock.ExpectQuery("WHERE b.item_id = \\$1 AND b.end_ts < \\$2 ORDER BY b.end_ts DESC LIMIT 1").
			WithArgs(int64(2), now).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		b, err := repo.GetLastForItem(ctx, 2, now)
		assert.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("GetNextForItem picks the earliest future start", func(t *testing.T) {
		rows := bookingRow(sqlmock.NewRows(bookingCols), 8, now.Add(time.Hour), now.Add(2*time.Hour), "APPROVED")
		mock.ExpectQuery("WHERE b.item_id = \\$1 AND b.start_ts > \\$2 ORDER BY b.start_ts ASC LIMIT 1").
			WithArgs(int64(2), now).
			WillReturnRows(rows)

		b, err := repo.GetNextForItem(ctx, 2, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(8), b.ID)
	})

	t.Run("Gate lookup matches any ended booking regardless of status", func(t *testing.T) {
		rows := bookingRow(sqlmock.NewRows(bookingCols), 9, now.Add(-2*time.Hour), now.Add(-time.Hour), "REJECTED")
		mock.ExpectQuery("WHERE b.booker_id = \\$1 AND b.item_id = \\$2 AND b.end_ts < \\$3 LIMIT 1").
			WithArgs(int64(1), int64(2), now).
			WillReturnRows(rows)

		b, err := repo.GetByBookerAndItemEndedBefore(ctx, 1, 2, now)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, b.Status)
	})

	t.Run("Gate lookup absence is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery("WHERE b.booker_id = \\$1 AND b.item_id = \\$2 AND b.end_ts < \\$3 LIMIT 1").
			WithArgs(int64(1), int64(2), now).
			WillReturnRows(sqlmock.NewRows(bookingCols))

		b, err := repo.GetByBookerAndItemEndedBefore(ctx, 1, 2, now)
		assert.NoError(t, err)
		assert.Nil(t, b)
	})
}
