package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// bookingColumns joins the booked item (with its owner id) and the booker
// so callers can derive ownership without extra lookups.
const bookingColumns = `b.booking_id, b.start_ts, b.end_ts, b.status,
	       i.item_id, i.name, i.description, i.available, i.owner_id, i.request_id,
	       u.user_id, u.name, u.email`

const bookingFrom = ` FROM bookings b
	          JOIN items i ON i.item_id = b.item_id
	          JOIN users u ON u.user_id = b.booker_id`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (start_ts, end_ts, item_id, booker_id, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING booking_id`
	return r.db.QueryRowContext(ctx, query, b.Start, b.End, b.ItemID, b.BookerID, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + ` WHERE b.booking_id = $1`
	b, err := r.queryBooking(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NewNotFound("booking with id %d does not exist", id)
	}
	return b, nil
}

// Update persists the status decision. The WHERE clause matches the row
// only while it is still WAITING, so concurrent decisions on the same
// booking serialize at the database: exactly one writer flips the status,
// the loser matches 0 rows and fails validation.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status = $1 WHERE booking_id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, b.Status, b.ID, domain.BookingStatusWaiting)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewValidation("booking with id %d is already decided", b.ID)
	}
	return nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID)
}

func (r *bookingRepository) ListByBookerCurrent(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 AND b.start_ts < $2 AND b.end_ts > $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID, at)
}

func (r *bookingRepository) ListByBookerPast(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 AND b.end_ts < $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID, at)
}

func (r *bookingRepository) ListByBookerFuture(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 AND b.start_ts > $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID, at)
}

func (r *bookingRepository) ListByBookerStatus(ctx context.Context, bookerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 AND b.status = $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, bookerID, status)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE i.owner_id = $1 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID)
}

func (r *bookingRepository) ListByOwnerCurrent(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE i.owner_id = $1 AND b.start_ts < $2 AND b.end_ts > $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID, at)
}

func (r *bookingRepository) ListByOwnerPast(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE i.owner_id = $1 AND b.end_ts < $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID, at)
}

func (r *bookingRepository) ListByOwnerFuture(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE i.owner_id = $1 AND b.start_ts > $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID, at)
}

func (r *bookingRepository) ListByOwnerStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE i.owner_id = $1 AND b.status = $2 ORDER BY b.start_ts DESC`
	return r.queryBookings(ctx, query, ownerID, status)
}

func (r *bookingRepository) GetLastForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.item_id = $1 AND b.end_ts < $2 ORDER BY b.end_ts DESC LIMIT 1`
	return r.queryBooking(ctx, query, itemID, at)
}

func (r *bookingRepository) GetNextForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.item_id = $1 AND b.start_ts > $2 ORDER BY b.start_ts ASC LIMIT 1`
	return r.queryBooking(ctx, query, itemID, at)
}

func (r *bookingRepository) GetByBookerAndItemEndedBefore(ctx context.Context, bookerID, itemID int64, at time.Time) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingFrom + `
	          WHERE b.booker_id = $1 AND b.item_id = $2 AND b.end_ts < $3 LIMIT 1`
	return r.queryBooking(ctx, query, bookerID, itemID, at)
}

// queryBooking returns nil, nil when no row matches; callers decide
// whether absence is an error.
func (r *bookingRepository) queryBooking(ctx context.Context, query string, args ...interface{}) (*domain.Booking, error) {
	b := &domain.Booking{Item: &domain.Item{}, Booker: &domain.User{}}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.ItemID = b.Item.ID
	b.BookerID = b.Booker.ID
	return b, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{Item: &domain.Item{}, Booker: &domain.User{}}
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status,
			&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
			&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
		); err != nil {
			return nil, err
		}
		b.ItemID = b.Item.ID
		b.BookerID = b.Booker.ID
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
