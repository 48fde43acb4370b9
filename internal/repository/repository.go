package repository

import (
	"context"
	"time"

	"itemshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	// SearchAvailable matches available items whose name or description
	// contains the text, case-insensitively.
	SearchAvailable(ctx context.Context, text string) ([]domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
	DeleteAllByOwner(ctx context.Context, ownerID int64) error
	DeleteAll(ctx context.Context) error
}

// BookingRepository persists bookings and answers the temporal and status
// queries the lifecycle engine depends on. Every list method returns
// bookings ordered by start descending; owner-view methods join through
// item ownership inside the adapter.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByID returns the booking with its item (including the item's
	// owner id) and booker attached.
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// Update writes the status decision conditionally on the booking
	// still being WAITING. When a concurrent decision got there first the
	// write matches nothing and Update fails with a ValidationError, so
	// a terminal status can never be overwritten.
	Update(ctx context.Context, booking *domain.Booking) error

	ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error)
	ListByBookerCurrent(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error)
	ListByBookerPast(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error)
	ListByBookerFuture(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error)
	ListByBookerStatus(ctx context.Context, bookerID int64, status domain.BookingStatus) ([]domain.Booking, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	ListByOwnerCurrent(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error)
	ListByOwnerPast(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error)
	ListByOwnerFuture(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error)
	ListByOwnerStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error)

	// GetLastForItem returns the booking for the item with the latest end
	// before the given instant, if any.
	GetLastForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error)
	// GetNextForItem returns the booking for the item with the earliest
	// start after the given instant, if any.
	GetNextForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error)
	// GetByBookerAndItemEndedBefore returns a booking by this booker for
	// this item that ended before the given instant. Used to gate comments.
	GetByBookerAndItemEndedBefore(ctx context.Context, bookerID, itemID int64, at time.Time) (*domain.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
}
