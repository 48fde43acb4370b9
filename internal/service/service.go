package service

import (
	"context"
	"time"

	"itemshare-backend/internal/domain"
)

// BookingService is the booking lifecycle engine: creation rules, the
// WAITING->APPROVED/REJECTED state machine, the temporal classification
// views for booker and owner, and the completed-rental gate.
type BookingService interface {
	CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (*domain.Booking, error)
	ConfirmOrRejectBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error)
	GetBookingByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	GetBookingsForBooker(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error)
	GetBookingsForOwner(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error)
	// CheckCompletedRentalAuthorization returns a booking by this user for
	// this item that has already ended, regardless of status. Absence is a
	// validation failure naming both ids.
	CheckCompletedRentalAuthorization(ctx context.Context, userID, itemID int64) (*domain.Booking, error)
}

// RentalAuthorizer is the narrow view of the engine the comment flow needs.
type RentalAuthorizer interface {
	CheckCompletedRentalAuthorization(ctx context.Context, userID, itemID int64) (*domain.Booking, error)
}

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID int64, upd UserUpdate) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	DeleteUserByID(ctx context.Context, userID int64) error
	DeleteAllUsers(ctx context.Context) error
}

// UserUpdate carries the optional fields of a partial user update.
type UserUpdate struct {
	Name  *string
	Email *string
}

type ItemService interface {
	CreateItem(ctx context.Context, userID int64, item *domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID, itemID int64, upd ItemUpdate) (*domain.Item, error)
	GetItemByID(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error)
	GetAllItemsFromUser(ctx context.Context, userID int64) ([]domain.ItemDetails, error)
	SearchAvailableItems(ctx context.Context, text string) ([]domain.Item, error)
	DeleteItemByID(ctx context.Context, userID, itemID int64) error
	DeleteAllItems(ctx context.Context, userID int64) error
	CreateComment(ctx context.Context, authorID, itemID int64, text string) (*domain.Comment, error)
}

// ItemUpdate carries the optional fields of a partial item update.
type ItemUpdate struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemRequestService interface {
	CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error)
	GetOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	GetAllRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	GetRequestByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error)
}

type EmailService interface {
	SendBookingRequestedNotification(ctx context.Context, to, bookerName, itemName string) error
	SendBookingDecidedNotification(ctx context.Context, to, itemName string, approved bool) error
	SendUpcomingBookingReminder(ctx context.Context, to, itemName string, start time.Time) error
	SendPendingApprovalReminder(ctx context.Context, to, itemName, bookerName string) error
}
