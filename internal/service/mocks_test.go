package service_test

import (
	"context"
	"time"

	"itemshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) SearchAvailable(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) DeleteAllByOwner(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}
func (m *MockItemRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByBookerCurrent(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByBookerPast(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByBookerFuture(ctx context.Context, bookerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByBookerStatus(ctx context.Context, bookerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwnerCurrent(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwnerPast(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwnerFuture(ctx context.Context, ownerID int64, at time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwnerStatus(ctx context.Context, ownerID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetLastForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetNextForItem(ctx context.Context, itemID int64, at time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByBookerAndItemEndedBefore(ctx context.Context, bookerID, itemID int64, at time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, bookerID, itemID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockCommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockCommentRepo) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// MockItemRequestRepo
type MockItemRequestRepo struct {
	mock.Mock
}

func (m *MockItemRequestRepo) Create(ctx context.Context, request *domain.ItemRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}
func (m *MockItemRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestedNotification(ctx context.Context, to, bookerName, itemName string) error {
	args := m.Called(ctx, to, bookerName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDecidedNotification(ctx context.Context, to, itemName string, approved bool) error {
	args := m.Called(ctx, to, itemName, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendUpcomingBookingReminder(ctx context.Context, to, itemName string, start time.Time) error {
	args := m.Called(ctx, to, itemName, start)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingApprovalReminder(ctx context.Context, to, itemName, bookerName string) error {
	args := m.Called(ctx, to, itemName, bookerName)
	return args.Error(0)
}

// MockRentalAuthorizer
type MockRentalAuthorizer struct {
	mock.Mock
}

func (m *MockRentalAuthorizer) CheckCompletedRentalAuthorization(ctx context.Context, userID, itemID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
