package service

import (
	"context"
	"log/slog"
	"time"

	"itemshare-backend/internal/clock"
	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
	emailSvc    EmailService
	clk         clock.Clock
	log         *slog.Logger
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	emailSvc EmailService,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		emailSvc:    emailSvc,
		clk:         clk,
		log:         logger.WithService("booking"),
	}
}

// CreateBooking checks the booking window against a single reading of the
// clock, then the booker, the item, the self-booking rule and the
// availability flag, in that order. The first failing check wins and
// nothing is written.
func (s *bookingService) CreateBooking(ctx context.Context, userID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	now := s.clk.Now()
	if err := checkBookingWindow(start, end, now); err != nil {
		return nil, err
	}
	booker, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if userID == item.OwnerID {
		// NotFound rather than Forbidden: owners are not told their own
		// item is bookable-but-not-by-them.
		return nil, domain.NewNotFound("you cannot book your own item")
	}
	if !item.Available {
		return nil, domain.NewValidation("item with id %d is not available", itemID)
	}

	booking := &domain.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: userID,
		Status:   domain.BookingStatusWaiting,
		Item:     item,
		Booker:   booker,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking created", "booking_id", booking.ID, "item_id", itemID, "booker_id", userID)

	// Notify the owner. Mail failure never fails the booking.
	if owner, err := s.userRepo.GetByID(ctx, item.OwnerID); err == nil {
		_ = s.emailSvc.SendBookingRequestedNotification(ctx, owner.Email, booker.Name, item.Name)
	}

	return booking, nil
}

// ConfirmOrRejectBooking applies the single permitted transition
// WAITING -> APPROVED or WAITING -> REJECTED. Both are terminal.
func (s *bookingService) ConfirmOrRejectBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if userID != booking.OwnerID() {
		return nil, domain.NewForbidden("authorization failed")
	}
	if booking.Status != domain.BookingStatusWaiting {
		return nil, domain.NewValidation("booking with id %d is already decided", bookingID)
	}

	if approved {
		booking.Status = domain.BookingStatusApproved
	} else {
		booking.Status = domain.BookingStatusRejected
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking decided", "booking_id", bookingID, "status", booking.Status)

	_ = s.emailSvc.SendBookingDecidedNotification(ctx, booking.Booker.Email, booking.Item.Name, approved)

	return booking, nil
}

// GetBookingByID hides existence from non-participants: a caller who is
// neither the booker nor the item's owner gets the same NotFound a
// missing booking would produce.
func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if userID != booking.BookerID && userID != booking.OwnerID() {
		return nil, domain.NewNotFound("authorization failed")
	}
	return booking, nil
}

func (s *bookingService) GetBookingsForBooker(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	now := s.clk.Now()
	switch state {
	case domain.BookingStateAll:
		return s.bookingRepo.ListByBooker(ctx, userID)
	case domain.BookingStateCurrent:
		return s.bookingRepo.ListByBookerCurrent(ctx, userID, now)
	case domain.BookingStatePast:
		return s.bookingRepo.ListByBookerPast(ctx, userID, now)
	case domain.BookingStateFuture:
		return s.bookingRepo.ListByBookerFuture(ctx, userID, now)
	case domain.BookingStateWaiting:
		return s.bookingRepo.ListByBookerStatus(ctx, userID, domain.BookingStatusWaiting)
	case domain.BookingStateRejected:
		return s.bookingRepo.ListByBookerStatus(ctx, userID, domain.BookingStatusRejected)
	default:
		return nil, domain.NewUnsupportedState("Unknown state: %s", state)
	}
}

func (s *bookingService) GetBookingsForOwner(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	now := s.clk.Now()
	switch state {
	case domain.BookingStateAll:
		return s.bookingRepo.ListByOwner(ctx, userID)
	case domain.BookingStateCurrent:
		return s.bookingRepo.ListByOwnerCurrent(ctx, userID, now)
	case domain.BookingStatePast:
		return s.bookingRepo.ListByOwnerPast(ctx, userID, now)
	case domain.BookingStateFuture:
		return s.bookingRepo.ListByOwnerFuture(ctx, userID, now)
	case domain.BookingStateWaiting:
		return s.bookingRepo.ListByOwnerStatus(ctx, userID, domain.BookingStatusWaiting)
	case domain.BookingStateRejected:
		return s.bookingRepo.ListByOwnerStatus(ctx, userID, domain.BookingStatusRejected)
	default:
		return nil, domain.NewUnsupportedState("Unknown state: %s", state)
	}
}

// CheckCompletedRentalAuthorization gates commenting: any booking by this
// user for this item that ended before now qualifies, approved or not.
func (s *bookingService) CheckCompletedRentalAuthorization(ctx context.Context, userID, itemID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByBookerAndItemEndedBefore(ctx, userID, itemID, s.clk.Now())
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.NewValidation("no completed booking for booker %d and item %d", userID, itemID)
	}
	return booking, nil
}

// checkBookingWindow validates the requested interval against one fixed
// instant. The order of checks is observable through error messages and
// is part of the contract.
func checkBookingWindow(start, end, now time.Time) error {
	if end.Before(now) {
		return domain.NewValidation("end time cannot be before the current time")
	}
	if end.Before(start) {
		return domain.NewValidation("end time cannot be before the start time")
	}
	if start.Equal(end) {
		return domain.NewValidation("start time cannot equal the end time")
	}
	if start.Before(now) {
		return domain.NewValidation("start time cannot be before the current time")
	}
	return nil
}
