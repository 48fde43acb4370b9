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

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	authorizer  RentalAuthorizer
	clk         clock.Clock
	log         *slog.Logger
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	authorizer RentalAuthorizer,
	clk clock.Clock,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		authorizer:  authorizer,
		clk:         clk,
		log:         logger.WithService("item"),
	}
}

func (s *itemService) CreateItem(ctx context.Context, userID int64, item *domain.Item) (*domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	item.OwnerID = userID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info("item created", "item_id", item.ID, "owner_id", userID)
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, userID, itemID int64, upd ItemUpdate) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(userID, item); err != nil {
		return nil, err
	}
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Available != nil {
		item.Available = *upd.Available
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.log.Info("item updated", "item_id", itemID)
	return item, nil
}

// GetItemByID attaches comments for everyone, and the adjacent bookings
// only when the requester owns the item.
func (s *itemService) GetItemByID(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	details := &domain.ItemDetails{Item: *item}
	if item.OwnerID == userID {
		if err := s.attachAdjacentBookings(ctx, details, s.clk.Now()); err != nil {
			return nil, err
		}
	}
	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	details.Comments = comments
	return details, nil
}

func (s *itemService) GetAllItemsFromUser(ctx context.Context, userID int64) ([]domain.ItemDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.clk.Now()
	result := make([]domain.ItemDetails, 0, len(items))
	for _, item := range items {
		details := domain.ItemDetails{Item: item}
		if err := s.attachAdjacentBookings(ctx, &details, now); err != nil {
			return nil, err
		}
		comments, err := s.commentRepo.ListByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		details.Comments = comments
		result = append(result, details)
	}
	return result, nil
}

func (s *itemService) SearchAvailableItems(ctx context.Context, text string) ([]domain.Item, error) {
	if text == "" {
		s.log.Warn("empty search text")
		return []domain.Item{}, nil
	}
	return s.itemRepo.SearchAvailable(ctx, text)
}

func (s *itemService) DeleteItemByID(ctx context.Context, userID, itemID int64) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.checkOwner(userID, item); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}
	s.log.Info("item deleted", "item_id", itemID, "owner_id", userID)
	return nil
}

func (s *itemService) DeleteAllItems(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.itemRepo.DeleteAllByOwner(ctx, userID)
}

// CreateComment persists a comment only when the author has a booking for
// the item that already ended; the gate decides that.
func (s *itemService) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*domain.Comment, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	if _, err := s.authorizer.CheckCompletedRentalAuthorization(ctx, authorID, itemID); err != nil {
		return nil, err
	}
	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    s.clk.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.log.Info("comment created", "comment_id", comment.ID, "item_id", itemID, "author_id", authorID)
	return comment, nil
}

func (s *itemService) checkOwner(userID int64, item *domain.Item) error {
	if userID != item.OwnerID {
		return domain.NewForbidden("authorization failed")
	}
	return nil
}

func (s *itemService) attachAdjacentBookings(ctx context.Context, details *domain.ItemDetails, now time.Time) error {
	last, err := s.bookingRepo.GetLastForItem(ctx, details.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookingRepo.GetNextForItem(ctx, details.ID, now)
	if err != nil {
		return err
	}
	details.LastBooking = last
	details.NextBooking = next
	return nil
}
