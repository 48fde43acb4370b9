package service

import (
	"context"
	"log/slog"

	"itemshare-backend/internal/clock"
	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
	clk         clock.Clock
	log         *slog.Logger
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	clk clock.Clock,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		clk:         clk,
		log:         logger.WithService("request"),
	}
}

func (s *itemRequestService) CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	request := &domain.ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     s.clk.Now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	s.log.Info("item request created", "request_id", request.ID, "requestor_id", userID)
	return request, nil
}

func (s *itemRequestService) GetOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *itemRequestService) GetAllRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByOtherRequestors(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *itemRequestService) GetRequestByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByRequestIDs(ctx, []int64{requestID})
	if err != nil {
		return nil, err
	}
	request.Items = items
	return request, nil
}

// attachItems fills each request with the items created in answer to it,
// using a single batched lookup.
func (s *itemRequestService) attachItems(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequest, error) {
	if len(requests) == 0 {
		return []domain.ItemRequest{}, nil
	}
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	items, err := s.itemRepo.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]domain.Item)
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}
	for i := range requests {
		requests[i].Items = byRequest[requests[i].ID]
		if requests[i].Items == nil {
			requests[i].Items = []domain.Item{}
		}
	}
	return requests, nil
}
