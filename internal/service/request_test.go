package service_test

import (
	"context"
	"testing"
	"time"

	"itemshare-backend/internal/clock"
	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRequestFixture() (*MockItemRequestRepo, *MockUserRepo, *MockItemRepo, time.Time, service.ItemRequestService) {
	requestRepo := new(MockItemRequestRepo)
	userRepo := new(MockUserRepo)
	itemRepo := new(MockItemRepo)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := service.NewItemRequestService(requestRepo, userRepo, itemRepo, clock.Fixed{Instant: now})
	return requestRepo, userRepo, itemRepo, now, svc
}

func TestItemRequestService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)

	requestRepo, userRepo, _, now, svc := newRequestFixture()
	userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID}, nil)
	requestRepo.On("Create", ctx, mock.AnythingOfType("*domain.ItemRequest")).Return(nil)

	res, err := svc.CreateRequest(ctx, userID, "need a ladder")
	assert.NoError(t, err)
	assert.Equal(t, "need a ladder", res.Description)
	assert.Equal(t, userID, res.RequestorID)
	assert.Equal(t, now, res.Created)
}

func TestItemRequestService_GetOwnRequests(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)

	t.Run("Items are grouped onto their requests", func(t *testing.T) {
		requestRepo, userRepo, itemRepo, _, svc := newRequestFixture()
		reqA := int64(4)
		reqB := int64(5)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID}, nil)
		requestRepo.On("ListByRequestor", ctx, userID).Return([]domain.ItemRequest{
			{ID: reqA, RequestorID: userID},
			{ID: reqB, RequestorID: userID},
		}, nil)
		itemRepo.On("ListByRequestIDs", ctx, []int64{reqA, reqB}).Return([]domain.Item{
			{ID: 1, RequestID: &reqA},
			{ID: 2, RequestID: &reqA},
		}, nil)

		res, err := svc.GetOwnRequests(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Len(t, res[0].Items, 2)
		assert.Empty(t, res[1].Items)
		assert.NotNil(t, res[1].Items)
	})

	t.Run("No requests means no item lookup", func(t *testing.T) {
		requestRepo, userRepo, itemRepo, _, svc := newRequestFixture()
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID}, nil)
		requestRepo.On("ListByRequestor", ctx, userID).Return([]domain.ItemRequest{}, nil)

		res, err := svc.GetOwnRequests(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, res)
		itemRepo.AssertNotCalled(t, "ListByRequestIDs", mock.Anything, mock.Anything)
	})
}

func TestItemRequestService_GetAllRequests(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)

	requestRepo, userRepo, itemRepo, _, svc := newRequestFixture()
	reqID := int64(9)
	userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID}, nil)
	// Only requests from other users come back.
	requestRepo.On("ListByOtherRequestors", ctx, userID).Return([]domain.ItemRequest{
		{ID: reqID, RequestorID: 2},
	}, nil)
	itemRepo.On("ListByRequestIDs", ctx, []int64{reqID}).Return([]domain.Item{}, nil)

	res, err := svc.GetAllRequests(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].RequestorID)
}
