package postgres

import (
	"context"
	"database/sql"
	"errors"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

type itemRequestRepository struct {
	db *sql.DB
}

func NewItemRequestRepository(db *sql.DB) repository.ItemRequestRepository {
	return &itemRequestRepository{db: db}
}

func (r *itemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO item_requests (description, requestor_id, created_on)
	          VALUES ($1, $2, $3) RETURNING request_id`
	return r.db.QueryRowContext(ctx, query, req.Description, req.RequestorID, req.Created).Scan(&req.ID)
}

func (r *itemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT request_id, description, requestor_id, created_on FROM item_requests WHERE request_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("item request with id %d does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *itemRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	query := `SELECT request_id, description, requestor_id, created_on
	          FROM item_requests WHERE requestor_id = $1 ORDER BY created_on DESC`
	return r.queryRequests(ctx, query, requestorID)
}

func (r *itemRequestRepository) ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	query := `SELECT request_id, description, requestor_id, created_on
	          FROM item_requests WHERE requestor_id <> $1 ORDER BY created_on DESC`
	return r.queryRequests(ctx, query, requestorID)
}

func (r *itemRequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]domain.ItemRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
