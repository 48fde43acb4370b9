package postgres

import (
	"context"
	"database/sql"
	"errors"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING item_id`
	return r.db.QueryRowContext(ctx, query, it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT item_id, name, description, available, owner_id, request_id FROM items WHERE item_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("item with id %d does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3 WHERE item_id = $4`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	query := `SELECT item_id, name, description, available, owner_id, request_id
	          FROM items WHERE owner_id = $1 ORDER BY item_id`
	return r.queryItems(ctx, query, ownerID)
}

func (r *itemRepository) SearchAvailable(ctx context.Context, text string) ([]domain.Item, error) {
	query := `SELECT item_id, name, description, available, owner_id, request_id
	          FROM items
	          WHERE available = TRUE AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	          ORDER BY item_id`
	return r.queryItems(ctx, query, text)
}

func (r *itemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	query := `SELECT item_id, name, description, available, owner_id, request_id
	          FROM items WHERE request_id = ANY($1) ORDER BY item_id`
	return r.queryItems(ctx, query, pq.Array(requestIDs))
}

func (r *itemRepository) DeleteAllByOwner(ctx context.Context, ownerID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE owner_id = $1`, ownerID)
	return err
}

func (r *itemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items`)
	return err
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
