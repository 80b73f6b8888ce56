package repository

import (
	"context"
	"event-ticketing/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	// ListWithActiveEvents 只回傳至少有一個 active 活動的分類
	ListWithActiveEvents(ctx context.Context) ([]*model.Category, error)
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*model.Category, error) {
	return r.query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
}

func (r *CategoryRepositoryImpl) ListWithActiveEvents(ctx context.Context) ([]*model.Category, error) {
	return r.query(ctx, `
		SELECT c.id, c.name
		FROM categories c
		WHERE EXISTS (
			SELECT 1 FROM events e
			WHERE e.category_id = c.id AND e.status = 'active'
		)
		ORDER BY c.name ASC
	`)
}

func (r *CategoryRepositoryImpl) query(ctx context.Context, query string) ([]*model.Category, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
