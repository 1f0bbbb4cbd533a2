package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// ProductRepository persists products in the products table. Every statement
// projects explicit columns and binds every value; list queries are built by
// the productsTable spec.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, int64, error) {
	opts := ListOptions{
		Search:    filter.Search,
		FilterCol: "category",
		FilterVal: filter.Category,
		Sort:      filter.Sort,
		Dir:       filter.Dir,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}

	sql, args, err := productsTable.SelectSQL(opts)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := productsTable.CountSQL(opts)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) Find(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, price, category, created_at FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products (title, description, price, category) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Title, p.Description, p.Price, p.Category,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET title = $2, description = $3, price = $4, category = $5 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Price, p.Category,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
