package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/storekit/storefront-api/internal/core/domain"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// uniqueViolation is the SQLSTATE Postgres reports when an insert or update
// would break a unique constraint.
const uniqueViolation = "23505"

// UserRepository persists users in the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, int64, error) {
	opts := ListOptions{
		Search: filter.Search,
		Sort:   filter.Sort,
		Dir:    filter.Dir,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}

	sql, args, err := usersTable.SelectSQL(opts)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.City, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := usersTable.CountSQL(opts)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) Find(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, city, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.City, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, phone, city) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Name, u.Email, u.Phone, u.City,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, phone = $4, city = $5 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Phone, u.City,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrEmailTaken
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
