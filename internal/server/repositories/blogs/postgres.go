// Package blogs provides the PostgreSQL-backed blog store and the filter
// composer for scoped queries. Every read and mutation is constrained by the
// full ownership tuple (blog id, user id, category id) inside a single
// statement, which is what makes concurrent update/delete safe without
// application-level locking.
package blogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements blog storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const blogColumns = `id, title, description, user_id, category_id, created_at`

func scanBlog(row *sql.Row) (*models.Blog, error) {
	blog := &models.Blog{}
	err := row.Scan(&blog.ID, &blog.Title, &blog.Description, &blog.UserID, &blog.CategoryID, &blog.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query := `
		INSERT INTO blogs (id, title, description, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + blogColumns

	blog.ID = uuid.NewString()
	return scanBlog(r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Description, blog.UserID, blog.CategoryID))
}

// FindOne fetches the single blog matching the filter's ownership tuple.
func (r *PostgresRepository) FindOne(ctx context.Context, f Filter) (*models.Blog, error) {
	where, args := f.predicate()
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE ` + where

	return scanBlog(r.db.QueryRowContext(ctx, query, args...))
}

// Select returns the requested page of blogs matching the filter, sorted by
// creation time ascending.
func (r *PostgresRepository) Select(ctx context.Context, f Filter) ([]models.Blog, error) {
	where, args := f.predicate()
	limit, offset := f.window()
	query := fmt.Sprintf(`SELECT %s FROM blogs WHERE %s ORDER BY created_at ASC LIMIT $%d OFFSET $%d`,
		blogColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Blog
	for rows.Next() {
		var item models.Blog
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.UserID, &item.CategoryID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the size of the full filtered set, using the same predicate
// as Select so the reported total always matches the paged collection.
func (r *PostgresRepository) Count(ctx context.Context, f Filter) (int64, error) {
	where, args := f.predicate()
	query := `SELECT count(*) FROM blogs WHERE ` + where

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

// UpdateOwned applies the new field values in one conditional statement keyed
// by the full ownership tuple. No matching row yields common.ErrorNotFound,
// whether the blog is absent or owned by someone else.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, userID, categoryID, title, description string) (*models.Blog, error) {
	query := `
		UPDATE blogs SET title = $4, description = $5
		WHERE id = $1 AND user_id = $2 AND category_id = $3
		RETURNING ` + blogColumns

	return scanBlog(r.db.QueryRowContext(ctx, query, id, userID, categoryID, title, description))
}

// DeleteOwned removes the blog keyed by the full ownership tuple and returns
// the prior state.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, userID, categoryID string) (*models.Blog, error) {
	query := `
		DELETE FROM blogs
		WHERE id = $1 AND user_id = $2 AND category_id = $3
		RETURNING ` + blogColumns

	return scanBlog(r.db.QueryRowContext(ctx, query, id, userID, categoryID))
}
