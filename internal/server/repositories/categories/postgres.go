// Package categories provides the PostgreSQL-backed category store. Mutations
// are keyed by the (id, user_id) ownership pair in a single statement, so a
// category owned by another user is indistinguishable from an absent one.
package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements category storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const categoryColumns = `id, title, user_id, created_at`

func scanCategory(row *sql.Row) (*models.Category, error) {
	category := &models.Category{}
	err := row.Scan(&category.ID, &category.Title, &category.UserID, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return category, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (id, title, user_id)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns

	category.ID = uuid.NewString()
	return scanCategory(r.db.QueryRowContext(ctx, query,
		category.ID, category.Title, category.UserID))
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var item models.Category
		if err := rows.Scan(&item.ID, &item.Title, &item.UserID, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.db.QueryRowContext(ctx, query, id))
}

// UpdateOwned retitles the category in one conditional statement keyed by the
// ownership pair. No matching row yields common.ErrorNotFound.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, id, userID, title string) (*models.Category, error) {
	query := `
		UPDATE categories SET title = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + categoryColumns

	return scanCategory(r.db.QueryRowContext(ctx, query, id, userID, title))
}

// DeleteOwned removes the category keyed by the ownership pair and returns the
// prior state. A category that still has blogs trips the RESTRICT constraint
// and surfaces as common.ErrorHasDependents.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, userID string) (*models.Category, error) {
	query := `
		DELETE FROM categories
		WHERE id = $1 AND user_id = $2
		RETURNING ` + categoryColumns

	deleted, err := scanCategory(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, common.ErrorHasDependents
		}
		return nil, err
	}
	return deleted, nil
}
