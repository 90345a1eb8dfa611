package categories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "user_id", "created_at"}).
		AddRow("c-1", "Tech", "u-1", time.Now())
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT INTO categories \(id, title, user_id\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING\s+.+$`

	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "Tech", "u-1").
		WillReturnRows(categoryRows())

	got, err := repo.Create(context.Background(), &models.Category{Title: "Tech", UserID: "u-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "c-1" || got.UserID != "u-1" {
		t.Fatalf("unexpected category: %+v", got)
	}
}

func TestListByUser_Scoped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM categories WHERE user_id = \$1 ORDER BY created_at ASC`).
		WithArgs("u-1").
		WillReturnRows(categoryRows())

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdateOwned_TupleMiss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE categories SET title = \$3\s+WHERE id = \$1 AND user_id = \$2\s+RETURNING`).
		WithArgs("c-1", "u-2", "New").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateOwned(context.Background(), "c-1", "u-2", "New")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteOwned_RestrictedByBlogs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`DELETE FROM categories\s+WHERE id = \$1 AND user_id = \$2\s+RETURNING`).
		WithArgs("c-1", "u-1").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.DeleteOwned(context.Background(), "c-1", "u-1")
	if !errors.Is(err, common.ErrorHasDependents) {
		t.Fatalf("want common.ErrorHasDependents, got %v", err)
	}
}

func TestDeleteOwned_ReturnsPriorState(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`DELETE FROM categories\s+WHERE id = \$1 AND user_id = \$2\s+RETURNING`).
		WithArgs("c-1", "u-1").
		WillReturnRows(categoryRows())

	got, err := repo.DeleteOwned(context.Background(), "c-1", "u-1")
	if err != nil {
		t.Fatalf("DeleteOwned error: %v", err)
	}
	if got.Title != "Tech" {
		t.Fatalf("expected prior state, got %+v", got)
	}
}
