package blogs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func blogRows(created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "user_id", "category_id", "created_at"}).
		AddRow("b-1", "Hello", "World", "u-1", "c-1", created)
}

func TestSelect_ScopedAndPaged(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM blogs WHERE user_id = \$1 AND category_id = \$2 ORDER BY created_at ASC LIMIT \$3 OFFSET \$4$`

	mock.ExpectQuery(q).
		WithArgs("u-1", "c-1", 10, 0).
		WillReturnRows(blogRows(time.Now()))

	got, err := repo.Select(context.Background(), Filter{UserID: "u-1", CategoryID: "c-1"})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSelect_SearchWindow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM blogs WHERE user_id = \$1 AND category_id = \$2 AND \(title ILIKE \$3 ESCAPE '\\' OR description ILIKE \$4 ESCAPE '\\'\) ORDER BY created_at ASC LIMIT \$5 OFFSET \$6$`

	mock.ExpectQuery(q).
		WithArgs("u-1", "c-1", "%hello%", "%hello%", 5, 10).
		WillReturnRows(blogRows(time.Now()))

	_, err := repo.Select(context.Background(), Filter{
		UserID: "u-1", CategoryID: "c-1", Search: "hello", Page: 3, Size: 5,
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
}

func TestCount_UsesSamePredicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT count\(\*\) FROM blogs WHERE user_id = \$1 AND category_id = \$2 AND \(title ILIKE \$3 ESCAPE '\\' OR description ILIKE \$4 ESCAPE '\\'\)$`

	mock.ExpectQuery(q).
		WithArgs("u-1", "c-1", "%hello%", "%hello%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background(), Filter{UserID: "u-1", CategoryID: "c-1", Search: "hello"})
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if total != 7 {
		t.Fatalf("unexpected total: %d", total)
	}
}

func TestFindOne_TupleMiss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.+\s+FROM blogs WHERE user_id = \$1 AND category_id = \$2 AND id = \$3$`

	mock.ExpectQuery(q).
		WithArgs("u-2", "c-1", "b-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindOne(context.Background(), Filter{UserID: "u-2", CategoryID: "c-1", BlogID: "b-1"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateOwned_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE blogs SET title = \$4, description = \$5\s+WHERE id = \$1 AND user_id = \$2 AND category_id = \$3\s+RETURNING\s+.+$`

	mock.ExpectQuery(q).
		WithArgs("b-1", "u-1", "c-1", "New", "Text").
		WillReturnRows(blogRows(time.Now()))

	got, err := repo.UpdateOwned(context.Background(), "b-1", "u-1", "c-1", "New", "Text")
	if err != nil {
		t.Fatalf("UpdateOwned error: %v", err)
	}
	if got.ID != "b-1" {
		t.Fatalf("unexpected blog: %+v", got)
	}
}

func TestUpdateOwned_TupleMiss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE blogs SET title = \$4, description = \$5\s+WHERE id = \$1 AND user_id = \$2 AND category_id = \$3\s+RETURNING\s+.+$`

	mock.ExpectQuery(q).
		WithArgs("b-1", "u-2", "c-1", "New", "Text").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateOwned(context.Background(), "b-1", "u-2", "c-1", "New", "Text")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteOwned_ReturnsPriorState(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE FROM blogs\s+WHERE id = \$1 AND user_id = \$2 AND category_id = \$3\s+RETURNING\s+.+$`

	mock.ExpectQuery(q).
		WithArgs("b-1", "u-1", "c-1").
		WillReturnRows(blogRows(time.Now()))

	got, err := repo.DeleteOwned(context.Background(), "b-1", "u-1", "c-1")
	if err != nil {
		t.Fatalf("DeleteOwned error: %v", err)
	}
	if got.Title != "Hello" || got.Description != "World" {
		t.Fatalf("expected prior state, got %+v", got)
	}
}
