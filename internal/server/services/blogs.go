package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
)

// BlogService handles blog operations scoped by the (user, category) pair.
type BlogService struct {
	dbm repomanager.RepositoryManager
}

func NewBlogService(m repomanager.RepositoryManager) *BlogService {
	return &BlogService{dbm: m}
}

// ListQuery carries the scope and the optional modifiers of a list request.
// Zero Page/Size fall back to the pagination defaults.
type ListQuery struct {
	UserID     string
	CategoryID string
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Size       int
}

// List returns one page of the caller's blogs plus the total count of the
// same filtered set, so the total always agrees with what pagination walks.
func (s *BlogService) List(ctx context.Context, q ListQuery) ([]models.Blog, int64, error) {
	if err := validateID(q.UserID, "Invalid user"); err != nil {
		return nil, 0, err
	}
	if err := validateID(q.CategoryID, "Invalid category"); err != nil {
		return nil, 0, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("store connect: %w", err)
	}

	if err := s.resolveOwners(ctx, db, q.UserID, q.CategoryID); err != nil {
		return nil, 0, err
	}

	filter := blogs.Filter{
		UserID:     q.UserID,
		CategoryID: q.CategoryID,
		Search:     q.Search,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Page:       q.Page,
		Size:       q.Size,
	}

	repo := s.dbm.Blogs(db)
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	page, err := repo.Select(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

// Get fetches a single blog by the full ownership tuple.
func (s *BlogService) Get(ctx context.Context, userID, categoryID, blogID string) (*models.Blog, error) {
	if err := s.validateScope(blogID, userID, categoryID); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if err := s.resolveOwners(ctx, db, userID, categoryID); err != nil {
		return nil, err
	}

	blog, err := s.dbm.Blogs(db).FindOne(ctx, blogs.Filter{
		UserID:     userID,
		CategoryID: categoryID,
		BlogID:     blogID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityBlog, Scoped: true}
		}
		return nil, err
	}
	return blog, nil
}

// Create adds a blog under the validated (user, category) scope. Ownership
// fields come from the scope, never from the body.
func (s *BlogService) Create(ctx context.Context, userID, categoryID, title, description string) (*models.Blog, error) {
	if title == "" || description == "" {
		return nil, common.NewValidationError("Please fill request")
	}
	if err := validateID(userID, "Invalid user"); err != nil {
		return nil, err
	}
	if err := validateID(categoryID, "Invalid category"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if err := s.resolveOwners(ctx, db, userID, categoryID); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:       title,
		Description: description,
		UserID:      userID,
		CategoryID:  categoryID,
	}
	return s.dbm.Blogs(db).Create(ctx, blog)
}

// Update applies new field values through one conditional statement keyed by
// the full ownership tuple. The prior owner resolution only classifies
// failures; it is never the authorization decision for the mutation itself,
// so there is no gap between check and apply.
func (s *BlogService) Update(ctx context.Context, userID, categoryID, blogID, title, description string) (*models.Blog, error) {
	if title == "" || description == "" {
		return nil, common.NewValidationError("Please fill request")
	}
	if err := s.validateScope(blogID, userID, categoryID); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if err := s.resolveOwners(ctx, db, userID, categoryID); err != nil {
		return nil, err
	}

	updated, err := s.dbm.Blogs(db).UpdateOwned(ctx, blogID, userID, categoryID, title, description)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityBlog, Scoped: true}
		}
		return nil, err
	}
	return updated, nil
}

// Delete is symmetric to Update and returns the deleted blog's prior state.
// Deleting an already-deleted blog reads as not found, never as success.
func (s *BlogService) Delete(ctx context.Context, userID, categoryID, blogID string) (*models.Blog, error) {
	if err := s.validateScope(blogID, userID, categoryID); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if err := s.resolveOwners(ctx, db, userID, categoryID); err != nil {
		return nil, err
	}

	deleted, err := s.dbm.Blogs(db).DeleteOwned(ctx, blogID, userID, categoryID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityBlog, Scoped: true}
		}
		return nil, err
	}
	return deleted, nil
}

// validateScope checks the identifier triple in the fixed order blog id →
// user id → category id.
func (s *BlogService) validateScope(blogID, userID, categoryID string) error {
	if err := validateID(blogID, "Invalid blog"); err != nil {
		return err
	}
	if err := validateID(userID, "Invalid user"); err != nil {
		return err
	}
	return validateID(categoryID, "Invalid category")
}

// resolveOwners runs the ownership chain: the user must exist, then the
// category must exist. Which lookup failed is reported to the caller; whether
// the category actually belongs to the user is left to the operation's store
// predicate.
func (s *BlogService) resolveOwners(ctx context.Context, db dbx.DBTX, userID, categoryID string) error {
	if _, err := resolveUser(ctx, s.dbm.Users(db), userID); err != nil {
		return err
	}
	if _, err := resolveCategory(ctx, s.dbm.Categories(db), categoryID); err != nil {
		return err
	}
	return nil
}
