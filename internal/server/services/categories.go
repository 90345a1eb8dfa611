package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
)

// CategoryService handles user-scoped category operations.
type CategoryService struct {
	dbm repomanager.RepositoryManager
}

func NewCategoryService(m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{dbm: m}
}

func (s *CategoryService) List(ctx context.Context, userID string) ([]models.Category, error) {
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if _, err := resolveUser(ctx, s.dbm.Users(db), userID); err != nil {
		return nil, err
	}
	return s.dbm.Categories(db).ListByUser(ctx, userID)
}

// Create adds a category owned by userID. The owner is copied from the
// validated scope, never from the request body.
func (s *CategoryService) Create(ctx context.Context, userID, title string) (*models.Category, error) {
	if title == "" {
		return nil, common.NewValidationError("Please fill request")
	}
	if userID == "" {
		return nil, common.NewValidationError("Please select user")
	}
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if _, err := resolveUser(ctx, s.dbm.Users(db), userID); err != nil {
		return nil, err
	}

	category := &models.Category{Title: title, UserID: userID}
	return s.dbm.Categories(db).Create(ctx, category)
}

// Update retitles a category. The mutation is a single statement keyed by
// (category id, user id); a category owned by someone else reads as absent.
func (s *CategoryService) Update(ctx context.Context, userID, categoryID, title string) (*models.Category, error) {
	if title == "" {
		return nil, common.NewValidationError("Please fill request")
	}
	if err := validateID(categoryID, "Invalid categoryId"); err != nil {
		return nil, err
	}
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if _, err := resolveUser(ctx, s.dbm.Users(db), userID); err != nil {
		return nil, err
	}

	updated, err := s.dbm.Categories(db).UpdateOwned(ctx, categoryID, userID, title)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityCategory, Scoped: true}
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a category owned by userID and returns the prior state.
// A category that still has blogs is not deleted.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	if err := validateID(categoryID, "Invalid categoryId"); err != nil {
		return nil, err
	}
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if _, err := resolveUser(ctx, s.dbm.Users(db), userID); err != nil {
		return nil, err
	}

	deleted, err := s.dbm.Categories(db).DeleteOwned(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityCategory, Scoped: true}
		}
		if errors.Is(err, common.ErrorHasDependents) {
			return nil, common.NewValidationError("Category still has blogs")
		}
		return nil, err
	}
	return deleted, nil
}
