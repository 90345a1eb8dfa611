// Package services contains the business logic shared by every operation: the
// validate → resolve ownership → apply → respond sequence. Field and id
// validation always runs before any store access, and mutations are applied
// as single conditional statements keyed by the caller's ownership scope.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
)

// validateID rejects absent or syntactically invalid identifiers with the
// route-specific message, before the store is ever touched.
func validateID(id, message string) error {
	if id == "" || uuid.Validate(id) != nil {
		return common.NewValidationError(message)
	}
	return nil
}

// resolveUser confirms the referenced user exists. Absence is a client error,
// not an internal one.
func resolveUser(ctx context.Context, repo users.Repository, id string) (*models.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityUser}
		}
		return nil, err
	}
	return user, nil
}

// resolveCategory confirms the referenced category exists. It deliberately
// does not compare the category's owner against the caller here; that
// constraint lives in the store predicate of the operation itself, so that
// absent and foreign-owned resources are indistinguishable to the caller.
func resolveCategory(ctx context.Context, repo categories.Repository, id string) (*models.Category, error) {
	category, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityCategory}
		}
		return nil, err
	}
	return category, nil
}
