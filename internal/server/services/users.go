package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
)

// UserService handles account management and login.
type UserService struct {
	dbm                         repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		dbm:                         m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}
	return s.dbm.Users(db).List(ctx)
}

// Register creates a new user. The password is stored only as a bcrypt digest.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.NewValidationError("Please fill the request")
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: digest}
	created, err := s.dbm.Users(db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewValidationError("Username already taken")
		}
		return nil, err
	}
	return created, nil
}

// Update renames a user. Only the username is mutable.
func (s *UserService) Update(ctx context.Context, userID, username string) (*models.User, error) {
	if userID == "" || username == "" {
		return nil, common.NewValidationError("Please fill the request")
	}
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	updated, err := s.dbm.Users(db).UpdateUsername(ctx, userID, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityUser}
		}
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.NewValidationError("Username already taken")
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a user and returns the prior state. Deletion is refused
// while the user still owns categories or blogs; cascading would destroy
// records the caller never named, and orphaning would break the ownership
// chain every read depends on.
func (s *UserService) Delete(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, common.NewValidationError("Please fill the request")
	}
	if err := validateID(userID, "Invalid userId"); err != nil {
		return nil, err
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	deleted, err := s.dbm.Users(db).Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.NotFoundError{Entity: common.EntityUser}
		}
		if errors.Is(err, common.ErrorHasDependents) {
			return nil, common.NewValidationError("User still owns categories or blogs")
		}
		return nil, err
	}
	return deleted, nil
}

// Login verifies the credentials and mints an access token for the user.
// An unknown username and a wrong password are reported differently; login
// is the one route where account existence is disclosed.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", common.NewValidationError("Please fill request")
	}

	db, err := s.dbm.Conn(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("store connect: %w", err)
	}

	user, err := s.dbm.Users(db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", &common.NotFoundError{Entity: common.EntityUser}
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthenticated
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("minting token: %w", err)
	}
	return user, token, nil
}
