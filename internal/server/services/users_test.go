package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *repomanager.InMemoryRepositoryManager) {
	t.Helper()
	m := repomanager.NewInMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewUserService(m, cfg), m
}

func TestRegister_HashesPassword(t *testing.T) {
	s, _ := newUserService(t)

	user, err := s.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "s3cret"))
}

func TestRegister_MissingFields(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Register(context.Background(), "alice", "", "s3cret")

	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please fill the request", ve.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Register(context.Background(), "alice", "a@example.com", "pw")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "alice", "b@example.com", "pw")
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Username already taken", ve.Message)
}

func TestLogin_Success(t *testing.T) {
	s, _ := newUserService(t)

	created, err := s.Register(context.Background(), "alice", "a@example.com", "s3cret")
	require.NoError(t, err)

	user, token, err := s.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Register(context.Background(), "alice", "a@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = s.Login(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)
}

func TestLogin_UnknownUser(t *testing.T) {
	s, _ := newUserService(t)

	_, _, err := s.Login(context.Background(), "ghost", "pw")

	var nf *common.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, common.EntityUser, nf.Entity)
}

func TestUpdate_RenamesUser(t *testing.T) {
	s, _ := newUserService(t)

	created, err := s.Register(context.Background(), "alice", "a@example.com", "pw")
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), created.ID, "alice2")
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
}

func TestUpdate_InvalidID(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Update(context.Background(), "not-an-id", "alice2")

	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid userId", ve.Message)
}

func TestDelete_RefusedWhileOwningCategories(t *testing.T) {
	us, m := newUserService(t)
	cs := NewCategoryService(m)

	user, err := us.Register(context.Background(), "alice", "a@example.com", "pw")
	require.NoError(t, err)
	_, err = cs.Create(context.Background(), user.ID, "Tech")
	require.NoError(t, err)

	_, err = us.Delete(context.Background(), user.ID)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "User still owns categories or blogs", ve.Message)
}

func TestDelete_SecondDeleteIsNotFound(t *testing.T) {
	s, _ := newUserService(t)

	user, err := s.Register(context.Background(), "alice", "a@example.com", "pw")
	require.NoError(t, err)

	deleted, err := s.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)

	_, err = s.Delete(context.Background(), user.ID)
	var nf *common.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, common.EntityUser, nf.Entity)
}

func TestDelete_UnknownUser(t *testing.T) {
	s, _ := newUserService(t)

	_, err := s.Delete(context.Background(), uuid.NewString())

	var nf *common.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, common.EntityUser, nf.Entity)
}
