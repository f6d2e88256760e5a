package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/pos-backend/internal/user/domain"
	"github.com/shoplite/pos-backend/pkg/auth"
)

type memUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *memUserRepo) Create(user *domain.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *memUserRepo) FindByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	copied := *user
	return &copied, nil
}

func TestRegisterUser(t *testing.T) {
	repo := newMemUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "s3cret"))
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMemUserRepo()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(RegisterUserCommand{Username: "alice", Password: "one"})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{Username: "alice", Password: "two"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// racingUserRepo simulates a concurrent registration: the lookup sees no row
// yet, but the insert hits the unique index.
type racingUserRepo struct{}

func (racingUserRepo) Create(*domain.User) error { return domain.ErrUsernameTaken }
func (racingUserRepo) FindByUsername(string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func TestRegisterUser_DuplicateRacingPastPrecheck(t *testing.T) {
	handler := NewRegisterUserHandler(racingUserRepo{})

	_, err := handler.Handle(RegisterUserCommand{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_RequiresCredentials(t *testing.T) {
	handler := NewRegisterUserHandler(newMemUserRepo())

	_, err := handler.Handle(RegisterUserCommand{Username: "", Password: "x"})
	require.Error(t, err)
	_, err = handler.Handle(RegisterUserCommand{Username: "alice", Password: ""})
	require.Error(t, err)
}

func TestLoginUser(t *testing.T) {
	repo := newMemUserRepo()
	_, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	handler := NewLoginUserHandler(repo)

	resp, err := handler.Handle(LoginUserCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	_, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = NewLoginUserHandler(repo).Handle(LoginUserCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	_, err := NewLoginUserHandler(newMemUserRepo()).Handle(LoginUserCommand{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
