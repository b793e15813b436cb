package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/repository"
)

type fakeRepo struct {
	users  map[int64]repository.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]repository.User)}
}

func (r *fakeRepo) Create(_ context.Context, u *repository.User) error {
	for _, other := range r.users {
		if other.Email == u.Email || other.Nickname == u.Nickname {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = *u
	return nil
}

func (r *fakeRepo) ByID(_ context.Context, id int64) (repository.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return repository.User{}, repository.ErrNotFound
}

func (r *fakeRepo) ByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (r *fakeRepo) ByNickname(_ context.Context, nickname string) (repository.User, error) {
	for _, u := range r.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func newTestManager() (*Manager, *fakeRepo) {
	repo := newFakeRepo()
	return NewManager(repo, zap.NewNop()), repo
}

func TestRegister(t *testing.T) {
	m, _ := newTestManager()

	u, err := m.Register(context.Background(), "Alice@Example.com", "alice", "correct horse")
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "alice", u.Nickname)
	assert.Equal(t, repository.DefaultRating, u.Rating)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Register(ctx, "not-an-email", "alice", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = m.Register(ctx, "a@example.com", "al", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidNickname)

	_, err = m.Register(ctx, "a@example.com", "alice", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterReportsEmailConflictFirst(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Register(ctx, "alice@example.com", "alice", "correct horse")
	require.NoError(t, err)

	_, err = m.Register(ctx, "alice@example.com", "alice", "correct horse")
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = m.Register(ctx, "other@example.com", "alice", "correct horse")
	assert.ErrorIs(t, err, ErrNicknameTaken)
}

func TestAuthenticate(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	registered, err := m.Register(ctx, "alice@example.com", "alice", "correct horse")
	require.NoError(t, err)

	byNickname, err := m.Authenticate(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byNickname.ID)

	byEmail, err := m.Authenticate(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Register(ctx, "alice@example.com", "alice", "correct horse")
	require.NoError(t, err)

	_, err = m.Authenticate(ctx, "alice", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
