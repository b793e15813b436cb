// Package user implements account registration and authentication.
package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openduel/duel-server-go/internal/repository"
)

var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNicknameTaken is returned when the nickname is already in use.
	ErrNicknameTaken = errors.New("nickname already taken")
	// ErrInvalidCredentials is returned for unknown logins and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidNickname is returned for nicknames outside 3..24 runes.
	ErrInvalidNickname = errors.New("nickname must be 3 to 24 characters")
	// ErrWeakPassword is returned for passwords shorter than 8 runes.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)

// Repository is the account storage the manager operates on.
type Repository interface {
	Create(ctx context.Context, u *repository.User) error
	ByID(ctx context.Context, id int64) (repository.User, error)
	ByEmail(ctx context.Context, email string) (repository.User, error)
	ByNickname(ctx context.Context, nickname string) (repository.User, error)
}

// Manager handles signup and signin.
type Manager struct {
	repo   Repository
	logger *zap.Logger
}

// NewManager creates a user manager.
func NewManager(repo Repository, logger *zap.Logger) *Manager {
	return &Manager{repo: repo, logger: logger}
}

// Register creates an account. The email is checked before the
// nickname, so a request failing on both reports the email conflict.
func (m *Manager) Register(ctx context.Context, email, nickname, password string) (repository.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	nickname = strings.TrimSpace(nickname)

	if err := validate(email, nickname, password); err != nil {
		return repository.User{}, err
	}

	if _, err := m.repo.ByEmail(ctx, email); err == nil {
		return repository.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, err
	}
	if _, err := m.repo.ByNickname(ctx, nickname); err == nil {
		return repository.User{}, ErrNicknameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, err
	}

	u := repository.User{
		Nickname:     nickname,
		Email:        email,
		PasswordHash: string(hash),
		Rating:       repository.DefaultRating,
	}
	if err := m.repo.Create(ctx, &u); err != nil {
		// A concurrent signup can win the race between the checks
		// above and the insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.User{}, ErrNicknameTaken
		}
		return repository.User{}, err
	}

	m.logger.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("nickname", u.Nickname),
	)
	return u, nil
}

// Authenticate verifies a login, which may be either a nickname or an
// email address, against the stored password hash.
func (m *Manager) Authenticate(ctx context.Context, login, password string) (repository.User, error) {
	login = strings.TrimSpace(login)

	var (
		u   repository.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = m.repo.ByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = m.repo.ByNickname(ctx, login)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return repository.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return repository.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// ByID fetches an account by its ID.
func (m *Manager) ByID(ctx context.Context, id int64) (repository.User, error) {
	return m.repo.ByID(ctx, id)
}

func validate(email, nickname, password string) error {
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	if n := len([]rune(nickname)); n < 3 || n > 24 {
		return ErrInvalidNickname
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}
