package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert violates the nickname or
	// email uniqueness constraint.
	ErrDuplicate = errors.New("nickname or email already taken")
)

// DefaultRating is the rating assigned to freshly registered accounts.
const DefaultRating int16 = 1500

// User is an account row.
type User struct {
	ID           int64
	Nickname     string
	Email        string
	PasswordHash string
	Rating       int16
	Settings     []byte
	CreatedAt    time.Time
}

// UserRepository reads and writes account rows.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a user repository over the given pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, nickname, email, password, rating, settings, created_at`

// Create inserts the user and fills in its generated ID and creation
// time. Uniqueness violations map to ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *User) error {
	settings := u.Settings
	if settings == nil {
		settings = []byte(`{}`)
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (nickname, email, password, rating, settings)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Nickname, u.Email, u.PasswordHash, u.Rating, settings,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// ByID fetches a user by primary key.
func (r *UserRepository) ByID(ctx context.Context, id int64) (User, error) {
	return r.fetch(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// ByEmail fetches a user by email address.
func (r *UserRepository) ByEmail(ctx context.Context, email string) (User, error) {
	return r.fetch(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// ByNickname fetches a user by nickname.
func (r *UserRepository) ByNickname(ctx context.Context, nickname string) (User, error) {
	return r.fetch(ctx, `SELECT `+userColumns+` FROM users WHERE nickname = $1`, nickname)
}

// UpdateRating stores a new rating for the user.
func (r *UserRepository) UpdateRating(ctx context.Context, id int64, rating int16) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) fetch(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nickname, &u.Email, &u.PasswordHash, &u.Rating, &u.Settings, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
