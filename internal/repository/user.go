package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pingstack/pingstack-go/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserRepository is the persistence boundary for user records. The MySQL
// implementation below is the only one used in production; tests substitute
// an in-memory fake.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type mysqlUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a MySQL-backed UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

const userColumns = `id, username, email, password, created_at, updated_at`

// Create inserts a new user and sets the generated ID on the user struct.
func (r *mysqlUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, email, password) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading generated id: %w", err)
	}

	user.ID = id
	return nil
}

// GetByUsernameOrEmail retrieves a user whose username or email matches the
// identifier. Both columns are unique, so at most one row can match.
func (r *mysqlUserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, identifier))
}

// GetByID retrieves a user by their numeric ID.
func (r *mysqlUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *mysqlUserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}

// isDuplicateEntryError checks for the MySQL duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
