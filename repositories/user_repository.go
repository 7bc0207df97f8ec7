package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/contest-jury/models"
)

// UserRepository interface defines user lookups
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID retrieves a user and its roles by numeric id
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT userid, username, name FROM users WHERE userid = ?`
	return r.getOne(ctx, query, id, fmt.Sprintf("user with ID %d", id))
}

// GetByUsername retrieves a user and its roles by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT userid, username, name FROM users WHERE username = ?`
	return r.getOne(ctx, query, username, fmt.Sprintf("user %q", username))
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}, what string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	roles, err := r.getRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

func (r *userRepository) getRoles(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT role FROM user_roles WHERE userid = ? ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan user role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// Create inserts a user together with its roles
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `INSERT INTO users (username, name) VALUES (?, ?)`, user.Username, user.Name)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	for _, role := range user.Roles {
		if _, err := tx.ExecContext(ctx, `INSERT INTO user_roles (userid, role) VALUES (?, ?)`, id, role); err != nil {
			return fmt.Errorf("failed to add role %s: %w", role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}

	user.ID = id
	return nil
}
