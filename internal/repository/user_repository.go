package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbook/internal/apperr"
	"lessonbook/internal/model"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создаёт нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, password, role, section, telegram_chat_id, telegram_username)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.Username,
		user.Password,
		user.Role,
		user.Section,
		user.TelegramChatID,
		user.TelegramUsername,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, password, role, section, telegram_chat_id, telegram_username, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.Section,
		&user.TelegramChatID,
		&user.TelegramUsername,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

// GetBySectionAndUsername получает пользователя по секции и имени
func (r *UserRepository) GetBySectionAndUsername(ctx context.Context, section, username string) (*model.User, error) {
	query := `
		SELECT id, username, password, role, section, telegram_chat_id, telegram_username, created_at
		FROM users
		WHERE section = $1 AND username = $2
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, section, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.Section,
		&user.TelegramChatID,
		&user.TelegramUsername,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by section and username: %w", err)
	}

	return &user, nil
}
