package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lessonbook/internal/apperr"
	"lessonbook/internal/auth"
	"lessonbook/internal/model"
)

type UserService struct {
	users  UserRepo
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewUserService(users UserRepo, tokens *auth.TokenManager, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

type RegisterInput struct {
	Username         string
	Password         string
	Section          string
	Role             model.UserRole
	TelegramChatID   *int64
	TelegramUsername string
}

// Register регистрирует нового пользователя. Роль задаётся один раз
// и после создания не меняется.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Username == "" || in.Password == "" || in.Section == "" {
		return nil, apperr.NewValidation("username, password and section are required")
	}

	role := in.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperr.NewValidation("role '%s' is not defined", in.Role)
	}

	existing, err := s.users.GetBySectionAndUsername(ctx, in.Section, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrUserExists
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:         in.Username,
		Password:         hashed,
		Role:             role,
		Section:          in.Section,
		TelegramChatID:   in.TelegramChatID,
		TelegramUsername: in.TelegramUsername,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("section", user.Section),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// Login проверяет пару секция+имя и пароль, выпускает токен
func (s *UserService) Login(ctx context.Context, section, username, password string) (string, *model.User, error) {
	user, err := s.users.GetBySectionAndUsername(ctx, section, username)
	if err != nil {
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return "", nil, apperr.ErrBadCredentials
	}

	ok, err := auth.CheckPassword(password, user.Password)
	if err != nil {
		return "", nil, fmt.Errorf("check password: %w", err)
	}
	if !ok {
		return "", nil, apperr.ErrBadCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("section", user.Section),
	)

	return token, user, nil
}

// GetByID получает пользователя по ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	return user, nil
}
