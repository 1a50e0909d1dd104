package services

import (
	"context"
	"errors"

	"task-board.community/task-board/internal/auth"
	apperrors "task-board.community/task-board/internal/errors"
	model "task-board.community/task-board/internal/models"
	repository "task-board.community/task-board/internal/repositories"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users *repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Login checks the password and issues a bearer token. Whether the account
// is active is enforced per request, not at login.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}
