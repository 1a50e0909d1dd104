package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-board.community/task-board/internal/auth"
	apperrors "task-board.community/task-board/internal/errors"
	repository "task-board.community/task-board/internal/repositories"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *auth.TokenService) {
	t.Helper()

	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	tokens := auth.NewTokenService("test-secret", 30*time.Minute)
	return NewAuthService(users, tokens), users, tokens
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	service, _, tokens := newAuthService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected an assigned user id")
	}
	if !user.IsActive {
		t.Error("new accounts start active")
	}
	if user.Points != 0 {
		t.Errorf("new accounts start with 0 points, got %d", user.Points)
	}
	if user.PasswordHash == "s3cret-password" {
		t.Error("password must not be stored in the clear")
	}

	token, err := service.Login(ctx, "alice", "s3cret-password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	username, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("issued token did not parse: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected subject alice, got %s", username)
	}
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	service, _, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := service.Register(ctx, "alice", "other@example.com", "s3cret-password")
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	_, err = service.Register(ctx, "bob", "alice@example.com", "s3cret-password")
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_LoginRejections(t *testing.T) {
	service, _, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Login(ctx, "alice", "wrong-password"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	if _, err := service.Login(ctx, "nobody", "whatever"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
