package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "task-board.community/task-board/internal/errors"
	model "task-board.community/task-board/internal/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword("hunter2hunter2", hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)

	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("expected subject alice, got %s", subject)
	}
}

func TestTokenRejections(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)

	if _, err := tokens.Parse("not-a-token"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}

	other := NewTokenService("different-secret", time.Minute)
	token, _ := other.Issue("alice")
	if _, err := tokens.Parse(token); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("wrong key must be ErrUnauthenticated, got %v", err)
	}

	expired := NewTokenService("secret", -time.Minute)
	token, _ = expired.Issue("alice")
	if _, err := tokens.Parse(token); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("expired token must be ErrUnauthenticated, got %v", err)
	}
}

type staticLookup struct {
	user *model.User
}

func (l *staticLookup) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if l.user != nil && l.user.Username == username {
		return l.user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func TestJWTProviderResolve(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute)
	provider := NewJWTProvider(tokens, &staticLookup{
		user: &model.User{ID: 7, Username: "alice", IsActive: false},
	})

	token, _ := tokens.Issue("alice")
	identity, err := provider.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity.UserID != 7 {
		t.Errorf("expected user 7, got %d", identity.UserID)
	}
	if identity.Active {
		t.Error("expected inactive identity")
	}

	ghost, _ := tokens.Issue("nobody")
	if _, err := provider.Resolve(context.Background(), ghost); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("token for a missing user must be ErrUnauthenticated, got %v", err)
	}
}
