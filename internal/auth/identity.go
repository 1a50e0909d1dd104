package auth

import (
	"context"

	apperrors "task-board.community/task-board/internal/errors"
	model "task-board.community/task-board/internal/models"
)

// Identity is what a credential resolves to: who the caller is and whether
// the account is still active.
type Identity struct {
	UserID uint
	Active bool
}

// Provider resolves a bearer credential to an identity. A bad credential is
// ErrUnauthenticated; the caller decides what an inactive account means.
type Provider interface {
	Resolve(ctx context.Context, credential string) (Identity, error)
}

// UserLookup is the slice of the user store the provider needs.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type JWTProvider struct {
	tokens *TokenService
	users  UserLookup
}

func NewJWTProvider(tokens *TokenService, users UserLookup) *JWTProvider {
	return &JWTProvider{tokens: tokens, users: users}
}

func (p *JWTProvider) Resolve(ctx context.Context, credential string) (Identity, error) {
	username, err := p.tokens.Parse(credential)
	if err != nil {
		return Identity{}, err
	}

	// A token for a user that no longer exists is a bad credential, not a
	// not-found.
	user, err := p.users.FindByUsername(ctx, username)
	if err != nil {
		return Identity{}, apperrors.ErrUnauthenticated
	}

	return Identity{UserID: user.ID, Active: user.IsActive}, nil
}
