package cache

import (
	"context"

	model "task-board.community/task-board/internal/models"
)

// LeaderboardCache holds a recent copy of the top-points user list. Get
// reports a miss with ok=false; Invalidate is called whenever points change.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.User, bool, error)

	Set(ctx context.Context, users []model.User) error

	Invalidate(ctx context.Context) error
}
