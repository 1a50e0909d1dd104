package services

import (
	"context"

	"task-board.community/task-board/internal/cache"
	model "task-board.community/task-board/internal/models"
	repository "task-board.community/task-board/internal/repositories"
)

type UserService struct {
	users *repository.UserRepository
	tasks *repository.TaskRepository

	leaderboard     cache.LeaderboardCache
	leaderboardSize int
}

func NewUserService(
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	leaderboard cache.LeaderboardCache,
	leaderboardSize int,
) *UserService {
	return &UserService{
		users:           users,
		tasks:           tasks,
		leaderboard:     leaderboard,
		leaderboardSize: leaderboardSize,
	}
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

// StatsCounts mirrors the profile page: how many tasks the user posted, how
// many they resolved, and their running points total.
type StatsCounts struct {
	Created int64 `json:"created"`
	Solved  int64 `json:"solved"`
	Points  int   `json:"points"`
}

type UserStats struct {
	User            *model.User  `json:"user"`
	Counts          StatsCounts  `json:"counts"`
	MyRequests      []model.Task `json:"my_requests"`
	MyContributions []model.Task `json:"my_contributions"`
}

func (s *UserService) Stats(ctx context.Context, userID uint) (*UserStats, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	created, err := s.tasks.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	solved, err := s.tasks.CountByResolver(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.tasks.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	contributions, err := s.tasks.ListByResolver(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		User: user,
		Counts: StatsCounts{
			Created: created,
			Solved:  solved,
			Points:  user.Points,
		},
		MyRequests:      requests,
		MyContributions: contributions,
	}, nil
}

// Leaderboard returns the top users by points, served from the cache when a
// fresh copy is there. Cache failures degrade to the direct query.
func (s *UserService) Leaderboard(ctx context.Context) ([]model.User, error) {
	if s.leaderboard != nil {
		users, ok, err := s.leaderboard.Get(ctx)
		if err != nil {
			log.WithError(err).Warn("leaderboard cache read failed")
		} else if ok {
			return users, nil
		}
	}

	users, err := s.users.TopByPoints(ctx, s.leaderboardSize)
	if err != nil {
		return nil, err
	}

	if s.leaderboard != nil {
		if err := s.leaderboard.Set(ctx, users); err != nil {
			log.WithError(err).Warn("leaderboard cache write failed")
		}
	}

	return users, nil
}
