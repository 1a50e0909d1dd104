package services

import (
	"context"
	"testing"

	model "task-board.community/task-board/internal/models"
)

func TestUserService_Stats(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.users, "alice")
	volunteer := createTestUser(t, env.users, "bob")

	ctx := context.Background()
	t1 := env.createTask(t, author.ID, "one")
	env.createTask(t, author.ID, "two")

	if err := env.taskService.SubmitProof(ctx, t1.ID, volunteer.ID, "http://test/img"); err != nil {
		t.Fatalf("submit proof failed: %v", err)
	}
	if _, err := env.taskService.Approve(ctx, t1.ID, author.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	userService := NewUserService(env.users, env.tasks, nil, 10)

	authorStats, err := userService.Stats(ctx, author.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if authorStats.Counts.Created != 2 || authorStats.Counts.Solved != 0 {
		t.Errorf("unexpected author counts: %+v", authorStats.Counts)
	}
	if len(authorStats.MyRequests) != 2 || len(authorStats.MyContributions) != 0 {
		t.Errorf("unexpected author lists: %d requests, %d contributions",
			len(authorStats.MyRequests), len(authorStats.MyContributions))
	}

	volunteerStats, err := userService.Stats(ctx, volunteer.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if volunteerStats.Counts.Created != 0 || volunteerStats.Counts.Solved != 1 {
		t.Errorf("unexpected volunteer counts: %+v", volunteerStats.Counts)
	}
	if volunteerStats.Counts.Points != testAward {
		t.Errorf("expected %d points in stats, got %d", testAward, volunteerStats.Counts.Points)
	}
}

func TestUserService_Leaderboard(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.users, "alice")
	busy := createTestUser(t, env.users, "bob")
	idle := createTestUser(t, env.users, "carol")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		task := env.createTask(t, author.ID, "work")
		if err := env.taskService.SubmitProof(ctx, task.ID, busy.ID, "http://test/img"); err != nil {
			t.Fatalf("submit proof failed: %v", err)
		}
		if _, err := env.taskService.Approve(ctx, task.ID, author.ID); err != nil {
			t.Fatalf("approve failed: %v", err)
		}
	}

	userService := NewUserService(env.users, env.tasks, env.leaderboard, 2)

	top, err := userService.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].ID != busy.ID {
		t.Errorf("expected %s on top, got %s", busy.Username, top[0].Username)
	}
	if top[0].Points != 2*testAward {
		t.Errorf("expected %d points, got %d", 2*testAward, top[0].Points)
	}
	_ = idle

	// A miss fills the cache.
	if len(env.leaderboard.stored) != 1 {
		t.Errorf("expected one cache write, got %d", len(env.leaderboard.stored))
	}

	// A hit short-circuits the query.
	env.leaderboard.getHitActive = true
	env.leaderboard.getHit = []model.User{{Username: "cached"}}
	cached, err := userService.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("cached leaderboard failed: %v", err)
	}
	if len(cached) != 1 || cached[0].Username != "cached" {
		t.Errorf("expected the cached copy, got %+v", cached)
	}
}

func TestUserService_GetMissing(t *testing.T) {
	env := newTestEnv(t)
	userService := NewUserService(env.users, env.tasks, nil, 10)

	if _, err := userService.Get(context.Background(), 404); err == nil {
		t.Error("expected an error for a missing user")
	}
}
