package services

import (
	"context"
	"errors"
	"testing"

	apperrors "task-board.community/task-board/internal/errors"
	repository "task-board.community/task-board/internal/repositories"
)

func TestCommentService_CreateListDelete(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.users, "alice")
	commenter := createTestUser(t, env.users, "bob")
	task := env.createTask(t, author.ID, "pothole")

	comments := repository.NewCommentRepository(env.db)
	service := NewCommentService(comments, env.tasks)

	ctx := context.Background()
	comment, err := service.Create(ctx, task.ID, commenter.ID, "on it")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Author == nil || comment.Author.Username != "bob" {
		t.Error("expected the author to come back with the comment")
	}

	listed, err := service.ListForTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "on it" {
		t.Errorf("unexpected comment list: %+v", listed)
	}

	if err := service.Delete(ctx, comment.ID, author.ID); !errors.Is(err, apperrors.ErrNotCommentAuthor) {
		t.Errorf("expected ErrNotCommentAuthor, got %v", err)
	}
	if err := service.Delete(ctx, comment.ID, commenter.ID); err != nil {
		t.Fatalf("delete comment failed: %v", err)
	}
	if err := service.Delete(ctx, comment.ID, commenter.ID); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_CreateOnMissingTask(t *testing.T) {
	env := newTestEnv(t)
	commenter := createTestUser(t, env.users, "bob")

	comments := repository.NewCommentRepository(env.db)
	service := NewCommentService(comments, env.tasks)

	_, err := service.Create(context.Background(), 9999, commenter.ID, "hello")
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
