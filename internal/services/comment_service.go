package services

import (
	"context"

	apperrors "task-board.community/task-board/internal/errors"
	model "task-board.community/task-board/internal/models"
	repository "task-board.community/task-board/internal/repositories"
)

type CommentService struct {
	comments *repository.CommentRepository
	tasks    *repository.TaskRepository
}

func NewCommentService(comments *repository.CommentRepository, tasks *repository.TaskRepository) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

func (s *CommentService) ListForTask(ctx context.Context, taskID uint) ([]model.Comment, error) {
	return s.comments.ListByTask(ctx, taskID)
}

func (s *CommentService) Create(ctx context.Context, taskID, authorID uint, content string) (*model.Comment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:  content,
		AuthorID: authorID,
		TaskID:   taskID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, callerID uint) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != callerID {
		return apperrors.ErrNotCommentAuthor
	}

	return s.comments.Delete(ctx, commentID)
}
