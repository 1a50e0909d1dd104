package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-board.community/task-board/internal/constants"
	apperrors "task-board.community/task-board/internal/errors"
	model "task-board.community/task-board/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.Status = constants.StatusOpen
	task.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindByIDWithRelations loads a task with its author, resolver, comments
// (with their authors), and likes, for the detail view.
func (r *TaskRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("ResolvedBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc")
		}).
		Preload("Comments.Author").
		Preload("Likes").
		First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Feed lists tasks that still need attention, newest first. Completed tasks
// are excluded. The id tie-break keeps the order stable when several tasks
// share a creation timestamp.
func (r *TaskRepository) Feed(ctx context.Context, offset, limit int) ([]model.Task, error) {
	if limit <= 0 {
		return nil, apperrors.ErrInvalidLimit
	}
	if offset < 0 {
		offset = 0
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("status <> ?", constants.StatusCompleted).
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Order("id desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByResolver(ctx context.Context, resolverID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("resolved_by_id = ?", resolverID).
		Order("created_at desc").
		Order("id desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *TaskRepository) CountByResolver(ctx context.Context, resolverID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("resolved_by_id = ?", resolverID).
		Count(&count).Error
	return count, err
}

// MarkPendingVerification applies the submit-proof transition. The status
// guard in the WHERE clause serializes racing volunteers: whoever commits
// first wins, everyone else matches zero rows and gets the conflict.
func (r *TaskRepository) MarkPendingVerification(ctx context.Context, id, resolverID uint, proofImageURL string) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", id, constants.StatusOpen).
		Updates(map[string]interface{}{
			"status":          constants.StatusPendingVerification,
			"resolved_by_id":  resolverID,
			"proof_image_url": proofImageURL,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotOpen
	}
	return nil
}

// CompleteAndAward applies the approval transition and credits the resolver
// in one transaction. No reader ever sees the task completed without the
// points applied, or the points without the completion. A missing resolver
// row aborts the whole transaction.
func (r *TaskRepository) CompleteAndAward(ctx context.Context, id, resolverID uint, award int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ? AND status = ?", id, constants.StatusPendingVerification).
			Update("status", constants.StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNoPendingProof
		}

		res = tx.Model(&model.User{}).
			Where("id = ?", resolverID).
			Update("points", gorm.Expr("points + ?", award))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", id).Error
	})
}

func (r *TaskRepository) AddLike(ctx context.Context, userID, taskID uint) error {
	var existing model.Like
	err := r.db.WithContext(ctx).
		First(&existing, "user_id = ? AND task_id = ?", userID, taskID).Error
	if err == nil {
		return apperrors.ErrAlreadyLiked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(&model.Like{UserID: userID, TaskID: taskID}).Error
}

func (r *TaskRepository) RemoveLike(ctx context.Context, userID, taskID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND task_id = ?", userID, taskID).
		Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrLikeNotFound
	}
	return nil
}
