package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"task-board.community/task-board/internal/cache"
	"task-board.community/task-board/internal/constants"
	apperrors "task-board.community/task-board/internal/errors"
	"task-board.community/task-board/internal/metrics"
	model "task-board.community/task-board/internal/models"
	repository "task-board.community/task-board/internal/repositories"
	"task-board.community/task-board/internal/storage"
)

var log = logrus.StandardLogger()

// TaskService owns the task lifecycle. A task is created open; a volunteer
// moves it to pending_verification by submitting proof; the author closes it
// by approving, which credits the volunteer. No transition skips a state and
// none goes backwards.
type TaskService struct {
	tasks       *repository.TaskRepository
	images      storage.ImageStore
	leaderboard cache.LeaderboardCache

	awardPoints  int
	feedPageSize int
}

func NewTaskService(
	tasks *repository.TaskRepository,
	images storage.ImageStore,
	leaderboard cache.LeaderboardCache,
	awardPoints int,
	feedPageSize int,
) *TaskService {
	return &TaskService{
		tasks:        tasks,
		images:       images,
		leaderboard:  leaderboard,
		awardPoints:  awardPoints,
		feedPageSize: feedPageSize,
	}
}

type CreateTaskInput struct {
	ImageURL      string
	ImagePublicID string
	Caption       string
	Latitude      float64
	Longitude     float64
}

func (s *TaskService) CreateTask(ctx context.Context, authorID uint, in CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		Caption:       in.Caption,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		AuthorID:      authorID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"author_id": authorID,
	}).Info("task created")

	return s.tasks.FindByIDWithRelations(ctx, task.ID)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.tasks.FindByIDWithRelations(ctx, id)
}

// Feed returns tasks that still need attention, newest first. A
// non-positive limit falls back to the configured page size.
func (s *TaskService) Feed(ctx context.Context, offset, limit int) ([]model.Task, error) {
	if limit <= 0 {
		limit = s.feedPageSize
	}
	return s.tasks.Feed(ctx, offset, limit)
}

// SubmitProof moves an open task to pending_verification on behalf of a
// volunteer. The author cannot claim their own task. Of two racing
// volunteers exactly one wins; the loser gets the same conflict a stale
// status would have produced.
func (s *TaskService) SubmitProof(ctx context.Context, taskID, callerID uint, proofImageURL string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if task.AuthorID == callerID {
		return apperrors.ErrOwnTask
	}
	if !task.Status.CanTransitionTo(constants.StatusPendingVerification) {
		return apperrors.ErrTaskNotOpen
	}

	if err := s.tasks.MarkPendingVerification(ctx, taskID, callerID, proofImageURL); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"task_id":     taskID,
		"resolver_id": callerID,
	}).Info("proof submitted")

	return nil
}

// Approve closes a pending task and credits the resolver with the award in
// one transaction. Only the author may approve. A repeated approval fails
// on the status guard, which is what makes the credit exactly-once.
func (s *TaskService) Approve(ctx context.Context, taskID, callerID uint) (int, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return 0, err
	}

	if task.AuthorID != callerID {
		return 0, apperrors.ErrNotAuthor
	}
	if !task.Status.CanTransitionTo(constants.StatusCompleted) {
		return 0, apperrors.ErrNoPendingProof
	}
	if task.ResolvedByID == nil {
		return 0, apperrors.ErrNoPendingProof
	}

	resolverID := *task.ResolvedByID
	if err := s.tasks.CompleteAndAward(ctx, taskID, resolverID, s.awardPoints); err != nil {
		return 0, err
	}

	metrics.PointsAwarded.Add(float64(s.awardPoints))
	s.invalidateLeaderboard(ctx)

	log.WithFields(logrus.Fields{
		"task_id":     taskID,
		"resolver_id": resolverID,
		"points":      s.awardPoints,
	}).Info("task approved, points awarded")

	return s.awardPoints, nil
}

// DeleteTask removes a task and releases its stored image. This is an
// administrative operation for the author, not a lifecycle transition.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, callerID uint) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if task.AuthorID != callerID {
		return apperrors.ErrDeleteForbidden
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}

	if task.ImagePublicID != "" && s.images != nil {
		if err := s.images.Remove(ctx, task.ImagePublicID); err != nil {
			log.WithError(err).WithField("public_id", task.ImagePublicID).
				Warn("failed to remove stored image")
		}
	}

	return nil
}

func (s *TaskService) Like(ctx context.Context, taskID, callerID uint) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddLike(ctx, callerID, taskID)
}

func (s *TaskService) Unlike(ctx context.Context, taskID, callerID uint) error {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.RemoveLike(ctx, callerID, taskID)
}

func (s *TaskService) invalidateLeaderboard(ctx context.Context) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("failed to invalidate leaderboard cache")
	}
}
