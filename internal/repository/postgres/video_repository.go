package postgres

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.VideoRepository = (*VideoRepositoryImpl)(nil)

// VideoRepositoryImpl is the PostgreSQL implementation of VideoRepository
type VideoRepositoryImpl struct {
	*TransactionManager
}

func NewVideoRepository(pool *pgxpool.Pool) repository.VideoRepository {
	return &VideoRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const completionColumns = `id, user_id, video_task_id, watch_time_seconds, status, started_at, updated_at, completed_at`

func scanCompletion(row pgx.Row) (*model.VideoCompletion, error) {
	c := &model.VideoCompletion{}
	if err := row.Scan(&c.ID, &c.UserID, &c.VideoTaskID, &c.WatchTimeSeconds, &c.Status, &c.StartedAt, &c.UpdatedAt, &c.CompletedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// GetTask retrieves a video task
func (r *VideoRepositoryImpl) GetTask(ctx context.Context, taskID int64, tx ...pgx.Tx) (*model.VideoTask, error) {
	query := `
        SELECT id, title, reward_amount, vip_level_required, duration_seconds, status, created_at
        FROM video_tasks WHERE id = $1`

	task := &model.VideoTask{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, taskID).
		Scan(&task.ID, &task.Title, &task.RewardAmount, &task.VipLevelRequired, &task.DurationSeconds, &task.Status, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTaskNotFound
		}
		return nil, storageErr("get video task", err)
	}
	return task, nil
}

// GetQuizQuestions retrieves quiz questions of a task
func (r *VideoRepositoryImpl) GetQuizQuestions(ctx context.Context, taskID int64, tx ...pgx.Tx) ([]*model.QuizQuestion, error) {
	query := `SELECT id, video_task_id, correct_option FROM video_quiz_questions WHERE video_task_id = $1 ORDER BY id`

	rows, err := r.getExecutor(tx...).Query(ctx, query, taskID)
	if err != nil {
		return nil, storageErr("query quiz questions", err)
	}
	defer rows.Close()

	var questions []*model.QuizQuestion
	for rows.Next() {
		q := &model.QuizQuestion{}
		if err := rows.Scan(&q.ID, &q.VideoTaskID, &q.CorrectOption); err != nil {
			return nil, fmt.Errorf("failed to scan quiz question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// StartCompletion returns the completion for (user, task), creating it when absent
func (r *VideoRepositoryImpl) StartCompletion(ctx context.Context, userID, taskID int64) (*model.VideoCompletion, error) {
	query := `
        INSERT INTO video_completions (user_id, video_task_id)
        VALUES ($1, $2)
        ON CONFLICT ON CONSTRAINT video_completions_user_task_key
        DO UPDATE SET updated_at = video_completions.updated_at
        RETURNING ` + completionColumns

	c, err := scanCompletion(r.pool.QueryRow(ctx, query, userID, taskID))
	if err != nil {
		return nil, storageErr("start completion", err)
	}
	return c, nil
}

// GetCompletionForUpdate retrieves a completion with row-level lock
func (r *VideoRepositoryImpl) GetCompletionForUpdate(ctx context.Context, completionID int64, tx pgx.Tx) (*model.VideoCompletion, error) {
	query := `SELECT ` + completionColumns + ` FROM video_completions WHERE id = $1 FOR UPDATE`

	c, err := scanCompletion(tx.QueryRow(ctx, query, completionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCompletionNotFound
		}
		return nil, storageErr("get completion for update", err)
	}
	return c, nil
}

// UpdateProgress raises watch time; it never lowers it and never touches a completed row
func (r *VideoRepositoryImpl) UpdateProgress(ctx context.Context, completionID int64, watchSeconds int, tx ...pgx.Tx) (*model.VideoCompletion, error) {
	query := `
        UPDATE video_completions
        SET watch_time_seconds = GREATEST(watch_time_seconds, $1),
            updated_at = NOW()
        WHERE id = $2 AND status = 'in_progress'
        RETURNING ` + completionColumns

	c, err := scanCompletion(r.getExecutor(tx...).QueryRow(ctx, query, watchSeconds, completionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCompletionNotFound
		}
		return nil, storageErr("update progress", err)
	}
	return c, nil
}

// MarkCompleted finalizes a completion if it is still in progress
func (r *VideoRepositoryImpl) MarkCompleted(ctx context.Context, completionID int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE video_completions
        SET status = 'completed', completed_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND status = 'in_progress'`

	result, err := tx.Exec(ctx, query, completionID)
	if err != nil {
		return false, storageErr("mark completion completed", err)
	}
	return result.RowsAffected() == 1, nil
}
