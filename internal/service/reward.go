package service

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type RewardServiceImpl struct {
	accountRepo repository.AccountRepository
	videoRepo   repository.VideoRepository
	subRepo     repository.SubscriptionRepository
	writer      ledger.Writer
	policy      *policy.Policy
	notifier    notify.Notifier
	dbManager   repository.DBManager
	logger      zerolog.Logger
	now         func() time.Time
}

func NewRewardService(
	accountRepo repository.AccountRepository,
	videoRepo repository.VideoRepository,
	subRepo repository.SubscriptionRepository,
	writer ledger.Writer,
	p *policy.Policy,
	notifier notify.Notifier,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) RewardService {
	return &RewardServiceImpl{
		accountRepo: accountRepo,
		videoRepo:   videoRepo,
		subRepo:     subRepo,
		writer:      writer,
		policy:      p,
		notifier:    notifier,
		dbManager:   dbManager,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *RewardServiceImpl) StartVideo(ctx context.Context, userID, taskID int64) (*model.StartVideoResponse, error) {
	task, err := s.videoRepo.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task.Status != model.TaskActive {
		return nil, model.ErrTaskInactive
	}

	tier, err := resolveTier(ctx, s.subRepo, s.policy, userID, s.now())
	if err != nil {
		return nil, err
	}
	if tier.Level < task.VipLevelRequired {
		return nil, fmt.Errorf("%w: task requires level %d", model.ErrVipRequired, task.VipLevelRequired)
	}

	completion, err := s.videoRepo.StartCompletion(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("start completion: %w", err)
	}

	return completionResponse(completion), nil
}

func (s *RewardServiceImpl) UpdateProgress(ctx context.Context, userID, completionID int64, req *model.ProgressRequest) (*model.StartVideoResponse, error) {
	var result *model.StartVideoResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		completion, err := s.lockOwnCompletion(ctx, userID, completionID, tx)
		if err != nil {
			return err
		}

		if completion.Status == model.CompletionCompleted {
			result = completionResponse(completion)
			return nil
		}

		task, err := s.videoRepo.GetTask(ctx, completion.VideoTaskID, tx)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}

		watched := capWatchTime(req.WatchTimeSeconds, task, completion, s.now())
		updated, err := s.videoRepo.UpdateProgress(ctx, completion.ID, watched, tx)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}

		result = completionResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ClaimCompletion validates the completion against persisted progress and credits
// the reward. A second claim for the same (user, task) succeeds without crediting.
func (s *RewardServiceImpl) ClaimCompletion(ctx context.Context, userID, completionID int64, req *model.ClaimRequest) (*model.ClaimResponse, error) {
	var result *model.ClaimResponse
	var notification *model.Notification
	now := s.now()

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		completion, err := s.lockOwnCompletion(ctx, userID, completionID, tx)
		if err != nil {
			return err
		}
		if req.VideoTaskID != 0 && req.VideoTaskID != completion.VideoTaskID {
			return fmt.Errorf("%w: completion %d belongs to another task", model.ErrCompletionNotFound, completionID)
		}

		tier, err := resolveTier(ctx, s.subRepo, s.policy, userID, now, tx)
		if err != nil {
			return err
		}

		if completion.Status == model.CompletionCompleted {
			acc, err := s.accountRepo.GetAccount(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get account: %w", err)
			}
			s.logger.Info().Int64("user_id", userID).Int64("completion_id", completionID).Msg("reward already claimed")
			result = alreadyClaimed(acc, tier)
			return nil
		}

		task, err := s.videoRepo.GetTask(ctx, completion.VideoTaskID, tx)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task.Status != model.TaskActive {
			return model.ErrTaskInactive
		}

		// Client-reported time only counts up to what the clock allows
		if watched := capWatchTime(req.WatchTimeSeconds, task, completion, now); watched > completion.WatchTimeSeconds {
			completion, err = s.videoRepo.UpdateProgress(ctx, completion.ID, watched, tx)
			if err != nil {
				return fmt.Errorf("update progress: %w", err)
			}
		}

		acc, err := s.accountRepo.GetAccount(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account: %w", err)
		}
		if err := s.policy.CanEarn(acc, tier).Err(); err != nil {
			return err
		}

		quiz, err := s.videoRepo.GetQuizQuestions(ctx, task.ID, tx)
		if err != nil {
			return fmt.Errorf("get quiz: %w", err)
		}

		reward, err := s.policy.ComputeReward(task, tier, completion, quiz, req.Answers)
		if err != nil {
			return err
		}

		var decision policy.EarnDecision
		entry, err := s.writer.Apply(ctx, tx, ledger.ApplyRequest{
			UserID:  userID,
			Delta:   reward.Total(),
			Reason:  model.ReasonReward,
			EventID: ledger.RewardEventID(userID, task.ID),
			// Re-checked against the locked row so concurrent claims cannot pass the limit
			Guard: func(locked *model.Account) error {
				decision = s.policy.CanEarn(locked, tier)
				return decision.Err()
			},
		})
		if err != nil {
			return err
		}

		if err := s.accountRepo.RecordTaskCompletion(ctx, userID, decision.UsesExtra, tx); err != nil {
			return fmt.Errorf("record task completion: %w", err)
		}

		marked, err := s.videoRepo.MarkCompleted(ctx, completion.ID, tx)
		if err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
		if !marked {
			return fmt.Errorf("%w: completion %d", model.ErrDuplicateEvent, completion.ID)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Int64("video_task_id", task.ID).
			Str("base", reward.Base.StringFixed(2)).
			Str("bonus", reward.Bonus.StringFixed(2)).
			Bool("uses_extra", decision.UsesExtra).
			Str("new_balance", entry.BalanceAfter.StringFixed(2)).
			Msg("reward credited")

		result = &model.ClaimResponse{
			Success:      true,
			RewardEarned: reward.Total().StringFixed(2),
			BonusAmount:  reward.Bonus.StringFixed(2),
			NewBalance:   entry.BalanceAfter.StringFixed(2),
			VipLevel:     tier.Level,
		}
		notification = &model.Notification{
			ID:        entry.EventID,
			UserID:    userID,
			Kind:      model.NotifyRewardCredited,
			Amount:    reward.Total().StringFixed(2),
			Balance:   entry.BalanceAfter.StringFixed(2),
			Reference: task.Title,
			CreatedAt: now,
		}
		return nil
	})

	// A concurrent claim committed first
	if errors.Is(err, model.ErrDuplicateEvent) {
		acc, getErr := s.accountRepo.GetAccount(ctx, userID)
		if getErr != nil {
			return nil, fmt.Errorf("get account after duplicate: %w", getErr)
		}
		tier, tierErr := resolveTier(ctx, s.subRepo, s.policy, userID, now)
		if tierErr != nil {
			return nil, tierErr
		}
		s.logger.Info().Int64("user_id", userID).Int64("completion_id", completionID).Msg("reward already claimed (detected after rollback)")
		return alreadyClaimed(acc, tier), nil
	}
	if err != nil {
		return nil, err
	}

	deliver(ctx, s.notifier, s.logger, notification)
	return result, nil
}

func (s *RewardServiceImpl) lockOwnCompletion(ctx context.Context, userID, completionID int64, tx pgx.Tx) (*model.VideoCompletion, error) {
	completion, err := s.videoRepo.GetCompletionForUpdate(ctx, completionID, tx)
	if err != nil {
		return nil, fmt.Errorf("get completion: %w", err)
	}
	if completion.UserID != userID {
		return nil, model.ErrCompletionNotFound
	}
	return completion, nil
}

// capWatchTime bounds reported watch time by the task duration and by the time
// elapsed since the completion was started.
func capWatchTime(reported int, task *model.VideoTask, completion *model.VideoCompletion, now time.Time) int {
	watched := reported
	if elapsed := int(now.Sub(completion.StartedAt) / time.Second); watched > elapsed {
		watched = elapsed
	}
	if watched > task.DurationSeconds {
		watched = task.DurationSeconds
	}
	if watched < 0 {
		watched = 0
	}
	return watched
}

func completionResponse(c *model.VideoCompletion) *model.StartVideoResponse {
	return &model.StartVideoResponse{
		CompletionID:     c.ID,
		VideoTaskID:      c.VideoTaskID,
		WatchTimeSeconds: c.WatchTimeSeconds,
		Status:           string(c.Status),
	}
}

func alreadyClaimed(acc *model.Account, tier policy.Tier) *model.ClaimResponse {
	return &model.ClaimResponse{
		Success:        true,
		RewardEarned:   "0.00",
		BonusAmount:    "0.00",
		NewBalance:     acc.Balance.StringFixed(2),
		VipLevel:       tier.Level,
		AlreadyClaimed: true,
	}
}
