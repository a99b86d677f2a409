package service

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type VipServiceImpl struct {
	accountRepo repository.AccountRepository
	subRepo     repository.SubscriptionRepository
	writer      ledger.Writer
	notifier    notify.Notifier
	dbManager   repository.DBManager
	logger      zerolog.Logger
	now         func() time.Time
}

func NewVipService(
	accountRepo repository.AccountRepository,
	subRepo repository.SubscriptionRepository,
	writer ledger.Writer,
	notifier notify.Notifier,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) VipService {
	return &VipServiceImpl{
		accountRepo: accountRepo,
		subRepo:     subRepo,
		writer:      writer,
		notifier:    notifier,
		dbManager:   dbManager,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *VipServiceImpl) ListPlans(ctx context.Context) ([]*model.VipPlan, error) {
	plans, err := s.subRepo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// PurchasePlan pays for a plan from the balance. The new subscription starts now
// and supersedes the active one.
func (s *VipServiceImpl) PurchasePlan(ctx context.Context, userID int64, req *model.VipPurchaseRequest) (*model.VipPurchaseResponse, error) {
	plan, err := s.subRepo.GetPlan(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if !plan.Price.IsPositive() {
		return nil, fmt.Errorf("%w: plan %d has no price", model.ErrInvalidAmount, plan.ID)
	}

	now := s.now()
	var result *model.VipPurchaseResponse
	var notification *model.Notification

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		entry, err := s.writer.Apply(ctx, tx, ledger.ApplyRequest{
			UserID:  userID,
			Delta:   plan.Price.Neg(),
			Reason:  model.ReasonVipPurchase,
			EventID: ledger.VipPurchaseEventID(userID, req.RequestID),
		})
		if err != nil {
			return err
		}

		if _, err := s.subRepo.SupersedeActive(ctx, userID, tx); err != nil {
			return fmt.Errorf("supersede subscription: %w", err)
		}

		sub := &model.VipSubscription{
			UserID:    userID,
			VipPlanID: plan.ID,
			Status:    model.SubscriptionActive,
			StartedAt: now,
			ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		}
		if err := s.subRepo.InsertSubscription(ctx, sub, tx); err != nil {
			return fmt.Errorf("insert subscription: %w", err)
		}

		if err := s.accountRepo.SetVipLevel(ctx, userID, plan.Level, tx); err != nil {
			return fmt.Errorf("set vip level: %w", err)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Int64("plan_id", plan.ID).
			Int("vip_level", plan.Level).
			Str("price", plan.Price.StringFixed(2)).
			Time("expires_at", sub.ExpiresAt).
			Msg("vip plan purchased")

		result = &model.VipPurchaseResponse{
			SubscriptionID: sub.ID,
			VipLevel:       plan.Level,
			ExpiresAt:      sub.ExpiresAt.UTC().Format(time.RFC3339),
			NewBalance:     entry.BalanceAfter.StringFixed(2),
		}
		notification = &model.Notification{
			ID:        entry.EventID,
			UserID:    userID,
			Kind:      model.NotifyVipActivated,
			Amount:    plan.Price.StringFixed(2),
			Balance:   entry.BalanceAfter.StringFixed(2),
			Reference: plan.Name,
			CreatedAt: now,
		}
		return nil
	})

	// Retried purchase: report the subscription the first call created
	if errors.Is(err, model.ErrDuplicateEvent) {
		return s.replay(ctx, userID, now)
	}
	if err != nil {
		return nil, err
	}

	deliver(ctx, s.notifier, s.logger, notification)
	return result, nil
}

func (s *VipServiceImpl) replay(ctx context.Context, userID int64, now time.Time) (*model.VipPurchaseResponse, error) {
	sub, err := s.subRepo.GetActiveSubscription(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("get active subscription after duplicate: %w", err)
	}
	acc, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account after duplicate: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Int64("subscription_id", sub.ID).Msg("vip purchase already processed")

	return &model.VipPurchaseResponse{
		SubscriptionID: sub.ID,
		VipLevel:       sub.Plan.Level,
		ExpiresAt:      sub.ExpiresAt.UTC().Format(time.RFC3339),
		NewBalance:     acc.Balance.StringFixed(2),
	}, nil
}
