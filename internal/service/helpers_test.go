package service

import (
	"context"
	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/policy"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testPolicy() *policy.Policy {
	return policy.New(config.PolicyConfig{
		FreeDailyLimit:      5,
		FreeContentReward:   dec("6.00"),
		MinWatchPercent:     80,
		MinWithdrawal:       dec("15.00"),
		MinWithdrawVipLevel: 1,
		MinDeposit:          dec("10.00"),
	})
}

func inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

func vipSubscription(level int, multiplier string, dailyLimit *int) *model.VipSubscription {
	return &model.VipSubscription{
		ID:        3,
		UserID:    1,
		VipPlanID: int64(level),
		Status:    model.SubscriptionActive,
		StartedAt: fixedNow.AddDate(0, 0, -1),
		ExpiresAt: fixedNow.AddDate(0, 0, 29),
		Plan: &model.VipPlan{
			ID:               int64(level),
			Level:            level,
			Name:             "VIP",
			Price:            dec("29.90"),
			RewardMultiplier: dec(multiplier),
			DailyLimit:       dailyLimit,
			DurationDays:     30,
		},
	}
}

// applyWith emulates the ledger writer: it runs the guard against acc and credits delta.
func applyWith(acc *model.Account) func(context.Context, pgx.Tx, ledger.ApplyRequest) (*model.LedgerEntry, error) {
	return func(ctx context.Context, tx pgx.Tx, req ledger.ApplyRequest) (*model.LedgerEntry, error) {
		if req.Guard != nil {
			if err := req.Guard(acc); err != nil {
				return nil, err
			}
		}
		return &model.LedgerEntry{
			ID:           1,
			UserID:       req.UserID,
			EventID:      req.EventID,
			Delta:        req.Delta,
			BalanceAfter: acc.Balance.Add(req.Delta),
			Reason:       req.Reason,
		}, nil
	}
}
