package service

import (
	"context"
	"nextfund-ledger/internal/model"
)

// RewardService drives the watch-to-earn flow
type RewardService interface {
	// StartVideo opens (or returns) the completion record for a task
	StartVideo(ctx context.Context, userID, taskID int64) (*model.StartVideoResponse, error)
	// UpdateProgress persists client-reported watch time
	UpdateProgress(ctx context.Context, userID, completionID int64, req *model.ProgressRequest) (*model.StartVideoResponse, error)
	// ClaimCompletion credits the reward for a finished video exactly once
	ClaimCompletion(ctx context.Context, userID, completionID int64, req *model.ClaimRequest) (*model.ClaimResponse, error)
}

// PaymentService handles PIX deposits
type PaymentService interface {
	CreateDeposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.DepositResponse, error)
	// HandleWebhook applies a gateway confirmation to its pending transaction
	HandleWebhook(ctx context.Context, payload *model.WebhookPayload) (*model.WebhookResponse, error)
}

// WithdrawalService queues withdrawal requests
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, userID int64, req *model.WithdrawalRequest) (*model.WithdrawalResponse, error)
}

// VipService sells VIP plans
type VipService interface {
	ListPlans(ctx context.Context) ([]*model.VipPlan, error)
	PurchasePlan(ctx context.Context, userID int64, req *model.VipPurchaseRequest) (*model.VipPurchaseResponse, error)
}

// AccountService exposes read-only account views
type AccountService interface {
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	GetLedger(ctx context.Context, userID int64, limit, offset int) (*model.LedgerListResponse, error)
	GetTransactions(ctx context.Context, userID int64, limit, offset int) (*model.TransactionListResponse, error)
	// VerifyBalance compares the stored balance with the sum of ledger deltas
	VerifyBalance(ctx context.Context, userID int64) (*model.LedgerVerification, error)
}

// JobService runs scheduled maintenance
type JobService interface {
	// ResetDailyLimits zeroes daily counters and expires lapsed subscriptions
	ResetDailyLimits(ctx context.Context) (*model.JobResponse, error)
}
