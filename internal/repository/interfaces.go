package repository

import (
	"context"
	"nextfund-ledger/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// IdempotencyStore records processed event identifiers
type IdempotencyStore interface {
	// RecordIfNew inserts eventID and reports whether it was seen for the first time
	RecordIfNew(ctx context.Context, eventID string, tx pgx.Tx) (bool, error)
}

// AccountRepository defines operations on user balances and daily counters
type AccountRepository interface {
	// GetAccount retrieves an account without locking
	GetAccount(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountForUpdate retrieves an account with row-level lock (must be in transaction)
	GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// UpdateBalance updates the user balance
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error

	// RecordTaskCompletion increments the daily counter, or consumes one extra video when useExtra is set
	RecordTaskCompletion(ctx context.Context, userID int64, useExtra bool, tx pgx.Tx) error

	// SetVipLevel updates the denormalized tier of a user
	SetVipLevel(ctx context.Context, userID int64, level int, tx pgx.Tx) error

	// ResetDailyTasks zeroes daily_tasks_completed for every user in one statement
	ResetDailyTasks(ctx context.Context, tx pgx.Tx) (int64, error)
}

// LedgerRepository defines append-only ledger operations
type LedgerRepository interface {
	// InsertEntry appends a ledger entry
	InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// GetEntriesByUser retrieves paginated ledger entries for a user, newest first
	GetEntriesByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)

	// SumDeltas returns the sum of all deltas for a user
	SumDeltas(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)
}

// VideoRepository defines operations for video tasks and completions
type VideoRepository interface {
	// GetTask retrieves a video task
	GetTask(ctx context.Context, taskID int64, tx ...pgx.Tx) (*model.VideoTask, error)

	// GetQuizQuestions retrieves the quiz attached to a task, if any
	GetQuizQuestions(ctx context.Context, taskID int64, tx ...pgx.Tx) ([]*model.QuizQuestion, error)

	// StartCompletion creates the in_progress completion for (user, task) or returns the existing one
	StartCompletion(ctx context.Context, userID, taskID int64) (*model.VideoCompletion, error)

	// GetCompletionForUpdate retrieves a completion with row-level lock (must be in transaction)
	GetCompletionForUpdate(ctx context.Context, completionID int64, tx pgx.Tx) (*model.VideoCompletion, error)

	// UpdateProgress raises watch time monotonically while the completion is in progress
	UpdateProgress(ctx context.Context, completionID int64, watchSeconds int, tx ...pgx.Tx) (*model.VideoCompletion, error)

	// MarkCompleted transitions in_progress -> completed, reporting whether the row changed
	MarkCompleted(ctx context.Context, completionID int64, tx pgx.Tx) (bool, error)
}

// PaymentRepository defines operations for deposit/withdraw transactions
type PaymentRepository interface {
	// InsertTransaction creates a new transaction record
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error

	// SetGatewayReference attaches the gateway charge id to a pending deposit
	SetGatewayReference(ctx context.Context, id int64, qrCodeID string) error

	// GetByGatewayRefForUpdate retrieves a transaction by qr_code_id with row-level lock
	GetByGatewayRefForUpdate(ctx context.Context, qrCodeID string, tx pgx.Tx) (*model.Transaction, error)

	// GetByRequestID retrieves a transaction created for a client request id
	GetByRequestID(ctx context.Context, userID int64, requestID string) (*model.Transaction, error)

	// TransitionStatus moves a transaction from one status to another, reporting whether the row changed
	TransitionStatus(ctx context.Context, id int64, from, to model.TransactionStatus, payer *model.PayerInfo, tx pgx.Tx) (bool, error)

	// GetTransactionsByUser retrieves paginated transactions for a user
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// SubscriptionRepository defines operations for VIP plans and subscriptions
type SubscriptionRepository interface {
	// GetActiveSubscription retrieves the authoritative subscription (with plan) at the given instant
	GetActiveSubscription(ctx context.Context, userID int64, now time.Time, tx ...pgx.Tx) (*model.VipSubscription, error)

	// GetPlan retrieves a VIP plan
	GetPlan(ctx context.Context, planID int64, tx ...pgx.Tx) (*model.VipPlan, error)

	// ListPlans retrieves all VIP plans ordered by level
	ListPlans(ctx context.Context) ([]*model.VipPlan, error)

	// SupersedeActive marks the user's active subscription as superseded
	SupersedeActive(ctx context.Context, userID int64, tx pgx.Tx) (int64, error)

	// InsertSubscription creates a new active subscription
	InsertSubscription(ctx context.Context, sub *model.VipSubscription, tx pgx.Tx) error

	// ExpireLapsed marks lapsed active subscriptions expired and drops vip_level for users left without one
	ExpireLapsed(ctx context.Context, now time.Time, tx pgx.Tx) (int64, error)
}

// JobRunRepository stores scheduled job audit records
type JobRunRepository interface {
	// InsertJobRun appends one audit record per invocation
	InsertJobRun(ctx context.Context, run *model.JobRun, tx pgx.Tx) error
}
