package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the balance-bearing view of a user.
type Account struct {
	ID                   int64           `json:"id"`
	Balance              decimal.Decimal `json:"balance"`
	VipLevel             int             `json:"vip_level"`
	DailyTasksCompleted  int             `json:"daily_tasks_completed"`
	ExtraVideosAvailable int             `json:"extra_videos_available"`
	Version              int             `json:"version"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type VideoTask struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	RewardAmount     decimal.Decimal `json:"reward_amount"`
	VipLevelRequired int             `json:"vip_level_required"`
	DurationSeconds  int             `json:"duration_seconds"`
	Status           TaskStatus      `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type QuizQuestion struct {
	ID            int64  `json:"id"`
	VideoTaskID   int64  `json:"video_task_id"`
	CorrectOption string `json:"-"`
}

type VideoCompletion struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	VideoTaskID      int64            `json:"video_task_id"`
	WatchTimeSeconds int              `json:"watch_time_seconds"`
	Status           CompletionStatus `json:"status"`
	StartedAt        time.Time        `json:"started_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

type Transaction struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Method      string            `json:"method"`
	QRCodeID    *string           `json:"qr_code_id,omitempty"`
	RequestID   *string           `json:"request_id,omitempty"`
	PixKey      *string           `json:"pix_key,omitempty"`
	EndToEndID  *string           `json:"end_to_end_id,omitempty"`
	PayerName   *string           `json:"payer_name,omitempty"`
	PayerTaxID  *string           `json:"payer_national_registration,omitempty"`
	ProcessedAt *time.Time        `json:"processed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PayerInfo is what the gateway reports about who paid a charge.
type PayerInfo struct {
	Name       string
	TaxID      string
	EndToEndID string
}

type LedgerEntry struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	EventID      string          `json:"event_id"`
	Delta        decimal.Decimal `json:"delta"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Reason       EntryReason     `json:"reason"`
	CreatedAt    time.Time       `json:"created_at"`
}

type VipPlan struct {
	ID               int64           `json:"id"`
	Level            int             `json:"level"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	RewardMultiplier decimal.Decimal `json:"reward_multiplier"`
	DailyLimit       *int            `json:"daily_limit"`
	DurationDays     int             `json:"duration_days"`
}

// VipSubscription carries its plan so tier checks need a single lookup.
type VipSubscription struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	VipPlanID int64              `json:"vip_plan_id"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt time.Time          `json:"started_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	Plan      *VipPlan           `json:"plan,omitempty"`
}

// JobRun is the audit record written once per scheduled job invocation.
type JobRun struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	RowsAffected  int64     `json:"rows_affected"`
	ExpiredVipSub int64     `json:"expired_subscriptions"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Notification is the user-facing event emitted after a committed balance change.
type Notification struct {
	ID        string           `json:"id"`
	UserID    int64            `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Amount    string           `json:"amount"`
	Balance   string           `json:"balance,omitempty"`
	Reference string           `json:"reference,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
