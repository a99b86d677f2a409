package model

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further status transition is allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusCancelled
}

type CompletionStatus string

const (
	CompletionInProgress CompletionStatus = "in_progress"
	CompletionCompleted  CompletionStatus = "completed"
)

type TaskStatus string

const (
	TaskActive   TaskStatus = "active"
	TaskInactive TaskStatus = "inactive"
)

type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionSuperseded SubscriptionStatus = "superseded"
	SubscriptionExpired    SubscriptionStatus = "expired"
)

// EntryReason classifies a ledger entry.
type EntryReason string

const (
	ReasonReward      EntryReason = "reward"
	ReasonDeposit     EntryReason = "deposit"
	ReasonWithdraw    EntryReason = "withdraw"
	ReasonVipPurchase EntryReason = "vip_purchase"
)

func ParseEntryReason(s string) (EntryReason, error) {
	switch s {
	case string(ReasonReward):
		return ReasonReward, nil
	case string(ReasonDeposit):
		return ReasonDeposit, nil
	case string(ReasonWithdraw):
		return ReasonWithdraw, nil
	case string(ReasonVipPurchase):
		return ReasonVipPurchase, nil
	default:
		return "", ErrInvalidReason
	}
}

func (r EntryReason) String() string {
	return string(r)
}

type NotificationKind string

const (
	NotifyRewardCredited   NotificationKind = "reward_credited"
	NotifyDepositApproved  NotificationKind = "deposit_approved"
	NotifyDepositCancelled NotificationKind = "deposit_cancelled"
	NotifyWithdrawQueued   NotificationKind = "withdraw_requested"
	NotifyVipActivated     NotificationKind = "vip_activated"
)
