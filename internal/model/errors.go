package model

import "errors"

var (
	ErrDuplicateEvent         = errors.New("duplicate event")
	ErrInsufficientWatchTime  = errors.New("insufficient watch time")
	ErrQuizIncomplete         = errors.New("quiz not completed")
	ErrLimitExceeded          = errors.New("daily limit exceeded")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrBelowMinimumWithdrawal = errors.New("amount below minimum withdrawal")
	ErrVipRequired            = errors.New("vip level required")
	ErrUnknownTransaction     = errors.New("unknown transaction")
	ErrGateway                = errors.New("payment gateway error")
	ErrStorageUnavailable     = errors.New("storage unavailable")

	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidReason        = errors.New("invalid ledger reason")
	ErrInvalidWebhook       = errors.New("invalid webhook payload")
	ErrUserNotFound         = errors.New("user not found")
	ErrTaskNotFound         = errors.New("video task not found")
	ErrTaskInactive         = errors.New("video task inactive")
	ErrCompletionNotFound   = errors.New("video completion not found")
	ErrPlanNotFound         = errors.New("vip plan not found")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrDuplicateRequest     = errors.New("duplicate request")
)

