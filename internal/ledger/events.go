package ledger

import "fmt"

// Event ids are the idempotency keys of balance-changing events.

// RewardEventID is one-shot per (user, task): a video pays out at most once.
func RewardEventID(userID, taskID int64) string {
	return fmt.Sprintf("reward:%d:%d", userID, taskID)
}

// DepositEventID is keyed by the gateway charge id.
func DepositEventID(qrCodeID string) string {
	return "pix:" + qrCodeID
}

func WithdrawEventID(userID int64, requestID string) string {
	return fmt.Sprintf("withdraw:%d:%s", userID, requestID)
}

func VipPurchaseEventID(userID int64, requestID string) string {
	return fmt.Sprintf("vip:%d:%s", userID, requestID)
}
