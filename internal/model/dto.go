package model

type StartVideoResponse struct {
	CompletionID     int64  `json:"completion_id" example:"42"`
	VideoTaskID      int64  `json:"video_task_id" example:"7"`
	WatchTimeSeconds int    `json:"watch_time_seconds" example:"0"`
	Status           string `json:"status" example:"in_progress"`
}

type ProgressRequest struct {
	WatchTimeSeconds int `json:"watch_time_seconds" binding:"min=0" example:"45"`
}

type ClaimRequest struct {
	VideoTaskID      int64            `json:"video_task_id" binding:"required" example:"7"`
	WatchTimeSeconds int              `json:"watch_time_seconds" binding:"min=0" example:"60"`
	Answers          map[int64]string `json:"answers,omitempty"`
}

type ClaimResponse struct {
	Success        bool   `json:"success" example:"true"`
	RewardEarned   string `json:"reward_earned" example:"10.00"`
	BonusAmount    string `json:"bonus_amount" example:"5.00"`
	NewBalance     string `json:"new_balance" example:"115.00"`
	VipLevel       int    `json:"vip_level" example:"1"`
	AlreadyClaimed bool   `json:"already_claimed,omitempty" example:"false"`
}

type DepositRequest struct {
	Amount string `json:"amount" binding:"required" example:"50.00"`
}

type DepositResponse struct {
	TransactionID int64  `json:"transaction_id" example:"12"`
	QRCodeID      string `json:"qr_code_id" example:"9e2b0c1a-7f3d-4c8e-9f55-4e0c5a1d2b3c"`
	QRCode        string `json:"qr_code" example:"00020101021226..."`
	QRCodeBase64  string `json:"qr_code_base64"`
	Status        string `json:"status" example:"pending"`
	Amount        string `json:"amount" example:"50.00"`
}

// WebhookPayload is the PIX provider callback body. Providers post either
// JSON or form-encoded bodies with the same field names.
type WebhookPayload struct {
	ID                        string `json:"id" form:"id"`
	Status                    string `json:"status" form:"status"`
	Value                     *int64 `json:"value,omitempty" form:"value"`
	EndToEndID                string `json:"end_to_end_id" form:"end_to_end_id"`
	PayerName                 string `json:"payer_name" form:"payer_name"`
	PayerNationalRegistration string `json:"payer_national_registration" form:"payer_national_registration"`
}

type WebhookResponse struct {
	Status  string `json:"status" example:"approved"`
	Message string `json:"message,omitempty" example:"Deposit credited"`
}

type WithdrawalRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Amount    string `json:"amount" binding:"required" example:"15.00"`
	PixKey    string `json:"pix_key" binding:"required" example:"user@example.com"`
}

type WithdrawalResponse struct {
	TransactionID int64  `json:"transaction_id" example:"31"`
	Status        string `json:"status" example:"pending"`
	Amount        string `json:"amount" example:"15.00"`
	NewBalance    string `json:"new_balance" example:"5.00"`
}

type VipPurchaseRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440001"`
	PlanID    int64  `json:"plan_id" binding:"required" example:"1"`
}

type VipPurchaseResponse struct {
	SubscriptionID int64  `json:"subscription_id" example:"3"`
	VipLevel       int    `json:"vip_level" example:"1"`
	ExpiresAt      string `json:"expires_at" example:"2026-11-14T00:00:00Z"`
	NewBalance     string `json:"new_balance" example:"20.00"`
}

type BalanceResponse struct {
	UserID               int64  `json:"user_id" example:"1"`
	Balance              string `json:"balance" example:"100.50"`
	VipLevel             int    `json:"vip_level" example:"0"`
	DailyTasksCompleted  int    `json:"daily_tasks_completed" example:"3"`
	DailyLimit           *int   `json:"daily_limit" example:"5"`
	ExtraVideosAvailable int    `json:"extra_videos_available" example:"0"`
	CanEarn              bool   `json:"can_earn" example:"true"`
}

type LedgerVerification struct {
	UserID     int64  `json:"user_id" example:"1"`
	Balance    string `json:"balance" example:"100.50"`
	LedgerSum  string `json:"ledger_sum" example:"100.50"`
	Consistent bool   `json:"consistent" example:"true"`
}

type LedgerListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type JobResponse struct {
	Job                  string `json:"job" example:"daily_reset"`
	UsersReset           int64  `json:"users_reset" example:"1520"`
	ExpiredSubscriptions int64  `json:"expired_subscriptions" example:"4"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"daily limit exceeded"`
	Code    string `json:"code,omitempty" example:"LIMIT_EXCEEDED"`
	Details string `json:"details,omitempty"`
}
