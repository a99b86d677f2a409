package handler

import (
	"errors"
	"net/http"
	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups the business services the API exposes
type Services struct {
	Reward     service.RewardService
	Payment    service.PaymentService
	Withdrawal service.WithdrawalService
	Vip        service.VipService
	Account    service.AccountService
	Job        service.JobService
}

type Handler struct {
	rewardService     service.RewardService
	paymentService    service.PaymentService
	withdrawalService service.WithdrawalService
	vipService        service.VipService
	accountService    service.AccountService
	jobService        service.JobService
	subscriber        notify.Subscriber
	auth              config.AuthConfig
	logger            zerolog.Logger
}

func NewHandler(services Services, subscriber notify.Subscriber, auth config.AuthConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		rewardService:     services.Reward,
		paymentService:    services.Payment,
		withdrawalService: services.Withdrawal,
		vipService:        services.Vip,
		accountService:    services.Account,
		jobService:        services.Job,
		subscriber:        subscriber,
		auth:              auth,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Gateway callbacks and scheduler hooks authenticate with shared tokens
	router.POST("/webhooks/pix", SharedTokenMiddleware(webhookTokenHeader, h.auth.WebhookSecret, true), h.PixWebhook)
	router.POST("/internal/jobs/daily-reset", SharedTokenMiddleware(jobTokenHeader, h.auth.JobToken, false), h.RunDailyReset)

	// API routes
	v1 := router.Group("/api/v1", AuthMiddleware(h.auth.JWTSecret))

	v1.POST("/videos/:id/start", h.StartVideo)

	completions := v1.Group("/completions")
	completions.PUT("/:id/progress", h.UpdateProgress)
	completions.POST("/:id/claim", h.ClaimCompletion)

	v1.POST("/deposits", h.CreateDeposit)
	v1.POST("/withdrawals", h.RequestWithdrawal)

	vip := v1.Group("/vip")
	vip.GET("/plans", h.ListPlans)
	vip.POST("/purchase", h.PurchasePlan)

	me := v1.Group("/me")
	me.GET("/balance", h.GetBalance)
	me.GET("/ledger", h.GetLedger)
	me.GET("/ledger/verify", h.VerifyLedger)
	me.GET("/transactions", h.GetTransactions)
	me.GET("/events", h.StreamEvents)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidWebhook):
		status = http.StatusBadRequest
		code = "INVALID_WEBHOOK"
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrBelowMinimumWithdrawal):
		status = http.StatusBadRequest
		code = "BELOW_MINIMUM"
	case errors.Is(err, model.ErrVipRequired):
		status = http.StatusForbidden
		code = "VIP_REQUIRED"
		resp.Details = "Upgrade to a VIP plan to continue"
	case errors.Is(err, model.ErrLimitExceeded):
		status = http.StatusForbidden
		code = "LIMIT_EXCEEDED"
		resp.Details = "Daily limit reached, upgrade to a VIP plan to keep earning"
	case errors.Is(err, model.ErrInsufficientWatchTime):
		status = http.StatusUnprocessableEntity
		code = "INSUFFICIENT_WATCH_TIME"
	case errors.Is(err, model.ErrQuizIncomplete):
		status = http.StatusUnprocessableEntity
		code = "QUIZ_INCOMPLETE"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrTaskNotFound):
		status = http.StatusNotFound
		code = "TASK_NOT_FOUND"
	case errors.Is(err, model.ErrCompletionNotFound):
		status = http.StatusNotFound
		code = "COMPLETION_NOT_FOUND"
	case errors.Is(err, model.ErrPlanNotFound):
		status = http.StatusNotFound
		code = "PLAN_NOT_FOUND"
	case errors.Is(err, model.ErrUnknownTransaction):
		status = http.StatusNotFound
		code = "UNKNOWN_TRANSACTION"
	case errors.Is(err, model.ErrTaskInactive):
		status = http.StatusConflict
		code = "TASK_INACTIVE"
	case errors.Is(err, model.ErrDuplicateRequest), errors.Is(err, model.ErrDuplicateEvent):
		status = http.StatusConflict
		code = "DUPLICATE_REQUEST"
	case errors.Is(err, model.ErrGateway):
		status = http.StatusBadGateway
		code = "GATEWAY_ERROR"
	case errors.Is(err, model.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		code = "STORAGE_UNAVAILABLE"
	}
	resp.Code = code

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Int("status", status).Msg("request failed")
		resp.Error = http.StatusText(status)
	}

	c.JSON(status, resp)
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
