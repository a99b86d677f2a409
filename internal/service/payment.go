package service

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/gateway"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	MethodPix = "pix"

	WebhookStatusIgnored   = "ignored"
	WebhookStatusProcessed = "already_processed"
)

type PaymentServiceImpl struct {
	accountRepo repository.AccountRepository
	paymentRepo repository.PaymentRepository
	idempotency repository.IdempotencyStore
	writer      ledger.Writer
	gateway     gateway.Client
	policy      *policy.Policy
	notifier    notify.Notifier
	dbManager   repository.DBManager
	webhookURL  string
	logger      zerolog.Logger
	now         func() time.Time
}

func NewPaymentService(
	accountRepo repository.AccountRepository,
	paymentRepo repository.PaymentRepository,
	idempotency repository.IdempotencyStore,
	writer ledger.Writer,
	gatewayClient gateway.Client,
	p *policy.Policy,
	notifier notify.Notifier,
	dbManager repository.DBManager,
	webhookURL string,
	logger zerolog.Logger,
) PaymentService {
	return &PaymentServiceImpl{
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		idempotency: idempotency,
		writer:      writer,
		gateway:     gatewayClient,
		policy:      p,
		notifier:    notifier,
		dbManager:   dbManager,
		webhookURL:  webhookURL,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateDeposit records a pending deposit and requests the PIX charge. The gateway
// call runs outside any database transaction; on failure the deposit stays pending.
func (s *PaymentServiceImpl) CreateDeposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.DepositResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(s.policy.MinDeposit()) {
		return nil, fmt.Errorf("%w: minimum deposit is %s", model.ErrInvalidAmount, s.policy.MinDeposit().StringFixed(2))
	}

	if _, err := s.accountRepo.GetAccount(ctx, userID); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	trans := &model.Transaction{
		UserID: userID,
		Type:   model.TransactionDeposit,
		Amount: amount,
		Status: model.StatusPending,
		Method: MethodPix,
	}
	if err := s.paymentRepo.InsertTransaction(ctx, trans); err != nil {
		return nil, fmt.Errorf("insert deposit: %w", err)
	}

	charge, err := s.gateway.CreateCharge(ctx, gateway.ChargeRequest{
		Amount:     amount,
		WebhookURL: s.webhookURL,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Int64("transaction_id", trans.ID).Msg("pix charge failed, deposit left pending")
		return nil, err
	}

	if err := s.paymentRepo.SetGatewayReference(ctx, trans.ID, charge.ID); err != nil {
		return nil, fmt.Errorf("set gateway reference: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("transaction_id", trans.ID).
		Str("qr_code_id", charge.ID).
		Str("amount", amount.StringFixed(2)).
		Msg("deposit created")

	return &model.DepositResponse{
		TransactionID: trans.ID,
		QRCodeID:      charge.ID,
		QRCode:        charge.QRCode,
		QRCodeBase64:  charge.QRCodeBase64,
		Status:        string(model.StatusPending),
		Amount:        amount.StringFixed(2),
	}, nil
}

// HandleWebhook applies a provider confirmation at most once. The stored deposit
// amount is credited; a differing amount in the callback is only logged.
func (s *PaymentServiceImpl) HandleWebhook(ctx context.Context, payload *model.WebhookPayload) (*model.WebhookResponse, error) {
	conf, err := gateway.Normalize(payload)
	if err != nil {
		return nil, err
	}

	if conf.IsNoop() {
		event := s.logger.Info()
		if conf.Provider == gateway.StatusUnrecognized {
			event = s.logger.Warn()
		}
		event.Str("qr_code_id", conf.TransactionRef).Str("status", conf.RawStatus).Msg("webhook acknowledged without state change")
		return &model.WebhookResponse{Status: WebhookStatusIgnored, Message: "No state change"}, nil
	}

	var result *model.WebhookResponse
	var notification *model.Notification

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.paymentRepo.GetByGatewayRefForUpdate(ctx, conf.TransactionRef, tx)
		if err != nil {
			return err
		}
		if trans.Type != model.TransactionDeposit {
			return fmt.Errorf("%w: %s is not a deposit", model.ErrUnknownTransaction, conf.TransactionRef)
		}

		if trans.Status.IsTerminal() {
			s.logger.Info().Str("qr_code_id", conf.TransactionRef).Str("status", trans.Status.String()).Msg("webhook for settled transaction")
			result = &model.WebhookResponse{Status: WebhookStatusProcessed, Message: "Transaction already " + trans.Status.String()}
			return nil
		}

		eventID := ledger.DepositEventID(conf.TransactionRef)

		switch conf.Status {
		case model.StatusApproved:
			if conf.Amount != nil && !conf.Amount.Equal(trans.Amount) {
				s.logger.Warn().
					Str("qr_code_id", conf.TransactionRef).
					Str("expected", trans.Amount.StringFixed(2)).
					Str("reported", conf.Amount.StringFixed(2)).
					Msg("webhook amount differs from deposit, crediting stored amount")
			}

			entry, err := s.writer.Apply(ctx, tx, ledger.ApplyRequest{
				UserID:  trans.UserID,
				Delta:   trans.Amount,
				Reason:  model.ReasonDeposit,
				EventID: eventID,
			})
			if err != nil {
				return err
			}
			if err := s.transition(ctx, trans, model.StatusApproved, &conf.Payer, tx); err != nil {
				return err
			}

			s.logger.Info().
				Int64("user_id", trans.UserID).
				Str("qr_code_id", conf.TransactionRef).
				Str("amount", trans.Amount.StringFixed(2)).
				Str("new_balance", entry.BalanceAfter.StringFixed(2)).
				Msg("deposit approved")

			result = &model.WebhookResponse{Status: string(model.StatusApproved), Message: "Deposit credited"}
			notification = &model.Notification{
				ID:        eventID,
				UserID:    trans.UserID,
				Kind:      model.NotifyDepositApproved,
				Amount:    trans.Amount.StringFixed(2),
				Balance:   entry.BalanceAfter.StringFixed(2),
				Reference: conf.TransactionRef,
				CreatedAt: s.now(),
			}

		case model.StatusCancelled:
			isNew, err := s.idempotency.RecordIfNew(ctx, eventID, tx)
			if err != nil {
				return fmt.Errorf("record event: %w", err)
			}
			if !isNew {
				return fmt.Errorf("%w: %s", model.ErrDuplicateEvent, eventID)
			}
			if err := s.transition(ctx, trans, model.StatusCancelled, &conf.Payer, tx); err != nil {
				return err
			}

			s.logger.Info().Int64("user_id", trans.UserID).Str("qr_code_id", conf.TransactionRef).Msg("deposit cancelled")

			result = &model.WebhookResponse{Status: string(model.StatusCancelled), Message: "Deposit expired"}
			notification = &model.Notification{
				ID:        eventID,
				UserID:    trans.UserID,
				Kind:      model.NotifyDepositCancelled,
				Amount:    trans.Amount.StringFixed(2),
				Reference: conf.TransactionRef,
				CreatedAt: s.now(),
			}
		}
		return nil
	})

	if errors.Is(err, model.ErrDuplicateEvent) {
		s.logger.Info().Str("qr_code_id", conf.TransactionRef).Msg("webhook already processed (detected after rollback)")
		return &model.WebhookResponse{Status: WebhookStatusProcessed, Message: "Transaction already processed"}, nil
	}
	if err != nil {
		return nil, err
	}

	deliver(ctx, s.notifier, s.logger, notification)
	return result, nil
}

func (s *PaymentServiceImpl) transition(ctx context.Context, trans *model.Transaction, to model.TransactionStatus, payer *model.PayerInfo, tx pgx.Tx) error {
	changed, err := s.paymentRepo.TransitionStatus(ctx, trans.ID, model.StatusPending, to, payer, tx)
	if err != nil {
		return fmt.Errorf("transition status: %w", err)
	}
	if !changed {
		return fmt.Errorf("%w: transaction %d no longer pending", model.ErrDuplicateEvent, trans.ID)
	}
	return nil
}
