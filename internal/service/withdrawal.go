package service

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type WithdrawalServiceImpl struct {
	accountRepo repository.AccountRepository
	paymentRepo repository.PaymentRepository
	subRepo     repository.SubscriptionRepository
	writer      ledger.Writer
	policy      *policy.Policy
	notifier    notify.Notifier
	dbManager   repository.DBManager
	logger      zerolog.Logger
	now         func() time.Time
}

func NewWithdrawalService(
	accountRepo repository.AccountRepository,
	paymentRepo repository.PaymentRepository,
	subRepo repository.SubscriptionRepository,
	writer ledger.Writer,
	p *policy.Policy,
	notifier notify.Notifier,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WithdrawalService {
	return &WithdrawalServiceImpl{
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		writer:      writer,
		policy:      p,
		notifier:    notifier,
		dbManager:   dbManager,
		logger:      logger,
		now:         time.Now,
	}
}

// RequestWithdrawal debits the balance and queues a pending withdraw transaction.
// Repeating a request_id returns the transaction created by the first call.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, userID int64, req *model.WithdrawalRequest) (*model.WithdrawalResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.GetByRequestID(ctx, userID, req.RequestID)
	if err == nil {
		return s.replay(ctx, existing)
	}
	if !errors.Is(err, model.ErrUnknownTransaction) {
		return nil, fmt.Errorf("get withdrawal by request id: %w", err)
	}

	tier, err := resolveTier(ctx, s.subRepo, s.policy, userID, s.now())
	if err != nil {
		return nil, err
	}

	acc, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if decision := s.policy.CanWithdraw(acc, tier, amount); !decision.OK() {
		s.logger.Info().Int64("user_id", userID).Str("amount", amount.StringFixed(2)).Str("reason", string(decision.Reason)).Msg("withdrawal rejected")
		return nil, decision.Err()
	}

	var result *model.WithdrawalResponse
	var notification *model.Notification

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		requestID := req.RequestID
		pixKey := req.PixKey
		trans := &model.Transaction{
			UserID:    userID,
			Type:      model.TransactionWithdraw,
			Amount:    amount,
			Status:    model.StatusPending,
			Method:    MethodPix,
			RequestID: &requestID,
			PixKey:    &pixKey,
		}
		if err := s.paymentRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return err
		}

		entry, err := s.writer.Apply(ctx, tx, ledger.ApplyRequest{
			UserID:  userID,
			Delta:   amount.Neg(),
			Reason:  model.ReasonWithdraw,
			EventID: ledger.WithdrawEventID(userID, req.RequestID),
			Guard: func(locked *model.Account) error {
				return s.policy.CanWithdraw(locked, tier, amount).Err()
			},
		})
		if err != nil {
			return err
		}

		s.logger.Info().
			Int64("user_id", userID).
			Int64("transaction_id", trans.ID).
			Str("amount", amount.StringFixed(2)).
			Str("new_balance", entry.BalanceAfter.StringFixed(2)).
			Msg("withdrawal requested")

		result = &model.WithdrawalResponse{
			TransactionID: trans.ID,
			Status:        string(model.StatusPending),
			Amount:        amount.StringFixed(2),
			NewBalance:    entry.BalanceAfter.StringFixed(2),
		}
		notification = &model.Notification{
			ID:        entry.EventID,
			UserID:    userID,
			Kind:      model.NotifyWithdrawQueued,
			Amount:    amount.StringFixed(2),
			Balance:   entry.BalanceAfter.StringFixed(2),
			Reference: req.RequestID,
			CreatedAt: s.now(),
		}
		return nil
	})

	// Same request_id raced in from a retry
	if errors.Is(err, model.ErrDuplicateRequest) || errors.Is(err, model.ErrDuplicateEvent) {
		existing, getErr := s.paymentRepo.GetByRequestID(ctx, userID, req.RequestID)
		if getErr != nil {
			return nil, fmt.Errorf("get withdrawal after duplicate: %w", getErr)
		}
		return s.replay(ctx, existing)
	}
	if err != nil {
		return nil, err
	}

	deliver(ctx, s.notifier, s.logger, notification)
	return result, nil
}

func (s *WithdrawalServiceImpl) replay(ctx context.Context, trans *model.Transaction) (*model.WithdrawalResponse, error) {
	acc, err := s.accountRepo.GetAccount(ctx, trans.UserID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	s.logger.Info().Int64("user_id", trans.UserID).Int64("transaction_id", trans.ID).Msg("withdrawal already requested")

	return &model.WithdrawalResponse{
		TransactionID: trans.ID,
		Status:        trans.Status.String(),
		Amount:        trans.Amount.StringFixed(2),
		NewBalance:    acc.Balance.StringFixed(2),
	}, nil
}
