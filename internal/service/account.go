package service

import (
	"context"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type AccountServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	paymentRepo repository.PaymentRepository
	subRepo     repository.SubscriptionRepository
	policy      *policy.Policy
	logger      zerolog.Logger
	now         func() time.Time
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	paymentRepo repository.PaymentRepository,
	subRepo repository.SubscriptionRepository,
	p *policy.Policy,
	logger zerolog.Logger,
) AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		policy:      p,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	acc, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	tier, err := resolveTier(ctx, s.subRepo, s.policy, userID, s.now())
	if err != nil {
		return nil, err
	}

	return &model.BalanceResponse{
		UserID:               userID,
		Balance:              acc.Balance.StringFixed(2),
		VipLevel:             tier.Level,
		DailyTasksCompleted:  acc.DailyTasksCompleted,
		DailyLimit:           tier.DailyLimit,
		ExtraVideosAvailable: acc.ExtraVideosAvailable,
		CanEarn:              s.policy.CanEarn(acc, tier).Allowed,
	}, nil
}

func (s *AccountServiceImpl) GetLedger(ctx context.Context, userID int64, limit, offset int) (*model.LedgerListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	entries, err := s.ledgerRepo.GetEntriesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get ledger entries: %w", err)
	}

	return &model.LedgerListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *AccountServiceImpl) GetTransactions(ctx context.Context, userID int64, limit, offset int) (*model.TransactionListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	transactions, err := s.paymentRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	return &model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// VerifyBalance checks that the stored balance equals the sum of the user's ledger deltas
func (s *AccountServiceImpl) VerifyBalance(ctx context.Context, userID int64) (*model.LedgerVerification, error) {
	acc, err := s.accountRepo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	sum, err := s.ledgerRepo.SumDeltas(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum ledger deltas: %w", err)
	}

	consistent := acc.Balance.Equal(sum)
	if !consistent {
		s.logger.Warn().
			Int64("user_id", userID).
			Str("balance", acc.Balance.StringFixed(2)).
			Str("ledger_sum", sum.StringFixed(2)).
			Msg("balance does not match ledger")
	}

	return &model.LedgerVerification{
		UserID:     userID,
		Balance:    acc.Balance.StringFixed(2),
		LedgerSum:  sum.StringFixed(2),
		Consistent: consistent,
	}, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
