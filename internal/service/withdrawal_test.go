package service

import (
	"context"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	ledgermocks "nextfund-ledger/mocks/ledger"
	notifymocks "nextfund-ledger/mocks/notify"
	"nextfund-ledger/mocks/repository"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const withdrawRequestID = "550e8400-e29b-41d4-a716-446655440000"

type withdrawalMocks struct {
	accountRepo *mocks.AccountRepository
	paymentRepo *mocks.PaymentRepository
	subRepo     *mocks.SubscriptionRepository
	writer      *ledgermocks.Writer
	notifier    *notifymocks.Notifier
	dbManager   *mocks.DBManager
}

func newWithdrawalService(t *testing.T) (*WithdrawalServiceImpl, *withdrawalMocks) {
	m := &withdrawalMocks{
		accountRepo: mocks.NewAccountRepository(t),
		paymentRepo: mocks.NewPaymentRepository(t),
		subRepo:     mocks.NewSubscriptionRepository(t),
		writer:      ledgermocks.NewWriter(t),
		notifier:    notifymocks.NewNotifier(t),
		dbManager:   mocks.NewDBManager(t),
	}
	svc := NewWithdrawalService(m.accountRepo, m.paymentRepo, m.subRepo, m.writer, testPolicy(), m.notifier, m.dbManager, zerolog.Nop()).(*WithdrawalServiceImpl)
	svc.now = clock
	return svc, m
}

func withdrawalRequest(amount string) *model.WithdrawalRequest {
	return &model.WithdrawalRequest{RequestID: withdrawRequestID, Amount: amount, PixKey: "user@example.com"}
}

func TestRequestWithdrawal_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalService(t)

	acc := &model.Account{ID: 1, Balance: dec("100.00"), VipLevel: 1}

	m.paymentRepo.On("GetByRequestID", ctx, int64(1), withdrawRequestID).Return(nil, model.ErrUnknownTransaction)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(vipSubscription(1, "1.5", nil), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(acc, nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.paymentRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TransactionWithdraw &&
			trans.Status == model.StatusPending &&
			*trans.RequestID == withdrawRequestID &&
			*trans.PixKey == "user@example.com" &&
			trans.Amount.Equal(dec("15.00"))
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Transaction).ID = 31
	}).Return(nil)
	m.writer.On("Apply", ctx, mock.Anything, mock.MatchedBy(func(req ledger.ApplyRequest) bool {
		return req.EventID == "withdraw:1:"+withdrawRequestID &&
			req.Reason == model.ReasonWithdraw &&
			req.Delta.Equal(dec("-15.00"))
	})).Return(applyWith(acc))
	m.notifier.On("Notify", ctx, mock.MatchedBy(func(n *model.Notification) bool {
		return n.Kind == model.NotifyWithdrawQueued
	})).Return(nil)

	resp, err := svc.RequestWithdrawal(ctx, 1, withdrawalRequest("15.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(31), resp.TransactionID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "85.00", resp.NewBalance)
}

func TestRequestWithdrawal_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		sub     *model.VipSubscription
		balance string
		amount  string
		wantErr error
	}{
		{name: "free tier", sub: nil, balance: "500.00", amount: "100.00", wantErr: model.ErrVipRequired},
		{name: "free tier below minimum still asks for vip", sub: nil, balance: "5.00", amount: "1.00", wantErr: model.ErrVipRequired},
		{name: "below minimum", sub: vipSubscription(1, "1.5", nil), balance: "500.00", amount: "14.99", wantErr: model.ErrBelowMinimumWithdrawal},
		{name: "insufficient balance", sub: vipSubscription(1, "1.5", nil), balance: "20.00", amount: "20.01", wantErr: model.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newWithdrawalService(t)

			m.paymentRepo.On("GetByRequestID", ctx, int64(1), withdrawRequestID).Return(nil, model.ErrUnknownTransaction)
			if tt.sub == nil {
				m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(nil, model.ErrNoActiveSubscription)
			} else {
				m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(tt.sub, nil)
			}
			m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec(tt.balance)}, nil)

			resp, err := svc.RequestWithdrawal(ctx, 1, withdrawalRequest(tt.amount))

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestWithdrawal_RepeatedRequestID(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalService(t)

	requestID := withdrawRequestID
	existing := &model.Transaction{ID: 31, UserID: 1, Type: model.TransactionWithdraw, Amount: dec("15.00"), Status: model.StatusPending, RequestID: &requestID}

	m.paymentRepo.On("GetByRequestID", ctx, int64(1), withdrawRequestID).Return(existing, nil)
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec("85.00")}, nil)

	resp, err := svc.RequestWithdrawal(ctx, 1, withdrawalRequest("15.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(31), resp.TransactionID)
	assert.Equal(t, "85.00", resp.NewBalance)
	m.writer.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestWithdrawal_ConcurrentDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, m := newWithdrawalService(t)

	requestID := withdrawRequestID
	existing := &model.Transaction{ID: 31, UserID: 1, Type: model.TransactionWithdraw, Amount: dec("15.00"), Status: model.StatusPending, RequestID: &requestID}

	m.paymentRepo.On("GetByRequestID", ctx, int64(1), withdrawRequestID).Return(nil, model.ErrUnknownTransaction).Once()
	m.paymentRepo.On("GetByRequestID", ctx, int64(1), withdrawRequestID).Return(existing, nil).Once()
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(vipSubscription(1, "1.5", nil), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec("100.00")}, nil).Once()
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec("85.00")}, nil).Once()
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.paymentRepo.On("InsertTransaction", ctx, mock.Anything, mock.Anything).Return(model.ErrDuplicateRequest)

	resp, err := svc.RequestWithdrawal(ctx, 1, withdrawalRequest("15.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(31), resp.TransactionID)
	assert.Equal(t, "85.00", resp.NewBalance)
}

func TestRequestWithdrawal_InvalidAmount(t *testing.T) {
	svc, _ := newWithdrawalService(t)

	for _, amount := range []string{"abc", "0", "-10.00", "15.001"} {
		_, err := svc.RequestWithdrawal(context.Background(), 1, withdrawalRequest(amount))
		assert.ErrorIs(t, err, model.ErrInvalidAmount, amount)
	}
}
