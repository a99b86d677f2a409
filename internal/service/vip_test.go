package service

import (
	"context"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/model"
	ledgermocks "nextfund-ledger/mocks/ledger"
	notifymocks "nextfund-ledger/mocks/notify"
	"nextfund-ledger/mocks/repository"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const vipRequestID = "550e8400-e29b-41d4-a716-446655440001"

type vipMocks struct {
	accountRepo *mocks.AccountRepository
	subRepo     *mocks.SubscriptionRepository
	writer      *ledgermocks.Writer
	notifier    *notifymocks.Notifier
	dbManager   *mocks.DBManager
}

func newVipService(t *testing.T) (*VipServiceImpl, *vipMocks) {
	m := &vipMocks{
		accountRepo: mocks.NewAccountRepository(t),
		subRepo:     mocks.NewSubscriptionRepository(t),
		writer:      ledgermocks.NewWriter(t),
		notifier:    notifymocks.NewNotifier(t),
		dbManager:   mocks.NewDBManager(t),
	}
	svc := NewVipService(m.accountRepo, m.subRepo, m.writer, m.notifier, m.dbManager, zerolog.Nop()).(*VipServiceImpl)
	svc.now = clock
	return svc, m
}

func bronzePlan() *model.VipPlan {
	return &model.VipPlan{ID: 1, Level: 1, Name: "Bronze", Price: dec("29.90"), RewardMultiplier: dec("1.5"), DurationDays: 30}
}

func TestPurchasePlan_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newVipService(t)

	acc := &model.Account{ID: 1, Balance: dec("50.00")}
	expires := fixedNow.AddDate(0, 0, 30)

	m.subRepo.On("GetPlan", ctx, int64(1)).Return(bronzePlan(), nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.writer.On("Apply", ctx, mock.Anything, mock.MatchedBy(func(req ledger.ApplyRequest) bool {
		return req.EventID == "vip:1:"+vipRequestID &&
			req.Reason == model.ReasonVipPurchase &&
			req.Delta.Equal(dec("-29.90"))
	})).Return(applyWith(acc))
	m.subRepo.On("SupersedeActive", ctx, int64(1), mock.Anything).Return(int64(0), nil)
	m.subRepo.On("InsertSubscription", ctx, mock.MatchedBy(func(sub *model.VipSubscription) bool {
		return sub.UserID == 1 &&
			sub.VipPlanID == 1 &&
			sub.Status == model.SubscriptionActive &&
			sub.StartedAt.Equal(fixedNow) &&
			sub.ExpiresAt.Equal(expires)
	}), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.VipSubscription).ID = 3
	}).Return(nil)
	m.accountRepo.On("SetVipLevel", ctx, int64(1), 1, mock.Anything).Return(nil)
	m.notifier.On("Notify", ctx, mock.MatchedBy(func(n *model.Notification) bool {
		return n.Kind == model.NotifyVipActivated && n.Balance == "20.10"
	})).Return(nil)

	resp, err := svc.PurchasePlan(ctx, 1, &model.VipPurchaseRequest{RequestID: vipRequestID, PlanID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SubscriptionID)
	assert.Equal(t, 1, resp.VipLevel)
	assert.Equal(t, "20.10", resp.NewBalance)
	assert.Equal(t, expires.Format(time.RFC3339), resp.ExpiresAt)
	m.accountRepo.AssertCalled(t, "SetVipLevel", ctx, int64(1), 1, mock.Anything)
}

func TestPurchasePlan_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc, m := newVipService(t)

	m.subRepo.On("GetPlan", ctx, int64(1)).Return(bronzePlan(), nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.writer.On("Apply", ctx, mock.Anything, mock.Anything).Return(nil, model.ErrInsufficientBalance)

	resp, err := svc.PurchasePlan(ctx, 1, &model.VipPurchaseRequest{RequestID: vipRequestID, PlanID: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	m.subRepo.AssertNotCalled(t, "SupersedeActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchasePlan_UnknownPlan(t *testing.T) {
	ctx := context.Background()
	svc, m := newVipService(t)

	m.subRepo.On("GetPlan", ctx, int64(9)).Return(nil, model.ErrPlanNotFound)

	_, err := svc.PurchasePlan(ctx, 1, &model.VipPurchaseRequest{RequestID: vipRequestID, PlanID: 9})

	assert.ErrorIs(t, err, model.ErrPlanNotFound)
}

func TestPurchasePlan_RetriedRequest(t *testing.T) {
	ctx := context.Background()
	svc, m := newVipService(t)

	m.subRepo.On("GetPlan", ctx, int64(1)).Return(bronzePlan(), nil)
	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.writer.On("Apply", ctx, mock.Anything, mock.Anything).Return(nil, model.ErrDuplicateEvent)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(vipSubscription(1, "1.5", nil), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec("20.10")}, nil)

	resp, err := svc.PurchasePlan(ctx, 1, &model.VipPurchaseRequest{RequestID: vipRequestID, PlanID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.SubscriptionID)
	assert.Equal(t, "20.10", resp.NewBalance)
}

func TestListPlans(t *testing.T) {
	ctx := context.Background()
	svc, m := newVipService(t)

	m.subRepo.On("ListPlans", ctx).Return([]*model.VipPlan{bronzePlan()}, nil)

	plans, err := svc.ListPlans(ctx)

	require.NoError(t, err)
	assert.Len(t, plans, 1)
}
