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

type rewardMocks struct {
	accountRepo *mocks.AccountRepository
	videoRepo   *mocks.VideoRepository
	subRepo     *mocks.SubscriptionRepository
	writer      *ledgermocks.Writer
	notifier    *notifymocks.Notifier
	dbManager   *mocks.DBManager
}

func newRewardService(t *testing.T) (*RewardServiceImpl, *rewardMocks) {
	m := &rewardMocks{
		accountRepo: mocks.NewAccountRepository(t),
		videoRepo:   mocks.NewVideoRepository(t),
		subRepo:     mocks.NewSubscriptionRepository(t),
		writer:      ledgermocks.NewWriter(t),
		notifier:    notifymocks.NewNotifier(t),
		dbManager:   mocks.NewDBManager(t),
	}
	svc := NewRewardService(m.accountRepo, m.videoRepo, m.subRepo, m.writer, testPolicy(), m.notifier, m.dbManager, zerolog.Nop()).(*RewardServiceImpl)
	svc.now = clock
	return svc, m
}

func freeTask() *model.VideoTask {
	return &model.VideoTask{ID: 7, Title: "Intro", RewardAmount: dec("10.00"), VipLevelRequired: 0, DurationSeconds: 60, Status: model.TaskActive}
}

func openCompletion(startedAgo time.Duration) *model.VideoCompletion {
	return &model.VideoCompletion{
		ID:          42,
		UserID:      1,
		VideoTaskID: 7,
		Status:      model.CompletionInProgress,
		StartedAt:   fixedNow.Add(-startedAgo),
	}
}

func watched(c *model.VideoCompletion, seconds int) *model.VideoCompletion {
	cp := *c
	cp.WatchTimeSeconds = seconds
	return &cp
}

func TestClaimCompletion_FreeTier_FlatRate(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := openCompletion(10 * time.Minute)
	acc := &model.Account{ID: 1, Balance: dec("100.00"), DailyTasksCompleted: 2}

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.videoRepo.On("UpdateProgress", ctx, int64(42), 60, mock.Anything).Return(watched(completion, 60), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(acc, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return(nil, nil)
	m.writer.On("Apply", ctx, mock.Anything, mock.MatchedBy(func(req ledger.ApplyRequest) bool {
		return req.UserID == 1 &&
			req.EventID == "reward:1:7" &&
			req.Reason == model.ReasonReward &&
			req.Delta.Equal(dec("6.00"))
	})).Return(applyWith(acc))
	m.accountRepo.On("RecordTaskCompletion", ctx, int64(1), false, mock.Anything).Return(nil)
	m.videoRepo.On("MarkCompleted", ctx, int64(42), mock.Anything).Return(true, nil)
	m.notifier.On("Notify", ctx, mock.MatchedBy(func(n *model.Notification) bool {
		return n.ID == "reward:1:7" && n.Kind == model.NotifyRewardCredited && n.Amount == "6.00"
	})).Return(nil)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.AlreadyClaimed)
	assert.Equal(t, "6.00", resp.RewardEarned)
	assert.Equal(t, "0.00", resp.BonusAmount)
	assert.Equal(t, "106.00", resp.NewBalance)
	assert.Equal(t, 0, resp.VipLevel)
}

func TestClaimCompletion_VipBonus(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)
	task := &model.VideoTask{ID: 7, Title: "Premium", RewardAmount: dec("10.00"), VipLevelRequired: 1, DurationSeconds: 60, Status: model.TaskActive}
	acc := &model.Account{ID: 1, Balance: dec("0.00"), VipLevel: 1, DailyTasksCompleted: 40}

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(vipSubscription(1, "1.5", nil), nil)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(task, nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(acc, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return(nil, nil)
	m.writer.On("Apply", ctx, mock.Anything, mock.MatchedBy(func(req ledger.ApplyRequest) bool {
		return req.Delta.Equal(dec("15.00"))
	})).Return(applyWith(acc))
	m.accountRepo.On("RecordTaskCompletion", ctx, int64(1), false, mock.Anything).Return(nil)
	m.videoRepo.On("MarkCompleted", ctx, int64(42), mock.Anything).Return(true, nil)
	m.notifier.On("Notify", ctx, mock.Anything).Return(nil)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	require.NoError(t, err)
	assert.Equal(t, "15.00", resp.RewardEarned)
	assert.Equal(t, "5.00", resp.BonusAmount)
	assert.Equal(t, "15.00", resp.NewBalance)
	assert.Equal(t, 1, resp.VipLevel)
}

func TestClaimCompletion_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)
	completion.Status = model.CompletionCompleted

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(&model.Account{ID: 1, Balance: dec("106.00")}, nil)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.AlreadyClaimed)
	assert.Equal(t, "0.00", resp.RewardEarned)
	assert.Equal(t, "106.00", resp.NewBalance)
	m.writer.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimCompletion_ConcurrentClaimDetectedAfterRollback(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)
	acc := &model.Account{ID: 1, Balance: dec("100.00")}

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(acc, nil).Once()
	m.accountRepo.On("GetAccount", ctx, int64(1)).Return(&model.Account{ID: 1, Balance: dec("106.00")}, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return(nil, nil)
	m.writer.On("Apply", ctx, mock.Anything, mock.Anything).Return(nil, model.ErrDuplicateEvent)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyClaimed)
	assert.Equal(t, "106.00", resp.NewBalance)
}

func TestClaimCompletion_LimitExceeded(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(&model.Account{ID: 1, Balance: dec("30.00"), DailyTasksCompleted: 5}, nil)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrLimitExceeded)
}

func TestClaimCompletion_ConsumesExtraVideo(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)
	acc := &model.Account{ID: 1, Balance: dec("30.00"), DailyTasksCompleted: 5, ExtraVideosAvailable: 2}

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(acc, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return(nil, nil)
	m.writer.On("Apply", ctx, mock.Anything, mock.Anything).Return(applyWith(acc))
	m.accountRepo.On("RecordTaskCompletion", ctx, int64(1), true, mock.Anything).Return(nil)
	m.videoRepo.On("MarkCompleted", ctx, int64(42), mock.Anything).Return(true, nil)
	m.notifier.On("Notify", ctx, mock.Anything).Return(nil)

	resp, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	require.NoError(t, err)
	assert.Equal(t, "36.00", resp.NewBalance)
}

func TestClaimCompletion_WatchTimeCappedByClock(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	// Started 30s ago: a claim of 60s only counts 30s, below 80% of 60s
	completion := openCompletion(30 * time.Second)

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.videoRepo.On("UpdateProgress", ctx, int64(42), 30, mock.Anything).Return(watched(completion, 30), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(&model.Account{ID: 1, Balance: dec("0.00")}, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return(nil, nil)

	_, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	assert.ErrorIs(t, err, model.ErrInsufficientWatchTime)
}

func TestClaimCompletion_QuizIncomplete(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := watched(openCompletion(time.Hour), 60)

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow, mock.Anything).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.accountRepo.On("GetAccount", ctx, int64(1), mock.Anything).Return(&model.Account{ID: 1}, nil)
	m.videoRepo.On("GetQuizQuestions", ctx, int64(7), mock.Anything).Return([]*model.QuizQuestion{
		{ID: 1, VideoTaskID: 7, CorrectOption: "a"},
		{ID: 2, VideoTaskID: 7, CorrectOption: "c"},
	}, nil)

	_, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60, Answers: map[int64]string{1: "a"}})

	assert.ErrorIs(t, err, model.ErrQuizIncomplete)
}

func TestClaimCompletion_OtherUsersCompletion(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := openCompletion(time.Hour)
	completion.UserID = 2

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)

	_, err := svc.ClaimCompletion(ctx, 1, 42, &model.ClaimRequest{VideoTaskID: 7, WatchTimeSeconds: 60})

	assert.ErrorIs(t, err, model.ErrCompletionNotFound)
}

func TestStartVideo(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	m.videoRepo.On("GetTask", ctx, int64(7)).Return(freeTask(), nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(nil, model.ErrNoActiveSubscription)
	m.videoRepo.On("StartCompletion", ctx, int64(1), int64(7)).Return(openCompletion(0), nil)

	resp, err := svc.StartVideo(ctx, 1, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.CompletionID)
	assert.Equal(t, "in_progress", resp.Status)
}

func TestStartVideo_LockedContent(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	task := freeTask()
	task.VipLevelRequired = 2

	m.videoRepo.On("GetTask", ctx, int64(7)).Return(task, nil)
	m.subRepo.On("GetActiveSubscription", ctx, int64(1), fixedNow).Return(vipSubscription(1, "1.5", nil), nil)

	_, err := svc.StartVideo(ctx, 1, 7)

	assert.ErrorIs(t, err, model.ErrVipRequired)
}

func TestStartVideo_InactiveTask(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	task := freeTask()
	task.Status = model.TaskInactive
	m.videoRepo.On("GetTask", ctx, int64(7)).Return(task, nil)

	_, err := svc.StartVideo(ctx, 1, 7)

	assert.ErrorIs(t, err, model.ErrTaskInactive)
}

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()
	svc, m := newRewardService(t)

	completion := openCompletion(45 * time.Second)

	m.dbManager.On("WithTransaction", ctx, mock.Anything).Return(inTx)
	m.videoRepo.On("GetCompletionForUpdate", ctx, int64(42), mock.Anything).Return(completion, nil)
	m.videoRepo.On("GetTask", ctx, int64(7), mock.Anything).Return(freeTask(), nil)
	m.videoRepo.On("UpdateProgress", ctx, int64(42), 45, mock.Anything).Return(watched(completion, 45), nil)

	resp, err := svc.UpdateProgress(ctx, 1, 42, &model.ProgressRequest{WatchTimeSeconds: 50})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.WatchTimeSeconds)
}

func TestCapWatchTime(t *testing.T) {
	task := &model.VideoTask{DurationSeconds: 60}
	completion := &model.VideoCompletion{StartedAt: fixedNow.Add(-2 * time.Minute)}

	assert.Equal(t, 60, capWatchTime(500, task, completion, fixedNow))
	assert.Equal(t, 48, capWatchTime(48, task, completion, fixedNow))
	assert.Equal(t, 0, capWatchTime(-5, task, completion, fixedNow))

	recent := &model.VideoCompletion{StartedAt: fixedNow.Add(-20 * time.Second)}
	assert.Equal(t, 20, capWatchTime(60, task, recent, fixedNow))
}
