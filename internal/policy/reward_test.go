package policy

import (
	"testing"

	"nextfund-ledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeReward_FreeContentPaysFlatRate(t *testing.T) {
	p := testPolicy(false)
	task := &model.VideoTask{ID: 1, RewardAmount: decimal.RequireFromString("12.00"), VipLevelRequired: 0, DurationSeconds: 60}
	completion := &model.VideoCompletion{WatchTimeSeconds: 60}

	reward, err := p.ComputeReward(task, p.TierFor(nil), completion, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "6.00", reward.Base.StringFixed(2))
	assert.True(t, reward.Bonus.IsZero())
	assert.Equal(t, "6.00", reward.Total().StringFixed(2))
}

func TestComputeReward_VipBonus(t *testing.T) {
	p := testPolicy(false)
	task := &model.VideoTask{ID: 2, RewardAmount: decimal.RequireFromString("10.00"), VipLevelRequired: 1, DurationSeconds: 100}
	completion := &model.VideoCompletion{WatchTimeSeconds: 100}

	reward, err := p.ComputeReward(task, vipTier(1, "1.5", nil), completion, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "10.00", reward.Base.StringFixed(2))
	assert.Equal(t, "5.00", reward.Bonus.StringFixed(2))
	assert.Equal(t, "15.00", reward.Total().StringFixed(2))
}

func TestComputeReward_VipContentLockedForLowerTier(t *testing.T) {
	p := testPolicy(false)
	task := &model.VideoTask{ID: 3, RewardAmount: decimal.RequireFromString("10.00"), VipLevelRequired: 2, DurationSeconds: 100}

	_, err := p.ComputeReward(task, vipTier(1, "1.5", nil), &model.VideoCompletion{WatchTimeSeconds: 100}, nil, nil)

	assert.ErrorIs(t, err, model.ErrVipRequired)
}

func TestComputeReward_WatchTimeGate(t *testing.T) {
	p := testPolicy(false)
	task := &model.VideoTask{ID: 4, RewardAmount: decimal.RequireFromString("12.00"), DurationSeconds: 100}

	_, err := p.ComputeReward(task, p.TierFor(nil), &model.VideoCompletion{WatchTimeSeconds: 79}, nil, nil)
	assert.ErrorIs(t, err, model.ErrInsufficientWatchTime)

	_, err = p.ComputeReward(task, p.TierFor(nil), &model.VideoCompletion{WatchTimeSeconds: 80}, nil, nil)
	assert.NoError(t, err)
}

func TestComputeReward_WatchTimeGateOddDuration(t *testing.T) {
	p := testPolicy(false)
	// 80% of 45s is 36s
	task := &model.VideoTask{ID: 5, DurationSeconds: 45}

	_, err := p.ComputeReward(task, p.TierFor(nil), &model.VideoCompletion{WatchTimeSeconds: 35}, nil, nil)
	assert.ErrorIs(t, err, model.ErrInsufficientWatchTime)

	_, err = p.ComputeReward(task, p.TierFor(nil), &model.VideoCompletion{WatchTimeSeconds: 36}, nil, nil)
	assert.NoError(t, err)
}

func TestComputeReward_Quiz(t *testing.T) {
	task := &model.VideoTask{ID: 6, DurationSeconds: 10}
	completion := &model.VideoCompletion{WatchTimeSeconds: 10}
	quiz := []*model.QuizQuestion{
		{ID: 11, VideoTaskID: 6, CorrectOption: "a"},
		{ID: 12, VideoTaskID: 6, CorrectOption: "c"},
	}

	t.Run("unanswered question is rejected", func(t *testing.T) {
		p := testPolicy(false)
		_, err := p.ComputeReward(task, p.TierFor(nil), completion, quiz, map[int64]string{11: "a"})
		assert.ErrorIs(t, err, model.ErrQuizIncomplete)
	})

	t.Run("wrong answers accepted when correctness is not required", func(t *testing.T) {
		p := testPolicy(false)
		_, err := p.ComputeReward(task, p.TierFor(nil), completion, quiz, map[int64]string{11: "b", 12: "b"})
		assert.NoError(t, err)
	})

	t.Run("wrong answer rejected when correctness is required", func(t *testing.T) {
		p := testPolicy(true)
		_, err := p.ComputeReward(task, p.TierFor(nil), completion, quiz, map[int64]string{11: "a", 12: "b"})
		assert.ErrorIs(t, err, model.ErrQuizIncomplete)
	})

	t.Run("all correct with correctness required", func(t *testing.T) {
		p := testPolicy(true)
		_, err := p.ComputeReward(task, p.TierFor(nil), completion, quiz, map[int64]string{11: "a", 12: "c"})
		assert.NoError(t, err)
	})
}
