package policy

import (
	"fmt"
	"nextfund-ledger/internal/model"

	"github.com/shopspring/decimal"
)

type Reward struct {
	Base  decimal.Decimal
	Bonus decimal.Decimal
}

func (r Reward) Total() decimal.Decimal {
	return r.Base.Add(r.Bonus)
}

// ComputeReward prices a finished video. answers maps quiz question ids to the chosen option.
func (p *Policy) ComputeReward(task *model.VideoTask, tier Tier, completion *model.VideoCompletion, quiz []*model.QuizQuestion, answers map[int64]string) (Reward, error) {
	if tier.Level < task.VipLevelRequired {
		return Reward{}, fmt.Errorf("%w: task requires level %d", model.ErrVipRequired, task.VipLevelRequired)
	}

	if err := p.checkWatchTime(task, completion); err != nil {
		return Reward{}, err
	}

	if err := p.checkQuiz(quiz, answers); err != nil {
		return Reward{}, err
	}

	if rate, ok := p.ContentRate(task.VipLevelRequired); ok {
		return Reward{Base: rate, Bonus: decimal.Zero}, nil
	}

	base := task.RewardAmount
	bonus := base.Mul(tier.Multiplier.Sub(decimal.NewFromInt(1))).Round(2)
	return Reward{Base: base, Bonus: bonus}, nil
}

// checkWatchTime compares in integer percent so 80% of the duration is accepted exactly.
func (p *Policy) checkWatchTime(task *model.VideoTask, completion *model.VideoCompletion) error {
	if task.DurationSeconds <= 0 {
		return fmt.Errorf("%w: task %d has no duration", model.ErrInsufficientWatchTime, task.ID)
	}
	if completion.WatchTimeSeconds*100 < task.DurationSeconds*p.minWatchPercent {
		return fmt.Errorf("%w: watched %ds of %ds", model.ErrInsufficientWatchTime, completion.WatchTimeSeconds, task.DurationSeconds)
	}
	return nil
}

func (p *Policy) checkQuiz(quiz []*model.QuizQuestion, answers map[int64]string) error {
	for _, q := range quiz {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			return fmt.Errorf("%w: question %d unanswered", model.ErrQuizIncomplete, q.ID)
		}
		if p.quizRequireCorrect && answer != q.CorrectOption {
			return fmt.Errorf("%w: question %d answered incorrectly", model.ErrQuizIncomplete, q.ID)
		}
	}
	return nil
}
