// Package policy holds the pure business rules of the ledger: daily earning
// limits, reward computation and withdrawal eligibility. Nothing here performs I/O.
package policy

import (
	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// FreeTier is the level of users without an active subscription.
const FreeTier = 0

// Tier is the effective earning tier of a user at a given instant.
// A nil DailyLimit means the tier is not limited.
type Tier struct {
	Level      int
	Multiplier decimal.Decimal
	DailyLimit *int
}

type Policy struct {
	freeDailyLimit      int
	minWatchPercent     int
	quizRequireCorrect  bool
	minWithdrawal       decimal.Decimal
	minWithdrawVipLevel int
	minDeposit          decimal.Decimal

	// contentRates overrides task.reward_amount for the listed content tiers.
	contentRates map[int]decimal.Decimal
}

func New(cfg config.PolicyConfig) *Policy {
	return &Policy{
		freeDailyLimit:      cfg.FreeDailyLimit,
		minWatchPercent:     cfg.MinWatchPercent,
		quizRequireCorrect:  cfg.QuizRequireCorrect,
		minWithdrawal:       cfg.MinWithdrawal,
		minWithdrawVipLevel: cfg.MinWithdrawVipLevel,
		minDeposit:          cfg.MinDeposit,
		contentRates: map[int]decimal.Decimal{
			FreeTier: cfg.FreeContentReward,
		},
	}
}

// TierFor resolves the tier granted by a subscription. A nil subscription,
// or one without a plan, is the free tier.
func (p *Policy) TierFor(sub *model.VipSubscription) Tier {
	if sub == nil || sub.Plan == nil {
		limit := p.freeDailyLimit
		return Tier{Level: FreeTier, Multiplier: decimal.NewFromInt(1), DailyLimit: &limit}
	}

	multiplier := sub.Plan.RewardMultiplier
	if multiplier.LessThan(decimal.NewFromInt(1)) {
		multiplier = decimal.NewFromInt(1)
	}
	return Tier{Level: sub.Plan.Level, Multiplier: multiplier, DailyLimit: sub.Plan.DailyLimit}
}

// ContentRate returns the flat reward for a content tier, if one is configured.
func (p *Policy) ContentRate(vipLevelRequired int) (decimal.Decimal, bool) {
	rate, ok := p.contentRates[vipLevelRequired]
	return rate, ok
}

func (p *Policy) MinDeposit() decimal.Decimal {
	return p.minDeposit
}
