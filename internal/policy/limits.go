package policy

import "nextfund-ledger/internal/model"

// EarnDecision is the outcome of the daily limit check. UsesExtra is set when
// the quota is exhausted and the reward must consume one extra video.
type EarnDecision struct {
	Allowed   bool
	UsesExtra bool
}

// CanEarn reports whether the account may earn another reward today.
func (p *Policy) CanEarn(acc *model.Account, tier Tier) EarnDecision {
	if tier.DailyLimit == nil {
		return EarnDecision{Allowed: true}
	}
	if acc.DailyTasksCompleted < *tier.DailyLimit {
		return EarnDecision{Allowed: true}
	}
	if acc.ExtraVideosAvailable > 0 {
		return EarnDecision{Allowed: true, UsesExtra: true}
	}
	return EarnDecision{}
}

// Err maps a negative decision to ErrLimitExceeded.
func (d EarnDecision) Err() error {
	if d.Allowed {
		return nil
	}
	return model.ErrLimitExceeded
}
