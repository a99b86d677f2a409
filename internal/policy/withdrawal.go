package policy

import (
	"nextfund-ledger/internal/model"

	"github.com/shopspring/decimal"
)

type RejectReason string

const (
	RejectNone                RejectReason = ""
	RejectVipRequired         RejectReason = "vip_required"
	RejectBelowMinimum        RejectReason = "below_minimum"
	RejectInsufficientBalance RejectReason = "insufficient_balance"
)

type WithdrawDecision struct {
	Reason RejectReason
}

func (d WithdrawDecision) OK() bool {
	return d.Reason == RejectNone
}

// Err maps the rejection reason to the matching sentinel error.
func (d WithdrawDecision) Err() error {
	switch d.Reason {
	case RejectVipRequired:
		return model.ErrVipRequired
	case RejectBelowMinimum:
		return model.ErrBelowMinimumWithdrawal
	case RejectInsufficientBalance:
		return model.ErrInsufficientBalance
	default:
		return nil
	}
}

// CanWithdraw decides whether a withdrawal may be queued. The tier check runs
// first so a free user is always routed to the upgrade flow.
func (p *Policy) CanWithdraw(acc *model.Account, tier Tier, amount decimal.Decimal) WithdrawDecision {
	if tier.Level < p.minWithdrawVipLevel {
		return WithdrawDecision{Reason: RejectVipRequired}
	}
	if amount.LessThan(p.minWithdrawal) {
		return WithdrawDecision{Reason: RejectBelowMinimum}
	}
	if amount.GreaterThan(acc.Balance) {
		return WithdrawDecision{Reason: RejectInsufficientBalance}
	}
	return WithdrawDecision{}
}
