package postgres

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepositoryImpl)(nil)

// SubscriptionRepositoryImpl is the PostgreSQL implementation of SubscriptionRepository
type SubscriptionRepositoryImpl struct {
	*TransactionManager
}

func NewSubscriptionRepository(pool *pgxpool.Pool) repository.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const planColumns = `p.id, p.level, p.name, p.price, p.reward_multiplier, p.daily_limit, p.duration_days`

func scanPlan(row pgx.Row) (*model.VipPlan, error) {
	p := &model.VipPlan{}
	if err := row.Scan(&p.ID, &p.Level, &p.Name, &p.Price, &p.RewardMultiplier, &p.DailyLimit, &p.DurationDays); err != nil {
		return nil, err
	}
	return p, nil
}

// GetActiveSubscription returns the active, unexpired subscription with its plan
func (r *SubscriptionRepositoryImpl) GetActiveSubscription(ctx context.Context, userID int64, now time.Time, tx ...pgx.Tx) (*model.VipSubscription, error) {
	query := `
        SELECT s.id, s.user_id, s.vip_plan_id, s.status, s.started_at, s.expires_at, ` + planColumns + `
        FROM vip_subscriptions s
        JOIN vip_plans p ON p.id = s.vip_plan_id
        WHERE s.user_id = $1 AND s.status = 'active' AND s.expires_at > $2
        ORDER BY s.expires_at DESC
        LIMIT 1`

	sub := &model.VipSubscription{Plan: &model.VipPlan{}}
	p := sub.Plan
	err := r.getExecutor(tx...).QueryRow(ctx, query, userID, now).Scan(
		&sub.ID, &sub.UserID, &sub.VipPlanID, &sub.Status, &sub.StartedAt, &sub.ExpiresAt,
		&p.ID, &p.Level, &p.Name, &p.Price, &p.RewardMultiplier, &p.DailyLimit, &p.DurationDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoActiveSubscription
		}
		return nil, storageErr("get active subscription", err)
	}
	return sub, nil
}

// GetPlan retrieves a VIP plan
func (r *SubscriptionRepositoryImpl) GetPlan(ctx context.Context, planID int64, tx ...pgx.Tx) (*model.VipPlan, error) {
	query := `SELECT ` + planColumns + ` FROM vip_plans p WHERE p.id = $1`

	plan, err := scanPlan(r.getExecutor(tx...).QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlanNotFound
		}
		return nil, storageErr("get vip plan", err)
	}
	return plan, nil
}

// ListPlans retrieves all VIP plans ordered by level
func (r *SubscriptionRepositoryImpl) ListPlans(ctx context.Context) ([]*model.VipPlan, error) {
	query := `SELECT ` + planColumns + ` FROM vip_plans p ORDER BY p.level`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("query vip plans", err)
	}
	defer rows.Close()

	var plans []*model.VipPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vip plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// SupersedeActive marks the user's active subscription superseded; rows are never deleted
func (r *SubscriptionRepositoryImpl) SupersedeActive(ctx context.Context, userID int64, tx pgx.Tx) (int64, error) {
	query := `UPDATE vip_subscriptions SET status = 'superseded' WHERE user_id = $1 AND status = 'active'`

	result, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return 0, storageErr("supersede subscription", err)
	}
	return result.RowsAffected(), nil
}

// InsertSubscription creates a new active subscription
func (r *SubscriptionRepositoryImpl) InsertSubscription(ctx context.Context, sub *model.VipSubscription, tx pgx.Tx) error {
	query := `
        INSERT INTO vip_subscriptions (user_id, vip_plan_id, status, started_at, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	if err := tx.QueryRow(ctx, query, sub.UserID, sub.VipPlanID, sub.Status, sub.StartedAt, sub.ExpiresAt).Scan(&sub.ID); err != nil {
		return storageErr("insert subscription", err)
	}
	return nil
}

// ExpireLapsed expires lapsed subscriptions and drops users without an active one back to tier 0
func (r *SubscriptionRepositoryImpl) ExpireLapsed(ctx context.Context, now time.Time, tx pgx.Tx) (int64, error) {
	expire := `UPDATE vip_subscriptions SET status = 'expired' WHERE status = 'active' AND expires_at <= $1`

	result, err := tx.Exec(ctx, expire, now)
	if err != nil {
		return 0, storageErr("expire subscriptions", err)
	}

	demote := `
        UPDATE users u
        SET vip_level = 0, updated_at = NOW()
        WHERE u.vip_level > 0
          AND NOT EXISTS (
              SELECT 1 FROM vip_subscriptions s
              WHERE s.user_id = u.id AND s.status = 'active' AND s.expires_at > $1
          )`
	if _, err := tx.Exec(ctx, demote, now); err != nil {
		return 0, storageErr("demote lapsed users", err)
	}
	return result.RowsAffected(), nil
}
