package postgres

import (
	"context"
	"errors"
	"fmt"
	"nextfund-ledger/internal/model"
	"nextfund-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PaymentRepository = (*PaymentRepositoryImpl)(nil)

// PaymentRepositoryImpl is the PostgreSQL implementation of PaymentRepository
type PaymentRepositoryImpl struct {
	*TransactionManager
}

func NewPaymentRepository(pool *pgxpool.Pool) repository.PaymentRepository {
	return &PaymentRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, user_id, type, amount, status, method, qr_code_id, request_id, pix_key,
        end_to_end_id, payer_name, payer_national_registration, processed_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	t := &model.Transaction{}
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Status, &t.Method, &t.QRCodeID, &t.RequestID, &t.PixKey,
		&t.EndToEndID, &t.PayerName, &t.PayerTaxID, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// InsertTransaction creates a new transaction record
func (r *PaymentRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, type, amount, status, method, qr_code_id, request_id, pix_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query, trans.UserID, trans.Type, trans.Amount, trans.Status, trans.Method,
		trans.QRCodeID, trans.RequestID, trans.PixKey).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateRequest
		}
		return storageErr("insert transaction", err)
	}
	return nil
}

// SetGatewayReference attaches the gateway charge id to a pending deposit
func (r *PaymentRepositoryImpl) SetGatewayReference(ctx context.Context, id int64, qrCodeID string) error {
	query := `
        UPDATE transactions
        SET qr_code_id = $1, updated_at = NOW()
        WHERE id = $2 AND status = 'pending' AND qr_code_id IS NULL`

	result, err := r.pool.Exec(ctx, query, qrCodeID, id)
	if err != nil {
		return storageErr("set gateway reference", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %d is not an unreferenced pending deposit", model.ErrUnknownTransaction, id)
	}
	return nil
}

// GetByGatewayRefForUpdate locks the transaction row matching a gateway charge id
func (r *PaymentRepositoryImpl) GetByGatewayRefForUpdate(ctx context.Context, qrCodeID string, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE qr_code_id = $1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, qrCodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUnknownTransaction
		}
		return nil, storageErr("get transaction by gateway ref", err)
	}
	return t, nil
}

// GetByRequestID retrieves the transaction created for a client request id
func (r *PaymentRepositoryImpl) GetByRequestID(ctx context.Context, userID int64, requestID string) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND request_id = $2`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, userID, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUnknownTransaction
		}
		return nil, storageErr("get transaction by request id", err)
	}
	return t, nil
}

// TransitionStatus is the single writer of transaction status; it only moves rows still in `from`
func (r *PaymentRepositoryImpl) TransitionStatus(ctx context.Context, id int64, from, to model.TransactionStatus, payer *model.PayerInfo, tx pgx.Tx) (bool, error) {
	var name, taxID, e2e *string
	if payer != nil {
		name, taxID, e2e = nullable(payer.Name), nullable(payer.TaxID), nullable(payer.EndToEndID)
	}

	query := `
        UPDATE transactions
        SET status = $1,
            payer_name = COALESCE($2, payer_name),
            payer_national_registration = COALESCE($3, payer_national_registration),
            end_to_end_id = COALESCE($4, end_to_end_id),
            processed_at = NOW(),
            updated_at = NOW()
        WHERE id = $5
          AND status = $6`

	result, err := tx.Exec(ctx, query, string(to), name, taxID, e2e, id, string(from))
	if err != nil {
		return false, storageErr("transition transaction status", err)
	}
	return result.RowsAffected() == 1, nil
}

// GetTransactionsByUser retrieves paginated transactions for a user
func (r *PaymentRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, storageErr("query transactions", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
