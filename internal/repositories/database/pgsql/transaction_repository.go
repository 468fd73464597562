package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	"github.com/mindscribe/journal_ai_app/internal/models"
	"github.com/mindscribe/journal_ai_app/internal/utils/mapping"
	"github.com/mindscribe/journal_ai_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, price_id, amount_usd, credits,
		checkout_session_id, status, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.PriceID,
		&m.AmountUSD,
		&m.Credits,
		&m.CheckoutSessionID,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, price_id, amount_usd, credits,
            checkout_session_id, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.PriceID,
		m.AmountUSD,
		m.Credits,
		m.CheckoutSessionID,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByCheckoutSession(ctx context.Context, sessionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE checkout_session_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by checkout session %s: %w", sessionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// CompleteCheckoutSession flips the pending purchase to completed and grants
// its credits to the owning user inside one database transaction. The status
// guard in the UPDATE makes webhook redelivery a no-op.
func (r *PgxTransactionRepository) CompleteCheckoutSession(ctx context.Context, sessionID string) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	completeQuery := `
		UPDATE transactions
		SET status = 'COMPLETED',
		    last_updated_at = now()
		WHERE checkout_session_id = $1 AND status = 'PENDING'
		RETURNING ` + transactionColumns + `;
	`
	m, err := scanTransaction(tx.QueryRow(ctx, completeQuery, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No pending row: either the session is unknown or it was already
			// completed by an earlier delivery.
			var status models.TransactionStatus
			statusErr := tx.QueryRow(ctx, `SELECT status FROM transactions WHERE checkout_session_id = $1;`, sessionID).Scan(&status)
			if statusErr != nil {
				if errors.Is(statusErr, pgx.ErrNoRows) {
					return nil, apperrors.ErrNotFound
				}
				return nil, fmt.Errorf("failed to check transaction status for session %s: %w", sessionID, statusErr)
			}
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to complete checkout session %s: %w", sessionID, err)
	}

	grantQuery := `
		UPDATE users
		SET credits = credits + $2,
		    last_updated_at = now()
		WHERE user_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, grantQuery, m.UserID, m.Credits)
	if err != nil {
		return nil, fmt.Errorf("failed to grant credits to user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// ListTransactionsByUser retrieves a paginated list of a user's purchases using token-based pagination.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions`
	filterClause := `WHERE user_id = $1`
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}

		cursorClause := `AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, scanErr)
		}
		modelTxns = append(modelTxns, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}

	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		lastTxn := modelTxns[limit-1]
		token := pagination.EncodeToken(lastTxn.CreatedAt, lastTxn.TransactionID)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
