package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/infrastructure/postgres/generated"
	"github.com/iho/bankcore/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a transaction record inside the given transaction and
// fills in its database-assigned sequence number.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:           txn.ID,
		AccountID:    txn.AccountID,
		Amount:       decimalToNumeric(txn.Amount),
		Currency:     txn.Currency,
		Direction:    string(txn.Direction),
		Description:  txn.Description,
		BalanceAfter: decimalToNumeric(txn.BalanceAfter),
		CreatedAt:    timeToPgTimestamptz(txn.CreatedAt),
	})
	if err != nil {
		return wrapStorage(err)
	}

	txn.Seq = row.Seq

	return nil
}

// ListByAccount lists all transactions for an account in creation order.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*domain.Transaction{}, nil
		}

		return nil, wrapStorage(err)
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:           row.ID,
		Seq:          row.Seq,
		AccountID:    row.AccountID,
		Amount:       numericToDecimal(row.Amount),
		Currency:     row.Currency,
		Direction:    domain.Direction(row.Direction),
		Description:  row.Description,
		BalanceAfter: numericToDecimal(row.BalanceAfter),
		CreatedAt:    row.CreatedAt.Time,
	}
}
