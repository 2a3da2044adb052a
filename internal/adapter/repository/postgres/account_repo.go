package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/infrastructure/postgres/generated"
	"github.com/iho/bankcore/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a new account inside the given transaction.
func (r *AccountRepository) Create(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:         account.ID,
		CustomerID: account.CustomerID,
		Country:    string(account.Country),
		CreatedAt:  timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt:  timeToPgTimestamptz(account.UpdatedAt),
	})
	if err != nil {
		return wrapStorage(err)
	}

	return nil
}

// GetByID retrieves an account by ID with all of its balances.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, wrapStorage(err)
	}

	balanceRows, err := r.queries.ListBalancesByAccount(ctx, id)
	if err != nil {
		return nil, wrapStorage(err)
	}

	account := rowToAccount(row)
	account.Balances = make([]*domain.Balance, 0, len(balanceRows))
	for _, b := range balanceRows {
		account.Balances = append(account.Balances, rowToBalance(b))
	}

	return account, nil
}

// AddBalance inserts a balance row inside the given transaction.
func (r *AccountRepository) AddBalance(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateBalance(ctx, generated.CreateBalanceParams{
		ID:        balance.ID,
		AccountID: balance.AccountID,
		Currency:  balance.Currency,
		Amount:    decimalToNumeric(balance.Amount),
		Version:   balance.Version,
		CreatedAt: timeToPgTimestamptz(balance.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(balance.UpdatedAt),
	})
	if err != nil {
		return wrapStorage(err)
	}

	return nil
}

// GetBalanceForUpdate retrieves a single balance row with a FOR UPDATE lock.
func (r *AccountRepository) GetBalanceForUpdate(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetBalanceForUpdate(ctx, generated.GetBalanceForUpdateParams{
		AccountID: accountID,
		Currency:  currency,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCurrency
		}

		return nil, wrapStorage(err)
	}

	return rowToBalance(row), nil
}

// UpdateBalanceAmount updates the amount of a balance row and bumps its version.
func (r *AccountRepository) UpdateBalanceAmount(ctx context.Context, tx usecase.Transaction, balanceID string, amount decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	err := queries.UpdateBalanceAmount(ctx, generated.UpdateBalanceAmountParams{
		ID:        balanceID,
		Amount:    decimalToNumeric(amount),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return wrapStorage(err)
	}

	return nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Country:    domain.Country(row.Country),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

func rowToBalance(row generated.Balance) *domain.Balance {
	return &domain.Balance{
		ID:        row.ID,
		AccountID: row.AccountID,
		Currency:  row.Currency,
		Amount:    numericToDecimal(row.Amount),
		Version:   row.Version,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// wrapStorage keeps the original error in the chain so driver codes stay inspectable.
func wrapStorage(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
