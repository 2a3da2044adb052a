package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/domain"
)

// AccountRepository defines data access for accounts and their balances.
type AccountRepository interface {
	Create(ctx context.Context, tx Transaction, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	AddBalance(ctx context.Context, tx Transaction, balance *domain.Balance) error
	// GetBalanceForUpdate loads one balance row with a row-level lock held
	// until the transaction commits or rolls back.
	GetBalanceForUpdate(ctx context.Context, tx Transaction, accountID, currency string) (*domain.Balance, error)
	UpdateBalanceAmount(ctx context.Context, tx Transaction, balanceID string, amount decimal.Decimal, updatedAt time.Time) error
}

// TransactionRepository defines append-only data access for ledger
// transactions.
type TransactionRepository interface {
	// Create appends the record and fills in its store-assigned sequence.
	Create(ctx context.Context, tx Transaction, transaction *domain.Transaction) error
	// ListByAccount returns all transactions of an account in creation
	// order. No transactions is an empty slice, not an error.
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

// Transaction represents a storage transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles storage transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Notifier delivers post-commit copies of created records to an external
// consumer. Delivery is best-effort and never affects a committed write.
type Notifier interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// IdempotencyStore caches responses for idempotent request replay.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (exists bool, cached []byte, err error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Retrier re-runs an operation when storage reports a transient conflict.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
