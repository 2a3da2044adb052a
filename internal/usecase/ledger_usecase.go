package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/infrastructure/metrics"
)

// LedgerUseCase applies validated, atomic balance mutations. It is the only
// component allowed to write balances and transactions.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txRepo      TransactionRepository
	idGen       IDGenerator
	notifier    Notifier
	retrier     Retrier
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase. retrier may be nil, in which
// case conflicting storage transactions are not retried. metrics may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txRepo TransactionRepository,
	idGen IDGenerator,
	notifier Notifier,
	retrier Retrier,
	metrics *metrics.Metrics,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		idGen:       idGen,
		notifier:    notifier,
		retrier:     retrier,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	CustomerID string
	Country    domain.Country
	Currencies []string
}

// OpenAccount creates an account with one zero balance per requested
// currency. Validation happens before any write; the account and all its
// balances are created in one storage transaction.
func (uc *LedgerUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, domain.ErrEmptyCustomerID
	}

	if !input.Country.IsValid() {
		return nil, domain.ErrInvalidCountry
	}

	if len(input.Currencies) == 0 {
		return nil, domain.ErrInvalidCurrency
	}

	seen := make(map[string]bool, len(input.Currencies))
	for _, currency := range input.Currencies {
		if !domain.IsAllowedCurrency(currency) {
			return nil, domain.ErrInvalidCurrency
		}

		if seen[currency] {
			return nil, domain.ErrDuplicateCurrency
		}
		seen[currency] = true
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:         uc.idGen.Generate(),
		CustomerID: input.CustomerID,
		Country:    input.Country,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.accountRepo.Create(ctx, tx, account); err != nil {
		return nil, err
	}

	for _, currency := range input.Currencies {
		balance := &domain.Balance{
			ID:        uc.idGen.Generate(),
			AccountID: account.ID,
			Currency:  currency,
			Amount:    decimal.Zero,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := uc.accountRepo.AddBalance(ctx, tx, balance); err != nil {
			return nil, err
		}

		account.Balances = append(account.Balances, balance)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
		uc.metrics.AccountOperations.WithLabelValues("open").Inc()
	}

	uc.notify(ctx, domain.TopicCreateAccount, domain.NewAccountCreatedEvent(account))

	return account, nil
}

// ApplyTransactionInput represents input for applying a transaction.
type ApplyTransactionInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Currency    string
	Direction   domain.Direction
	Description string
}

// ApplyTransaction validates the requested movement, locks the target
// balance row, writes the new balance and the transaction record in one
// storage transaction, and publishes the record after commit. Two
// concurrent calls against the same account and currency serialize on the
// balance row; different balances never block each other.
func (uc *LedgerUseCase) ApplyTransaction(ctx context.Context, input ApplyTransactionInput) (*domain.Transaction, error) {
	start := time.Now()

	transaction := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Direction:   input.Direction,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := transaction.Validate(); err != nil {
		uc.countError(err)
		return nil, err
	}

	// Existence check before touching the balance row so an unknown account
	// reports ErrAccountNotFound rather than ErrInvalidCurrency.
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		uc.countError(err)
		return nil, err
	}

	apply := func() error {
		return uc.applyOnce(ctx, transaction)
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, apply)
	} else {
		err = apply()
	}
	if err != nil {
		uc.countError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsApplied.WithLabelValues(string(transaction.Direction)).Inc()
		uc.metrics.TransactionDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransactionAmount.Observe(transaction.Amount.InexactFloat64())
	}

	uc.notify(ctx, domain.TopicCreateTransaction, domain.NewTransactionCreatedEvent(transaction))

	return transaction, nil
}

// countError records a failed transaction attempt by error class.
func (uc *LedgerUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	errorType := "storage"
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		errorType = "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		errorType = "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidCurrency):
		errorType = "invalid_currency"
	case errors.Is(err, domain.ErrConflict):
		errorType = "conflict"
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrEmptyDescription):
		errorType = "validation"
	}

	uc.metrics.LedgerErrors.WithLabelValues(errorType).Inc()
}

// applyOnce runs one attempt of the atomic unit: lock balance, validate,
// write balance, append transaction.
func (uc *LedgerUseCase) applyOnce(ctx context.Context, transaction *domain.Transaction) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	balance, err := uc.accountRepo.GetBalanceForUpdate(ctx, tx, transaction.AccountID, transaction.Currency)
	if err != nil {
		return err
	}

	delta := transaction.SignedDelta()
	if err := balance.CanApply(delta); err != nil {
		return err
	}

	newAmount := balance.Apply(delta)
	now := time.Now().UTC()

	if err := uc.accountRepo.UpdateBalanceAmount(ctx, tx, balance.ID, newAmount, now); err != nil {
		return err
	}

	transaction.BalanceAfter = newAmount

	if err := uc.txRepo.Create(ctx, tx, transaction); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetAccount retrieves an account with all its balances.
func (uc *LedgerUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues("get").Inc()
	}

	return account, nil
}

// ListTransactions returns the account's transactions in creation order.
// An account without transactions yields an empty slice.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := uc.txRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues("list").Inc()
	}

	return transactions, nil
}

// notify publishes a post-commit copy. Failures are logged and swallowed:
// the ledger write is already durable and must not be undone.
func (uc *LedgerUseCase) notify(ctx context.Context, topic string, payload any) {
	if uc.notifier == nil {
		return
	}

	if err := uc.notifier.Publish(ctx, topic, payload); err != nil {
		uc.logger.Warn().Err(err).Str("topic", topic).Msg("notification publish failed")

		if uc.metrics != nil {
			uc.metrics.NotificationsPublished.WithLabelValues(topic, "error").Inc()
		}

		return
	}

	if uc.metrics != nil {
		uc.metrics.NotificationsPublished.WithLabelValues(topic, "ok").Inc()
	}
}
