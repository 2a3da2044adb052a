package mocks

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/usecase"
)

// MockTransaction is an in-memory storage transaction. Writes are staged via
// OnCommit hooks and applied only when Commit runs; row locks taken during
// the transaction are released via OnRelease hooks on either outcome, which
// mirrors how a database releases FOR UPDATE locks.
type MockTransaction struct {
	mu           sync.Mutex
	done         bool
	commitHooks  []func()
	releaseHooks []func()
}

// OnCommit registers a write to apply when the transaction commits.
func (t *MockTransaction) OnCommit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commitHooks = append(t.commitHooks, fn)
}

// OnRelease registers a hook to run when the transaction ends, committed or
// not.
func (t *MockTransaction) OnRelease(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releaseHooks = append(t.releaseHooks, fn)
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return errors.New("transaction already closed")
	}
	t.done = true

	for _, fn := range t.commitHooks {
		fn()
	}
	for _, fn := range t.releaseHooks {
		fn()
	}

	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return nil
	}
	t.done = true

	for _, fn := range t.releaseHooks {
		fn()
	}

	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockAccountRepository is a map-backed mock of AccountRepository with
// per-balance locking that matches the row-lock contract of
// GetBalanceForUpdate.
type MockAccountRepository struct {
	mu           sync.Mutex
	accounts     map[string]*domain.Account
	balances     map[string]*domain.Balance
	balanceLocks map[string]*sync.Mutex

	CreateFunc              func(ctx context.Context, tx usecase.Transaction, account *domain.Account) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Account, error)
	AddBalanceFunc          func(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error
	GetBalanceForUpdateFunc func(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error)
	UpdateBalanceAmountFunc func(ctx context.Context, tx usecase.Transaction, balanceID string, amount decimal.Decimal, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts:     make(map[string]*domain.Account),
		balances:     make(map[string]*domain.Balance),
		balanceLocks: make(map[string]*sync.Mutex),
	}
}

// Seed stores an account and its balances as committed state.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts[account.ID] = account
	for _, b := range account.Balances {
		m.balances[b.ID] = b
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, account)
	}

	tx.(*MockTransaction).OnCommit(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.accounts[account.ID] = account
	})

	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}

	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) AddBalance(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	if m.AddBalanceFunc != nil {
		return m.AddBalanceFunc(ctx, tx, balance)
	}

	tx.(*MockTransaction).OnCommit(func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.balances[balance.ID] = balance
	})

	return nil
}

func (m *MockAccountRepository) GetBalanceForUpdate(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error) {
	if m.GetBalanceForUpdateFunc != nil {
		return m.GetBalanceForUpdateFunc(ctx, tx, accountID, currency)
	}

	lock := m.lockFor(accountID, currency)
	if lock == nil {
		return nil, domain.ErrInvalidCurrency
	}

	// Block until the competing transaction releases the row, as FOR UPDATE
	// would.
	lock.Lock()
	tx.(*MockTransaction).OnRelease(lock.Unlock)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.balances {
		if b.AccountID == accountID && b.Currency == currency {
			snapshot := *b
			return &snapshot, nil
		}
	}

	return nil, domain.ErrInvalidCurrency
}

func (m *MockAccountRepository) UpdateBalanceAmount(ctx context.Context, tx usecase.Transaction, balanceID string, amount decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceAmountFunc != nil {
		return m.UpdateBalanceAmountFunc(ctx, tx, balanceID, amount, updatedAt)
	}

	tx.(*MockTransaction).OnCommit(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if b, ok := m.balances[balanceID]; ok {
			b.Amount = amount
			b.Version++
			b.UpdatedAt = updatedAt
		}
	})

	return nil
}

// BalanceAmount returns the committed amount of a balance for assertions.
func (m *MockAccountRepository) BalanceAmount(accountID, currency string) (decimal.Decimal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.balances {
		if b.AccountID == accountID && b.Currency == currency {
			return b.Amount, true
		}
	}

	return decimal.Zero, false
}

// HasAccount reports whether an account id was committed.
func (m *MockAccountRepository) HasAccount(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.accounts[id]
	return ok
}

func (m *MockAccountRepository) lockFor(accountID, currency string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists := false
	for _, b := range m.balances {
		if b.AccountID == accountID && b.Currency == currency {
			exists = true
			break
		}
	}
	if !exists {
		return nil
	}

	key := accountID + "/" + currency
	if _, ok := m.balanceLocks[key]; !ok {
		m.balanceLocks[key] = &sync.Mutex{}
	}

	return m.balanceLocks[key]
}

// MockTransactionRepository is a map-backed mock of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.Mutex
	nextSeq int64
	records map[string][]*domain.Transaction

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error
	ListByAccountFunc func(ctx context.Context, accountID string) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		records: make(map[string][]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transaction)
	}

	tx.(*MockTransaction).OnCommit(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.nextSeq++
		transaction.Seq = m.nextSeq
		m.records[transaction.AccountID] = append(m.records[transaction.AccountID], transaction)
	})

	return nil
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Transaction, len(m.records[accountID]))
	copy(out, m.records[accountID])

	return out, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int64

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.counter++
	return "id-" + strconv.FormatInt(m.counter, 10)
}
