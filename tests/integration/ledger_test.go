package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/adapter/repository/postgres"
	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/usecase"
	"github.com/iho/bankcore/tests/testutil"
)

func newLedgerUseCase(pool *testutil.TestDB) *usecase.LedgerUseCase {
	return usecase.NewLedgerUseCase(
		postgres.NewTxManager(pool.Pool),
		postgres.NewAccountRepository(pool.Pool),
		postgres.NewTransactionRepository(pool.Pool),
		postgres.NewULIDGenerator(),
		nil,
		postgres.NewRetrier(),
		nil,
		zerolog.Nop(),
	)
}

func TestOpenAccountAndReadBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	account, err := ledgerUC.OpenAccount(ctx, usecase.OpenAccountInput{
		CustomerID: "cust-1",
		Country:    domain.CountryEE,
		Currencies: []string{"EUR", "USD"},
	})
	if err != nil {
		t.Fatalf("open account failed: %v", err)
	}

	got, err := ledgerUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}

	if got.CustomerID != "cust-1" || got.Country != domain.CountryEE {
		t.Fatalf("unexpected account: %+v", got)
	}

	if len(got.Balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(got.Balances))
	}
	for _, b := range got.Balances {
		if !b.Amount.IsZero() {
			t.Fatalf("expected zero opening balance, got %s %s", b.Amount, b.Currency)
		}
	}
}

func TestApplyTransactionUpdatesBalanceAndHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	account := testDB.CreateTestAccount(ctx, "cust-1", domain.CountrySE, map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("100"),
	})

	deposit, err := ledgerUC.ApplyTransaction(ctx, usecase.ApplyTransactionInput{
		AccountID:   account.ID,
		Amount:      decimal.RequireFromString("50.25"),
		Currency:    "EUR",
		Direction:   domain.DirectionIn,
		Description: "salary",
	})
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if !deposit.BalanceAfter.Equal(decimal.RequireFromString("150.25")) {
		t.Fatalf("expected balance after 150.25, got %s", deposit.BalanceAfter)
	}

	withdrawal, err := ledgerUC.ApplyTransaction(ctx, usecase.ApplyTransactionInput{
		AccountID:   account.ID,
		Amount:      decimal.RequireFromString("0.25"),
		Currency:    "EUR",
		Direction:   domain.DirectionOut,
		Description: "fee",
	})
	if err != nil {
		t.Fatalf("withdrawal failed: %v", err)
	}
	if !withdrawal.BalanceAfter.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("expected balance after 150, got %s", withdrawal.BalanceAfter)
	}

	history, err := ledgerUC.ListTransactions(ctx, account.ID)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(history))
	}
	if history[0].ID != deposit.ID || history[1].ID != withdrawal.ID {
		t.Fatalf("expected creation order, got %s then %s", history[0].ID, history[1].ID)
	}
	if history[0].Seq >= history[1].Seq {
		t.Fatalf("expected increasing sequence, got %d then %d", history[0].Seq, history[1].Seq)
	}
}

func TestApplyTransactionRejectsOverdraft(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	account := testDB.CreateTestAccount(ctx, "cust-1", domain.CountryGB, map[string]decimal.Decimal{
		"GBP": decimal.RequireFromString("10"),
	})

	_, err := ledgerUC.ApplyTransaction(ctx, usecase.ApplyTransactionInput{
		AccountID:   account.ID,
		Amount:      decimal.RequireFromString("10.01"),
		Currency:    "GBP",
		Direction:   domain.DirectionOut,
		Description: "too much",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	// Balance and history must be untouched.
	got, err := ledgerUC.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !got.Balances[0].Amount.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("expected balance unchanged, got %s", got.Balances[0].Amount)
	}

	history, err := ledgerUC.ListTransactions(ctx, account.ID)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no transactions, got %d", len(history))
	}
}

func TestApplyTransactionUnknownCurrencyAndAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	ledgerUC := newLedgerUseCase(testDB)

	account := testDB.CreateTestAccount(ctx, "cust-1", domain.CountryUS, map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("100"),
	})

	_, err := ledgerUC.ApplyTransaction(ctx, usecase.ApplyTransactionInput{
		AccountID:   account.ID,
		Amount:      decimal.RequireFromString("5"),
		Currency:    "EUR",
		Direction:   domain.DirectionIn,
		Description: "wrong currency",
	})
	if !errors.Is(err, domain.ErrInvalidCurrency) {
		t.Fatalf("expected invalid currency, got %v", err)
	}

	_, err = ledgerUC.ApplyTransaction(ctx, usecase.ApplyTransactionInput{
		AccountID:   testutil.GenerateID(),
		Amount:      decimal.RequireFromString("5"),
		Currency:    "USD",
		Direction:   domain.DirectionIn,
		Description: "no such account",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}
