package domain

// Notification topics. Each committed write publishes one message, outside
// the storage transaction, at most once.
const (
	TopicCreateAccount     = "create-account"
	TopicCreateTransaction = "create-transaction"
)

// AccountCreatedEvent is the snapshot published after an account commit.
type AccountCreatedEvent struct {
	AccountID  string                `json:"account_id"`
	CustomerID string                `json:"customer_id"`
	Country    string                `json:"country"`
	Balances   []BalanceCreatedEvent `json:"balances"`
}

// BalanceCreatedEvent is one balance line of an account snapshot.
type BalanceCreatedEvent struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// TransactionCreatedEvent is published after a transaction commit.
type TransactionCreatedEvent struct {
	TransactionID string `json:"transaction_id"`
	AccountID     string `json:"account_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Direction     string `json:"direction"`
	Description   string `json:"description"`
	BalanceAfter  string `json:"balance_after"`
}

// NewAccountCreatedEvent builds the publishable snapshot of an account.
func NewAccountCreatedEvent(a *Account) AccountCreatedEvent {
	balances := make([]BalanceCreatedEvent, 0, len(a.Balances))
	for _, b := range a.Balances {
		balances = append(balances, BalanceCreatedEvent{
			Currency: b.Currency,
			Amount:   b.Amount.String(),
		})
	}

	return AccountCreatedEvent{
		AccountID:  a.ID,
		CustomerID: a.CustomerID,
		Country:    string(a.Country),
		Balances:   balances,
	}
}

// NewTransactionCreatedEvent builds the publishable copy of a transaction.
func NewTransactionCreatedEvent(t *Transaction) TransactionCreatedEvent {
	return TransactionCreatedEvent{
		TransactionID: t.ID,
		AccountID:     t.AccountID,
		Amount:        t.Amount.String(),
		Currency:      t.Currency,
		Direction:     string(t.Direction),
		Description:   t.Description,
		BalanceAfter:  t.BalanceAfter.String(),
	}
}
