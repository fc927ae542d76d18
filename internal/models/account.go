package models

import (
	"github.com/shopspring/decimal"
)

// Account holds the balances and lock state for a single client.
// Accounts are created lazily on the first transaction naming the client
// and are only ever mutated through the ledger's transaction handlers.
type Account struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Locked    bool            `json:"locked"`
}

// NewAccount returns a zero-balance, unlocked account for the client.
func NewAccount(client uint16) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total is derived rather than stored so total == available + held
// cannot drift.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// AccountSnapshot is the read-only export of one account's state.
type AccountSnapshot struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}

// Snapshot copies the account's current state.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}
