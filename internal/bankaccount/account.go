// Package bankaccount implements a bank account that can be opened, closed,
// and safely used from many goroutines at once.
package bankaccount

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jstoebel/exercises/internal/domain"
)

// Account is a balance guarded by an open/closed state.
//
// The state check and the mutation run under one lock, so an operation never
// observes an account that is closed halfway through it.
type Account struct {
	mu      sync.Mutex
	open    bool
	balance decimal.Decimal
}

// New returns a closed account.
func New() *Account {
	return &Account{}
}

// Open opens the account with a zero balance.
func (a *Account) Open() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.open {
		return domain.ErrAccountAlreadyOpen
	}

	a.open = true
	a.balance = decimal.Zero

	return nil
}

// Close closes the account. The balance is no longer reachable afterwards.
func (a *Account) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.open {
		return domain.ErrAccountClosed
	}

	a.open = false

	return nil
}

// IsOpen reports whether the account is open.
func (a *Account) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.open
}

// Balance returns the current balance.
func (a *Account) Balance() (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.open {
		return decimal.Zero, domain.ErrAccountClosed
	}

	return a.balance, nil
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.open {
		return decimal.Zero, domain.ErrAccountClosed
	}

	if !amount.IsPositive() {
		return a.balance, domain.ErrNonPositiveAmount
	}

	a.balance = a.balance.Add(amount)

	return a.balance, nil
}

// Withdraw subtracts amount from the balance and returns the new balance.
// The balance never goes below zero.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.open {
		return decimal.Zero, domain.ErrAccountClosed
	}

	if !amount.IsPositive() {
		return a.balance, domain.ErrNonPositiveAmount
	}

	if a.balance.LessThan(amount) {
		return a.balance, domain.ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)

	return a.balance, nil
}
