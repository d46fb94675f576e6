// Package domain provides definitions of all entities.
package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountClosed indicates an operation on a closed account.
	ErrAccountClosed = errors.New("account is closed")
	// ErrAccountAlreadyOpen indicates an attempt to open an open account.
	ErrAccountAlreadyOpen = errors.New("account is already open")
	// ErrInsufficientBalance indicates that the withdrawal exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount indicates that the amount is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates that the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")
)

// Account holds the externally visible state of a bank account.
type Account struct {
	ID      uuid.UUID `json:"id"`
	Balance string    `json:"balance"`
	Open    bool      `json:"open"`
}
