// Package account holds the single in-memory balance of a session.
// Amounts are exact decimals so repeated deposits and withdrawals do not drift.
package account

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for amounts that are not strictly positive.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInsufficientBalance is returned when a withdrawal is not strictly
	// less than the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ValidateAmount is the one positive-number rule shared by the opening balance,
// deposits and withdrawals.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Account is a balance that never goes below zero.
type Account struct {
	balance decimal.Decimal
}

// Open creates an account with a positive opening balance.
func Open(opening decimal.Decimal) (*Account, error) {
	if err := ValidateAmount(opening); err != nil {
		return nil, err
	}
	return &Account{balance: opening}, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit adds a positive amount and returns the new balance.
// On error the balance is unchanged.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return a.balance, err
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw subtracts a positive amount and returns the new balance.
// Withdrawing the entire balance is rejected: the amount must be strictly
// less than the balance. On error the balance is unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateAmount(amount); err != nil {
		return a.balance, err
	}
	if a.balance.LessThanOrEqual(amount) {
		return a.balance, ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}
