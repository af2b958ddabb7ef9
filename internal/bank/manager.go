// Package bank drives one KYC-and-transactions console session. A Manager owns
// the holder's Profile and Account for the lifetime of the process.
package bank

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/janisto/kyc-bank-console/internal/common"
	"github.com/janisto/kyc-bank-console/internal/console"
	"github.com/janisto/kyc-bank-console/internal/input"
	"github.com/janisto/kyc-bank-console/internal/service/account"
	"github.com/janisto/kyc-bank-console/internal/service/profile"
)

const defaultCurrency = "K"

// Manager composes the profile and the account of one holder.
type Manager struct {
	in       *input.Validator
	out      console.Presenter
	currency string
	state    State
	profile  profile.Profile
	account  *account.Account
}

// Option configures a Manager.
type Option func(*Manager)

// WithCurrency sets the prefix printed before every amount.
func WithCurrency(symbol string) Option {
	return func(m *Manager) {
		m.currency = symbol
	}
}

// NewManager returns a manager reading answers from src and writing through out.
func NewManager(src input.Source, out console.Presenter, opts ...Option) *Manager {
	m := &Manager{
		in:       input.New(src, out),
		out:      out,
		currency: defaultCurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State reports where the session currently is.
func (m *Manager) State() State { return m.state }

// Profile returns the collected profile; zero until CollectProfile succeeds.
func (m *Manager) Profile() profile.Profile { return m.profile }

// Balance returns the current balance, zero before the account is opened.
func (m *Manager) Balance() decimal.Decimal {
	if m.account == nil {
		return decimal.Zero
	}
	return m.account.Balance()
}

func (m *Manager) setState(ctx context.Context, s State) {
	common.LogDebug(ctx, "state transition",
		zap.Stringer("from", m.state),
		zap.Stringer("to", s),
	)
	m.state = s
}

func (m *Manager) money(amount decimal.Decimal) string {
	return m.currency + amount.String()
}

func (m *Manager) moneyFixed(amount decimal.Decimal) string {
	return m.currency + amount.StringFixed(2)
}

// Run executes the whole session: profile, opening balance, then the menu
// until Exit. It returns an error wrapping input.ErrInterrupted when input
// ends early; the caller owns reporting that to the user.
func (m *Manager) Run(ctx context.Context) error {
	if m.state != StateStart {
		return ErrSessionStarted
	}
	ctx = common.WithSession(ctx, uuid.NewString())
	common.LogInfo(ctx, "session started")

	m.out.Header("Banking Transactions")
	err := m.CollectProfile(ctx)
	if err == nil {
		err = m.SetOpeningBalance(ctx)
	}
	if err == nil {
		err = m.MenuLoop(ctx)
	}
	m.setState(ctx, StateTerminated)

	if errors.Is(err, input.ErrInterrupted) {
		common.LogInfo(ctx, "session interrupted", zap.Error(err))
		return err
	}
	if err != nil {
		common.LogError(ctx, "session failed", err)
		return err
	}
	common.LogInfo(ctx, "session ended")
	return nil
}

// CollectProfile asks for every KYC field until each one is valid, then
// stores the normalized profile.
func (m *Manager) CollectProfile(ctx context.Context) error {
	m.setState(ctx, StateCollectProfile)
	m.out.Header("User KYC")

	var params profile.CreateParams
	var err error
	if params.Firstname, err = input.Ask(ctx, m.in, "Enter firstname: ", input.Text,
		input.Rules[string]{Check: profile.ValidateFirstname}); err != nil {
		return err
	}
	if params.Lastname, err = input.Ask(ctx, m.in, "Enter lastname: ", input.Text,
		input.Rules[string]{Check: profile.ValidateLastname}); err != nil {
		return err
	}
	if params.Email, err = input.Ask(ctx, m.in, "Enter email: ", input.Text,
		input.Rules[string]{Check: profile.ValidateEmail}); err != nil {
		return err
	}
	if params.Phone, err = input.Ask(ctx, m.in, "Enter phone number: ", input.Text,
		input.Rules[string]{Check: profile.ValidatePhone}); err != nil {
		return err
	}
	if params.Age, err = input.Ask(ctx, m.in, "Enter age: ", input.Integer,
		input.Rules[int]{Check: profile.ValidateAge}); err != nil {
		return err
	}
	if params.Gender, err = input.Ask(ctx, m.in, "Enter gender: ", input.Text,
		input.Rules[string]{Check: profile.ValidateGender}); err != nil {
		return err
	}

	p, err := profile.New(params)
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	m.profile = *p
	common.LogInfo(ctx, "profile collected")
	return nil
}

// SetOpeningBalance asks once for a positive amount and opens the account
// with it. It replaces, never adds to, any earlier balance.
func (m *Manager) SetOpeningBalance(ctx context.Context) error {
	m.setState(ctx, StateOpeningBalance)
	m.out.Header("Initial Balance")

	amount, err := input.Ask(ctx, m.in, "Enter opening balance: ", input.Decimal,
		input.Rules[decimal.Decimal]{Check: account.ValidateAmount})
	if err != nil {
		return err
	}
	acct, err := account.Open(amount)
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}
	m.account = acct
	common.LogInfo(ctx, "account opened")
	return nil
}

// Deposit adds amount to the balance and reports the new balance. An invalid
// amount is reported and returned without touching the balance.
func (m *Manager) Deposit(ctx context.Context, amount decimal.Decimal) error {
	if m.account == nil {
		return ErrAccountNotOpen
	}
	balance, err := m.account.Deposit(amount)
	if err != nil {
		m.out.Error("Deposit amount should be a positive number!")
		common.LogWarn(ctx, "deposit rejected", zap.Error(err))
		return err
	}
	m.out.Success(fmt.Sprintf("Deposit of %s was successful, new balance is %s",
		m.money(amount), m.moneyFixed(balance)))
	common.LogDebug(ctx, "deposit committed", zap.Stringer("amount", amount))
	return nil
}

// Withdraw subtracts amount when it is strictly less than the balance and
// reports the new balance. Rejections leave the balance unchanged.
func (m *Manager) Withdraw(ctx context.Context, amount decimal.Decimal) error {
	if m.account == nil {
		return ErrAccountNotOpen
	}
	balance, err := m.account.Withdraw(amount)
	switch {
	case errors.Is(err, account.ErrInsufficientBalance):
		m.out.Error("Withdraw failed!, You have insufficient balance.")
		common.LogWarn(ctx, "withdrawal rejected", zap.Error(err))
		return err
	case err != nil:
		m.out.Error(fmt.Sprintf("Invalid withdraw amount %s", amount))
		common.LogWarn(ctx, "withdrawal rejected", zap.Error(err))
		return err
	}
	m.out.Success(fmt.Sprintf("%s withdrawn successfully, your new account balance is %s",
		m.money(amount), m.moneyFixed(balance)))
	common.LogDebug(ctx, "withdrawal committed", zap.Stringer("amount", amount))
	return nil
}

// DisplaySummary prints the profile and the current balance.
func (m *Manager) DisplaySummary() {
	m.out.Header("User Account Summary")
	m.out.Info("Name: " + m.profile.FullName())
	m.out.Info("Email: " + m.profile.Email)
	m.out.Info("Phone No: " + m.profile.Phone)
	m.out.Info("Gender: " + string(m.profile.Gender))
	m.out.Info(fmt.Sprintf("Age: %d", m.profile.Age))
	m.out.Info("Balance: " + m.moneyFixed(m.Balance()))
}

// MenuLoop repeats the transaction menu until the user picks Exit.
func (m *Manager) MenuLoop(ctx context.Context) error {
	if m.account == nil {
		return ErrAccountNotOpen
	}
	m.setState(ctx, StateMenu)
	for {
		m.out.Header("Bank Transaction Option")
		choice, err := input.Ask(ctx, m.in, menuPrompt, input.Integer, input.Rules[int]{Allowed: menuOptions})
		if err != nil {
			return err
		}
		common.LogDebug(ctx, "menu option selected", zap.Int("option", choice))

		switch MenuOption(choice) {
		case OptionDeposit:
			amount, err := m.askAmount(ctx, "Enter amount to deposit: ")
			if err != nil {
				return err
			}
			if err := m.Deposit(ctx, amount); err != nil {
				// Deposit already showed the diagnostic; offer the menu again.
				continue
			}
		case OptionWithdraw:
			amount, err := m.askAmount(ctx, "Enter amount to withdraw: ")
			if err != nil {
				return err
			}
			if err := m.Withdraw(ctx, amount); err != nil {
				continue
			}
		case OptionSummary:
			m.DisplaySummary()
		case OptionExit:
			m.out.Info("Program gracefully stopped by user!")
			return nil
		}
	}
}

func (m *Manager) askAmount(ctx context.Context, prompt string) (decimal.Decimal, error) {
	return input.Ask(ctx, m.in, prompt, input.Decimal, input.Rules[decimal.Decimal]{Check: account.ValidateAmount})
}
