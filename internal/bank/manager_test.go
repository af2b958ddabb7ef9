package bank

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/janisto/kyc-bank-console/internal/common"
	"github.com/janisto/kyc-bank-console/internal/console"
	"github.com/janisto/kyc-bank-console/internal/input"
	"github.com/janisto/kyc-bank-console/internal/service/account"
	"github.com/janisto/kyc-bank-console/internal/service/profile"
)

var validProfileLines = []string{"ada", "lovelace", "Ada@Example.com", "0771234567", "36", "female"}

func newSession(opts []Option, lines ...string) (*Manager, *console.Recorder) {
	rec := console.NewRecorder()
	src := console.NewLineReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	return NewManager(src, rec, opts...), rec
}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// openedManager returns a manager whose account was opened with amount.
func openedManager(t *testing.T, amount string) (*Manager, *console.Recorder) {
	t.Helper()
	m, rec := newSession(nil, amount)
	require.NoError(t, m.SetOpeningBalance(context.Background()))
	rec.Reset()
	return m, rec
}

func TestRunFullSession(t *testing.T) {
	lines := script(validProfileLines,
		[]string{"200"},
		[]string{"3"},
		[]string{"1", "50"},
		[]string{"2", "250"},
		[]string{"2", "249.99"},
		[]string{"4"},
	)
	m, rec := newSession(nil, lines...)

	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, StateTerminated, m.State())
	assert.Equal(t, "0.01", m.Balance().StringFixed(2))
	assert.Equal(t, profile.Profile{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Gender:    profile.Female,
		Age:       36,
		Phone:     "0771234567",
		Email:     "ada@example.com",
	}, m.Profile())

	assert.Equal(t, []string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Phone No: 0771234567",
		"Gender: Female",
		"Age: 36",
		"Balance: K200.00",
		"Program gracefully stopped by user!",
	}, rec.Texts(console.KindInfo))
	assert.Equal(t, []string{
		"Deposit of K50 was successful, new balance is K250.00",
		"K249.99 withdrawn successfully, your new account balance is K0.01",
	}, rec.Texts(console.KindSuccess))
	assert.Equal(t, []string{"Withdraw failed!, You have insufficient balance."}, rec.Texts(console.KindError))

	headers := rec.Texts(console.KindHeader)
	require.GreaterOrEqual(t, len(headers), 4)
	assert.Equal(t, []string{"Banking Transactions", "User KYC", "Initial Balance", "Bank Transaction Option"}, headers[:4])
	assert.Contains(t, headers, "User Account Summary")
}

func TestRunInterrupted(t *testing.T) {
	m, _ := newSession(nil, "ada", "lovelace")

	err := m.Run(context.Background())
	require.ErrorIs(t, err, input.ErrInterrupted)
	assert.Equal(t, StateTerminated, m.State())
	assert.Equal(t, profile.Profile{}, m.Profile(), "no partial profile is stored")
}

func TestRunCancelledContext(t *testing.T) {
	m, _ := newSession(nil, validProfileLines...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx)
	require.ErrorIs(t, err, input.ErrInterrupted)
}

func TestRunOnlyOnce(t *testing.T) {
	m, _ := newSession(nil, script(validProfileLines, []string{"10", "4"})...)
	require.NoError(t, m.Run(context.Background()))
	require.ErrorIs(t, m.Run(context.Background()), ErrSessionStarted)
}

func TestCollectProfileRetriesEachField(t *testing.T) {
	m, rec := newSession(nil,
		"", "Ada1", "Ada",
		"Love lace", "Lovelace",
		"not-an-email", "ADA@EXAMPLE.COM",
		"1771234567", "077123456", "0771234567",
		"abc", "0", "101", "100",
		"x", "MALE",
	)

	require.NoError(t, m.CollectProfile(context.Background()))

	p := m.Profile()
	assert.Equal(t, "Ada", p.Firstname)
	assert.Equal(t, "Lovelace", p.Lastname)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.Equal(t, "0771234567", p.Phone)
	assert.Equal(t, 100, p.Age)
	assert.Equal(t, profile.Male, p.Gender)

	errs := rec.Texts(console.KindError)
	assert.Equal(t, []string{
		input.ErrEmptyInput.Error(),
		"Ada1 is not a valid firstname",
		"Love lace is not a valid lastname",
		"invalid email: not-an-email is not a valid email address",
		"invalid phone number! must be 10 digits starting with 0",
		"invalid phone number! must be 10 digits starting with 0",
		`invalid user input "abc", expected integer`,
		"age should be between 1 to 100 years",
		"age should be between 1 to 100 years",
		"x is not valid, expected gender is Male or Female",
	}, errs)
	assert.Equal(t, StateCollectProfile, m.State())
}

func TestSetOpeningBalance(t *testing.T) {
	m, rec := newSession(nil, "-5", "0", "abc", "100.50")

	require.NoError(t, m.SetOpeningBalance(context.Background()))
	assert.Equal(t, "100.50", m.Balance().StringFixed(2))
	assert.Len(t, rec.Texts(console.KindError), 3)
	assert.Equal(t, StateOpeningBalance, m.State())
}

func TestDeposit(t *testing.T) {
	m, rec := openedManager(t, "100")
	ctx := context.Background()

	require.NoError(t, m.Deposit(ctx, d("50")))
	assert.Equal(t, "150.00", m.Balance().StringFixed(2))

	err := m.Deposit(ctx, d("-5"))
	require.ErrorIs(t, err, account.ErrInvalidAmount)
	assert.Equal(t, "150.00", m.Balance().StringFixed(2))

	assert.Equal(t, []string{"Deposit of K50 was successful, new balance is K150.00"}, rec.Texts(console.KindSuccess))
	assert.Equal(t, []string{"Deposit amount should be a positive number!"}, rec.Texts(console.KindError))
}

func TestWithdrawBoundary(t *testing.T) {
	m, rec := openedManager(t, "100")
	ctx := context.Background()

	err := m.Withdraw(ctx, d("100"))
	require.ErrorIs(t, err, account.ErrInsufficientBalance)
	assert.Equal(t, "100.00", m.Balance().StringFixed(2))

	require.NoError(t, m.Withdraw(ctx, d("99.99")))
	assert.Equal(t, "0.01", m.Balance().StringFixed(2))

	err = m.Withdraw(ctx, d("-1"))
	require.ErrorIs(t, err, account.ErrInvalidAmount)

	assert.Equal(t, []string{
		"Withdraw failed!, You have insufficient balance.",
		"Invalid withdraw amount -1",
	}, rec.Texts(console.KindError))
}

func TestTransactionsBeforeOpening(t *testing.T) {
	m, _ := newSession(nil)
	ctx := context.Background()

	require.ErrorIs(t, m.Deposit(ctx, d("1")), ErrAccountNotOpen)
	require.ErrorIs(t, m.Withdraw(ctx, d("1")), ErrAccountNotOpen)
	require.ErrorIs(t, m.MenuLoop(ctx), ErrAccountNotOpen)
	assert.True(t, m.Balance().IsZero())
}

func TestSummaryBeforeTransactions(t *testing.T) {
	m, rec := newSession(nil, script(validProfileLines, []string{"200"})...)
	ctx := context.Background()
	require.NoError(t, m.CollectProfile(ctx))
	require.NoError(t, m.SetOpeningBalance(ctx))
	rec.Reset()

	m.DisplaySummary()
	assert.Contains(t, rec.Texts(console.KindInfo), "Balance: K200.00")
	assert.Equal(t, []string{"User Account Summary"}, rec.Texts(console.KindHeader))
}

func TestMenuLoopRejectsUnknownOptions(t *testing.T) {
	m, _ := openedManager(t, "100")
	rec := console.NewRecorder()
	m.out = rec
	m.in = input.New(console.NewLineReader(strings.NewReader("0\n5\nx\n4\n")), rec)

	require.NoError(t, m.MenuLoop(context.Background()))

	errs := rec.Texts(console.KindError)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0], "not a listed option")
	assert.Contains(t, errs[1], "not a listed option")
	assert.Contains(t, errs[2], "expected integer")
	assert.Empty(t, rec.Texts(console.KindSuccess))
	assert.Equal(t, "100.00", m.Balance().StringFixed(2))
}

func TestMenuLoopAmountRetries(t *testing.T) {
	m, rec := newSession(nil, "100", "1", "-5", "abc", "25", "4")
	ctx := context.Background()
	require.NoError(t, m.SetOpeningBalance(ctx))

	require.NoError(t, m.MenuLoop(ctx))
	assert.Equal(t, "125.00", m.Balance().StringFixed(2))
	assert.Len(t, rec.Texts(console.KindError), 2)
}

func TestMenuLoopRejectsOutOfRangeAmount(t *testing.T) {
	m, rec := newSession(nil, "100", "1", "1e-400000000", "1e400000000", "25", "4")
	ctx := context.Background()
	require.NoError(t, m.SetOpeningBalance(ctx))

	require.NoError(t, m.MenuLoop(ctx))
	assert.Equal(t, "125.00", m.Balance().StringFixed(2))
	errs := rec.Texts(console.KindError)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Contains(t, e, "expected number")
	}
}

func TestMenuLoopContinuesAfterRejectedWithdrawal(t *testing.T) {
	m, rec := newSession(nil, "100", "2", "100", "3", "2", "40", "4")
	ctx := context.Background()
	require.NoError(t, m.SetOpeningBalance(ctx))

	require.NoError(t, m.MenuLoop(ctx))
	assert.Equal(t, "60.00", m.Balance().StringFixed(2))
	assert.Equal(t, []string{"Withdraw failed!, You have insufficient balance."}, rec.Texts(console.KindError))
	assert.Contains(t, rec.Texts(console.KindInfo), "Balance: K100.00", "summary after the rejection shows the untouched balance")
	assert.Contains(t, rec.Texts(console.KindInfo), "Program gracefully stopped by user!")
}

func TestCollectProfileSkipsOverlongLine(t *testing.T) {
	m, rec := newSession(nil, script([]string{strings.Repeat("a", 70*1024)}, validProfileLines)...)

	require.NoError(t, m.CollectProfile(context.Background()))
	assert.Equal(t, "Ada", m.Profile().Firstname)
	assert.Equal(t, []string{console.ErrLineTooLong.Error()}, rec.Texts(console.KindError))
}

func TestMenuLoopInterruptedMidTransaction(t *testing.T) {
	m, _ := newSession(nil, "100", "2")
	ctx := context.Background()
	require.NoError(t, m.SetOpeningBalance(ctx))

	err := m.MenuLoop(ctx)
	require.ErrorIs(t, err, input.ErrInterrupted)
	assert.Equal(t, "100.00", m.Balance().StringFixed(2))
}

func TestWithCurrency(t *testing.T) {
	m, rec := newSession([]Option{WithCurrency("$")}, "10")
	ctx := context.Background()
	require.NoError(t, m.SetOpeningBalance(ctx))

	require.NoError(t, m.Deposit(ctx, d("2.5")))
	assert.Equal(t, []string{"Deposit of $2.5 was successful, new balance is $12.50"}, rec.Texts(console.KindSuccess))
}

func TestRunLogsSession(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := common.ContextWithLogger(context.Background(), zap.New(core))
	m, _ := newSession(nil, script(validProfileLines, []string{"100", "2", "100", "4"})...)

	require.NoError(t, m.Run(ctx))

	started := logs.FilterMessage("session started").All()
	require.Len(t, started, 1)
	assert.NotEmpty(t, started[0].ContextMap()["session_id"])

	rejected := logs.FilterMessage("withdrawal rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)

	assert.Equal(t, 1, logs.FilterMessage("session ended").Len())
	assert.NotZero(t, logs.FilterMessage("state transition").Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "collect_profile", StateCollectProfile.String())
	assert.Equal(t, "opening_balance", StateOpeningBalance.String())
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "unknown", State(42).String())
}
