package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func open(t *testing.T, opening string) *Account {
	t.Helper()
	a, err := Open(d(opening))
	require.NoError(t, err)
	return a
}

func TestValidateAmount(t *testing.T) {
	for _, s := range []string{"0.01", "1", "100", "99999999.99"} {
		assert.NoError(t, ValidateAmount(d(s)), "amount %s", s)
	}
	for _, s := range []string{"0", "-0.01", "-5"} {
		assert.ErrorIs(t, ValidateAmount(d(s)), ErrInvalidAmount, "amount %s", s)
	}
}

func TestOpen(t *testing.T) {
	a := open(t, "200")
	assert.Equal(t, "200.00", a.Balance().StringFixed(2))

	for _, s := range []string{"0", "-1"} {
		acct, err := Open(d(s))
		assert.Nil(t, acct)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestDeposit(t *testing.T) {
	a := open(t, "100")

	bal, err := a.Deposit(d("50"))
	require.NoError(t, err)
	assert.Equal(t, "150.00", bal.StringFixed(2))

	bal, err = a.Deposit(d("-5"))
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, "150.00", bal.StringFixed(2))
	assert.Equal(t, "150.00", a.Balance().StringFixed(2))

	_, err = a.Deposit(decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDepositIsExact(t *testing.T) {
	a := open(t, "0.1")
	for i := 0; i < 9; i++ {
		_, err := a.Deposit(d("0.1"))
		require.NoError(t, err)
	}
	assert.True(t, a.Balance().Equal(d("1")), "got %s", a.Balance())
}

func TestWithdrawBoundary(t *testing.T) {
	a := open(t, "100")

	bal, err := a.Withdraw(d("100"))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, "100.00", bal.StringFixed(2))

	_, err = a.Withdraw(d("100.01"))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, "100.00", a.Balance().StringFixed(2))

	bal, err = a.Withdraw(d("99.99"))
	require.NoError(t, err)
	assert.Equal(t, "0.01", bal.StringFixed(2))
	assert.False(t, a.Balance().IsNegative())
}

func TestWithdrawInvalidAmount(t *testing.T) {
	a := open(t, "100")
	for _, s := range []string{"0", "-10"} {
		_, err := a.Withdraw(d(s))
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.Equal(t, "100.00", a.Balance().StringFixed(2))
}

func TestBalanceNeverNegative(t *testing.T) {
	a := open(t, "10")
	ops := []struct {
		withdraw bool
		amount   string
	}{
		{true, "3"}, {true, "7"}, {false, "5"}, {true, "11"}, {true, "11.99"}, {false, "0.5"}, {true, "12.49"},
	}
	for _, op := range ops {
		if op.withdraw {
			_, _ = a.Withdraw(d(op.amount))
		} else {
			_, _ = a.Deposit(d(op.amount))
		}
		assert.False(t, a.Balance().IsNegative(), "after %+v balance=%s", op, a.Balance())
	}
}
