package bankaccount

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jstoebel/exercises/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openAccount(t *testing.T) *Account {
	t.Helper()

	a := New()
	require.NoError(t, a.Open())

	return a
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccountIsClosed(t *testing.T) {
	a := New()

	require.False(t, a.IsOpen())

	_, err := a.Balance()
	require.ErrorIs(t, err, domain.ErrAccountClosed)
}

func TestOpenClose(t *testing.T) {
	a := openAccount(t)

	got, err := a.Balance()
	require.NoError(t, err)
	require.True(t, got.IsZero())

	require.ErrorIs(t, a.Open(), domain.ErrAccountAlreadyOpen)

	require.NoError(t, a.Close())
	require.ErrorIs(t, a.Close(), domain.ErrAccountClosed)
}

func TestReopenResetsBalance(t *testing.T) {
	a := openAccount(t)

	_, err := a.Deposit(dec("50"))
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Open())

	got, err := a.Balance()
	require.NoError(t, err)
	require.True(t, got.IsZero(), "balance after reopen = %s", got)
}

func TestOperations(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(a *Account)
		op          func(a *Account) (decimal.Decimal, error)
		wantErr     error
		wantBalance string
	}{
		{
			name: "Deposit",
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Deposit(dec("100"))
			},
			wantBalance: "100",
		},
		{
			name: "DepositFraction",
			op: func(a *Account) (decimal.Decimal, error) {
				_, _ = a.Deposit(dec("0.1"))
				return a.Deposit(dec("0.2"))
			},
			wantBalance: "0.3",
		},
		{
			name: "Withdraw",
			setup: func(a *Account) {
				_, _ = a.Deposit(dec("100"))
			},
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Withdraw(dec("50"))
			},
			wantBalance: "50",
		},
		{
			name: "WithdrawEverything",
			setup: func(a *Account) {
				_, _ = a.Deposit(dec("100"))
			},
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Withdraw(dec("100"))
			},
			wantBalance: "0",
		},
		{
			name: "WithdrawMoreThanBalance",
			setup: func(a *Account) {
				_, _ = a.Deposit(dec("25"))
			},
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Withdraw(dec("50"))
			},
			wantErr:     domain.ErrInsufficientBalance,
			wantBalance: "25",
		},
		{
			name: "NegativeDeposit",
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Deposit(dec("-50"))
			},
			wantErr:     domain.ErrNonPositiveAmount,
			wantBalance: "0",
		},
		{
			name: "ZeroDeposit",
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Deposit(decimal.Zero)
			},
			wantErr:     domain.ErrNonPositiveAmount,
			wantBalance: "0",
		},
		{
			name: "NegativeWithdraw",
			setup: func(a *Account) {
				_, _ = a.Deposit(dec("100"))
			},
			op: func(a *Account) (decimal.Decimal, error) {
				return a.Withdraw(dec("-50"))
			},
			wantErr:     domain.ErrNonPositiveAmount,
			wantBalance: "100",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := openAccount(t)
			if tc.setup != nil {
				tc.setup(a)
			}

			_, err := tc.op(a)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := a.Balance()
			require.NoError(t, err)
			require.True(t, got.Equal(dec(tc.wantBalance)), "balance = %s, want %s", got, tc.wantBalance)
		})
	}
}

func TestClosedAccountRejectsOperations(t *testing.T) {
	a := openAccount(t)
	require.NoError(t, a.Close())

	_, err := a.Deposit(dec("1"))
	require.ErrorIs(t, err, domain.ErrAccountClosed)

	_, err = a.Withdraw(dec("1"))
	require.ErrorIs(t, err, domain.ErrAccountClosed)

	_, err = a.Balance()
	require.ErrorIs(t, err, domain.ErrAccountClosed)
}

func TestConcurrentTransactions(t *testing.T) {
	a := openAccount(t)

	_, err := a.Deposit(dec("1000"))
	require.NoError(t, err)

	const workers = 100

	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = a.Deposit(dec("5"))
		}()
		go func() {
			defer wg.Done()
			_, _ = a.Withdraw(dec("5"))
		}()
	}

	wg.Wait()

	got, err := a.Balance()
	require.NoError(t, err)
	require.True(t, got.Equal(dec("1000")), "balance = %s", got)
}

func TestConcurrentCloseNeverGoesNegative(t *testing.T) {
	a := openAccount(t)

	_, err := a.Deposit(dec("10"))
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		balances []decimal.Decimal
	)

	wg.Add(11)

	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()

			b, err := a.Withdraw(dec("3"))
			if err != nil {
				return
			}

			mu.Lock()
			balances = append(balances, b)
			mu.Unlock()
		}()
	}

	go func() {
		defer wg.Done()
		_ = a.Close()
	}()

	wg.Wait()

	require.LessOrEqual(t, len(balances), 3)

	for _, b := range balances {
		require.False(t, b.IsNegative(), "balance after withdraw = %s", b)
	}

	require.False(t, a.IsOpen())
	require.NoError(t, a.Open())
}
