package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedgerStartsEmpty(t *testing.T) {
	l := NewLedger()

	require.Zero(t, l.Balance("alice"))
	require.Zero(t, l.TotalBalance())
	require.Zero(t, l.DepositsCount())
	require.Zero(t, l.WithdrawalsCount())
}

func TestLedgerCreditDebit(t *testing.T) {
	l := NewLedger()

	l.Credit("alice", 100)
	l.Credit("bob", 40)
	l.Debit("alice", 30)

	require.Equal(t, int64(70), l.Balance("alice"))
	require.Equal(t, int64(40), l.Balance("bob"))
	require.Equal(t, int64(110), l.TotalBalance())
	require.Equal(t, uint64(2), l.DepositsCount())
	require.Equal(t, uint64(1), l.WithdrawalsCount())
}

func TestLedgerRevertDebit(t *testing.T) {
	l := NewLedger()

	l.Credit("alice", 100)
	l.Debit("alice", 60)
	l.RevertDebit("alice", 60)

	require.Equal(t, int64(100), l.Balance("alice"))
	require.Equal(t, int64(100), l.TotalBalance())
	require.Equal(t, uint64(1), l.DepositsCount())
	require.Zero(t, l.WithdrawalsCount())
}

// the sum of all balances must equal the running total after any sequence of
// mutations
func TestLedgerTotalMatchesSum(t *testing.T) {
	l := NewLedger()

	l.Credit("alice", 100)
	l.Credit("bob", 50)
	l.Debit("bob", 20)
	l.Credit("carol", 5)
	l.Debit("alice", 100)
	l.RevertDebit("alice", 100)

	var sum int64
	for _, account := range []string{"alice", "bob", "carol"} {
		balance := l.Balance(account)
		require.GreaterOrEqual(t, balance, int64(0))
		sum += balance
	}
	require.Equal(t, sum, l.TotalBalance())
}
