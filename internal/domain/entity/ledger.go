package entity

// Ledger owns all mutable accounting state: one balance per account, the
// running total and the cumulative operation counters. Mutators never invoke
// external code, so they are safe to call in any order relative to outbound
// transfers. The sum of all balances always equals TotalBalance.
type Ledger struct {
	balances         map[string]int64
	totalBalance     int64
	depositsCount    uint64
	withdrawalsCount uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]int64),
	}
}

// Balance returns the current balance of an account, zero for accounts that
// were never credited.
func (l *Ledger) Balance(account string) int64 {
	return l.balances[account]
}

func (l *Ledger) TotalBalance() int64 {
	return l.totalBalance
}

func (l *Ledger) DepositsCount() uint64 {
	return l.depositsCount
}

func (l *Ledger) WithdrawalsCount() uint64 {
	return l.withdrawalsCount
}

// Credit adds amount to one balance and to the total and counts the deposit.
// The caller must have already validated the amount against the bank cap.
func (l *Ledger) Credit(account string, amount int64) {
	l.balances[account] += amount
	l.totalBalance += amount
	l.depositsCount++
}

// Debit subtracts amount from one balance and from the total and counts the
// withdrawal. The caller must have already validated sufficiency and limits.
func (l *Ledger) Debit(account string, amount int64) {
	l.balances[account] -= amount
	l.totalBalance -= amount
	l.withdrawalsCount++
}

// RevertDebit undoes a Debit after a failed outbound transfer, restoring the
// balance, the total and the withdrawal counter to their pre debit values.
func (l *Ledger) RevertDebit(account string, amount int64) {
	l.balances[account] += amount
	l.totalBalance += amount
	l.withdrawalsCount--
}
