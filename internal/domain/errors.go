package domain

import (
	"errors"
	"fmt"
)

// ErrZeroAmount rejects any operation that would move no value.
var ErrZeroAmount = errors.New("amount must be greater than zero")

// InvalidConfigurationError is returned at construction time when one of the
// bank bounds is not strictly positive.
type InvalidConfigurationError struct {
	BankCap       int64
	MaxWithdrawal int64
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid bank configuration: bankCap=%d, maxWithdrawal=%d, both must be > 0", e.BankCap, e.MaxWithdrawal)
}

// CapacityExceededError is returned when a deposit would push the total
// custodied amount over the bank cap. Available reports how much the caller
// could still deposit.
type CapacityExceededError struct {
	Attempted int64
	Available int64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("deposit of %d exceeds bank capacity, only %d available", e.Attempted, e.Available)
}

// WithdrawalLimitExceededError is returned when a single withdrawal asks for
// more than the per operation limit. The limit is inclusive.
type WithdrawalLimitExceededError struct {
	Attempted int64
	Limit     int64
}

func (e *WithdrawalLimitExceededError) Error() string {
	return fmt.Sprintf("withdrawal of %d exceeds the per operation limit of %d", e.Attempted, e.Limit)
}

// InsufficientBalanceError carries the true balance so the caller can decide
// whether retrying with a smaller amount makes sense.
type InsufficientBalanceError struct {
	Account   string
	Balance   int64
	Attempted int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("account %s holds %d, cannot withdraw %d", e.Account, e.Balance, e.Attempted)
}

// TransferFailedError is returned when the outbound transfer of an otherwise
// valid withdrawal was not accepted. The ledger is left exactly as it was
// before the withdrawal attempt.
type TransferFailedError struct {
	Recipient string
	Amount    int64
	Err       error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("transfer of %d to %s failed: %v", e.Amount, e.Recipient, e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}
