package domain

import (
	"context"

	"github.com/DamianCazal/kipu-bank/internal/event"
)

type DepositCommand struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

type WithdrawCommand struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

type BalanceDTO struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type BankStatsDTO struct {
	TotalBalance     int64  `json:"totalBalance"`
	DepositsCount    uint64 `json:"depositsCount"`
	WithdrawalsCount uint64 `json:"withdrawalsCount"`
	BankCap          int64  `json:"bankCap"`
	MaxWithdrawal    int64  `json:"maxWithdrawal"`
}

type BankService interface {
	Deposit(ctx context.Context, cmd DepositCommand) error
	Withdraw(ctx context.Context, cmd WithdrawCommand) error
	Balance(ctx context.Context, account string) (int64, error)
	Stats(ctx context.Context) (BankStatsDTO, error)
}

// TransferExecutor hands funds back to an external recipient. Implementations
// are untrusted: Send may decline, may take arbitrarily long and may call back
// into the BankService before returning.
type TransferExecutor interface {
	Send(ctx context.Context, recipient string, amount int64) error
}

// Notifier publishes completion events. Publishing failures do not fail the
// operation that produced the event.
type Notifier interface {
	DepositCompleted(ctx context.Context, e event.DepositCompleted) error
	WithdrawalCompleted(ctx context.Context, e event.WithdrawalCompleted) error
}
