package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quintans/faults"
	log "github.com/sirupsen/logrus"

	"github.com/DamianCazal/kipu-bank/internal/domain"
	"github.com/DamianCazal/kipu-bank/internal/domain/entity"
	"github.com/DamianCazal/kipu-bank/internal/event"
)

// BankService applies deposits and withdrawals to the ledger under the bank
// limits and coordinates the outbound transfer for withdrawals.
//
// Ordering is checks -> effects -> interactions: the ledger is mutated under
// the mutex, the mutex is released, and only then the transfer executor runs.
// The lock is never held across Send, so a reentrant call issued from inside
// the executor proceeds and observes the already debited state.
type BankService struct {
	mu       sync.Mutex
	ledger   *entity.Ledger
	limits   entity.BankLimits
	transfer domain.TransferExecutor
	notifier domain.Notifier

	// total of debits whose transfer is still in flight, kept reserved
	// against the cap so a failed transfer can always be re-credited
	pending int64
}

func NewBankService(limits entity.BankLimits, transfer domain.TransferExecutor, notifier domain.Notifier) *BankService {
	return &BankService{
		ledger:   entity.NewLedger(),
		limits:   limits,
		transfer: transfer,
		notifier: notifier,
	}
}

func (s *BankService) Deposit(ctx context.Context, cmd domain.DepositCommand) error {
	if cmd.Amount <= 0 {
		return faults.Wrap(domain.ErrZeroAmount)
	}

	s.mu.Lock()
	// headroom is compared instead of summing, so the check cannot overflow:
	// totalBalance+pending is always in [0, bankCap]. Withdrawals in flight
	// stay reserved, otherwise their rollback could push the total over the cap.
	available := s.limits.BankCap() - s.ledger.TotalBalance() - s.pending
	if cmd.Amount > available {
		s.mu.Unlock()
		return faults.Wrap(&domain.CapacityExceededError{
			Attempted: cmd.Amount,
			Available: available,
		})
	}
	s.ledger.Credit(cmd.Account, cmd.Amount)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"method": "BankService.Deposit",
	}).Infof("Deposited %d into account %s", cmd.Amount, cmd.Account)

	s.notifyDeposit(ctx, cmd.Account, cmd.Amount)
	return nil
}

func (s *BankService) Withdraw(ctx context.Context, cmd domain.WithdrawCommand) error {
	if cmd.Amount <= 0 {
		return faults.Wrap(domain.ErrZeroAmount)
	}

	s.mu.Lock()
	if cmd.Amount > s.limits.MaxWithdrawal() {
		s.mu.Unlock()
		return faults.Wrap(&domain.WithdrawalLimitExceededError{
			Attempted: cmd.Amount,
			Limit:     s.limits.MaxWithdrawal(),
		})
	}
	balance := s.ledger.Balance(cmd.Account)
	if balance < cmd.Amount {
		s.mu.Unlock()
		return faults.Wrap(&domain.InsufficientBalanceError{
			Account:   cmd.Account,
			Balance:   balance,
			Attempted: cmd.Amount,
		})
	}
	// effects before interactions: the ledger reflects the withdrawal before
	// any external code runs, so a nested call cannot spend these funds twice.
	// The debited amount stays reserved against the cap until the transfer
	// settles, so the re-credit on failure can never cross it.
	s.ledger.Debit(cmd.Account, cmd.Amount)
	s.pending += cmd.Amount
	s.mu.Unlock()

	// funds always go back to the account that asked for them
	if err := s.transfer.Send(ctx, cmd.Account, cmd.Amount); err != nil {
		s.mu.Lock()
		s.pending -= cmd.Amount
		s.ledger.RevertDebit(cmd.Account, cmd.Amount)
		s.mu.Unlock()
		return faults.Wrap(&domain.TransferFailedError{
			Recipient: cmd.Account,
			Amount:    cmd.Amount,
			Err:       err,
		})
	}
	s.mu.Lock()
	s.pending -= cmd.Amount
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"method": "BankService.Withdraw",
	}).Infof("Withdrew %d from account %s", cmd.Amount, cmd.Account)

	s.notifyWithdrawal(ctx, cmd.Account, cmd.Amount)
	return nil
}

func (s *BankService) Balance(ctx context.Context, account string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Balance(account), nil
}

func (s *BankService) Stats(ctx context.Context) (domain.BankStatsDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.BankStatsDTO{
		TotalBalance:     s.ledger.TotalBalance(),
		DepositsCount:    s.ledger.DepositsCount(),
		WithdrawalsCount: s.ledger.WithdrawalsCount(),
		BankCap:          s.limits.BankCap(),
		MaxWithdrawal:    s.limits.MaxWithdrawal(),
	}, nil
}

func (s *BankService) notifyDeposit(ctx context.Context, account string, amount int64) {
	e := event.DepositCompleted{
		ID:      uuid.New().String(),
		Account: account,
		Amount:  amount,
		At:      time.Now().UTC(),
	}
	if err := s.notifier.DepositCompleted(ctx, e); err != nil {
		log.WithFields(log.Fields{
			"event": e.GetType(),
		}).Warnf("Failed to publish: %v", err)
	}
}

func (s *BankService) notifyWithdrawal(ctx context.Context, account string, amount int64) {
	e := event.WithdrawalCompleted{
		ID:        uuid.New().String(),
		Account:   account,
		Recipient: account,
		Amount:    amount,
		At:        time.Now().UTC(),
	}
	if err := s.notifier.WithdrawalCompleted(ctx, e); err != nil {
		log.WithFields(log.Fields{
			"event": e.GetType(),
		}).Warnf("Failed to publish: %v", err)
	}
}
