package gateway

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/DamianCazal/kipu-bank/internal/event"
)

// Loopback accepts every payout without leaving the process. Used when no
// message bus is configured.
type Loopback struct{}

func (Loopback) Send(ctx context.Context, recipient string, amount int64) error {
	log.WithFields(log.Fields{
		"method": "Loopback.Send",
	}).Infof("Releasing %d to account %s", amount, recipient)
	return nil
}

// LogNotifier writes completion events to the log instead of a bus.
type LogNotifier struct{}

func (LogNotifier) DepositCompleted(ctx context.Context, e event.DepositCompleted) error {
	log.WithFields(log.Fields{
		"event": e.GetType(),
		"id":    e.ID,
	}).Infof("Account %s received %d", e.Account, e.Amount)
	return nil
}

func (LogNotifier) WithdrawalCompleted(ctx context.Context, e event.WithdrawalCompleted) error {
	log.WithFields(log.Fields{
		"event": e.GetType(),
		"id":    e.ID,
	}).Infof("Account %s released %d to %s", e.Account, e.Amount, e.Recipient)
	return nil
}
