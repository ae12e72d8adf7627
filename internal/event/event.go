package event

import "time"

const (
	Event_DepositCompleted    = "DepositCompleted"
	Event_WithdrawalCompleted = "WithdrawalCompleted"
)

// DepositCompleted is emitted exactly once per successful deposit.
type DepositCompleted struct {
	ID      string    `json:"id"`
	Account string    `json:"account"`
	Amount  int64     `json:"amount"`
	At      time.Time `json:"at"`
}

func (_ DepositCompleted) GetType() string {
	return Event_DepositCompleted
}

// WithdrawalCompleted is emitted exactly once per successful withdrawal,
// after the outbound transfer was accepted.
type WithdrawalCompleted struct {
	ID        string    `json:"id"`
	Account   string    `json:"account"`
	Recipient string    `json:"recipient"`
	Amount    int64     `json:"amount"`
	At        time.Time `json:"at"`
}

func (_ WithdrawalCompleted) GetType() string {
	return Event_WithdrawalCompleted
}
