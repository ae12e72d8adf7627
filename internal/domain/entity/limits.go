package entity

import (
	"github.com/quintans/faults"

	"github.com/DamianCazal/kipu-bank/internal/domain"
)

// BankLimits holds the two configuration bounds fixed at construction: the
// global cap on total custodied value and the per withdrawal limit.
type BankLimits struct {
	bankCap       int64
	maxWithdrawal int64
}

func NewBankLimits(bankCap, maxWithdrawal int64) (BankLimits, error) {
	if bankCap <= 0 || maxWithdrawal <= 0 {
		return BankLimits{}, faults.Wrap(&domain.InvalidConfigurationError{
			BankCap:       bankCap,
			MaxWithdrawal: maxWithdrawal,
		})
	}
	return BankLimits{
		bankCap:       bankCap,
		maxWithdrawal: maxWithdrawal,
	}, nil
}

func (l BankLimits) BankCap() int64 {
	return l.bankCap
}

func (l BankLimits) MaxWithdrawal() int64 {
	return l.maxWithdrawal
}
