package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DamianCazal/kipu-bank/internal/domain"
)

// UnknownCallPolicy decides what to do with an inbound value transfer that
// carries data the bank does not understand: treat it as a plain deposit and
// discard the data, or reject the call.
type UnknownCallPolicy string

const (
	PolicyDeposit UnknownCallPolicy = "deposit"
	PolicyReject  UnknownCallPolicy = "reject"
)

type RestController struct {
	bankService domain.BankService
	policy      UnknownCallPolicy
}

func NewRestController(bankService domain.BankService, policy UnknownCallPolicy) RestController {
	return RestController{
		bankService: bankService,
		policy:      policy,
	}
}

func (ctl RestController) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "ready to serve")
}

func (ctl RestController) Deposit(c echo.Context) error {
	cmd := domain.DepositCommand{}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	err := ctl.bankService.Deposit(c.Request().Context(), cmd)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (ctl RestController) Withdraw(c echo.Context) error {
	cmd := domain.WithdrawCommand{}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	err := ctl.bankService.Withdraw(c.Request().Context(), cmd)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Inbound handles a value transfer that selected no operation, treating it as
// an implicit deposit for the sender, subject to the unknown call policy.
func (ctl RestController) Inbound(c echo.Context) error {
	raw := map[string]json.RawMessage{}
	if err := c.Bind(&raw); err != nil {
		return err
	}
	if ctl.policy == PolicyReject {
		for k := range raw {
			if k != "account" && k != "amount" {
				return c.String(http.StatusBadRequest, "unrecognized call data")
			}
		}
	}
	cmd := domain.DepositCommand{}
	if v, ok := raw["account"]; ok {
		if err := json.Unmarshal(v, &cmd.Account); err != nil {
			return c.String(http.StatusBadRequest, "malformed account")
		}
	}
	if v, ok := raw["amount"]; ok {
		if err := json.Unmarshal(v, &cmd.Amount); err != nil {
			return c.String(http.StatusBadRequest, "malformed amount")
		}
	}
	err := ctl.bankService.Deposit(c.Request().Context(), cmd)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (ctl RestController) Balance(c echo.Context) error {
	account := c.Param("id")
	balance, err := ctl.bankService.Balance(c.Request().Context(), account)
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.BalanceDTO{
		Account: account,
		Balance: balance,
	})
}

func (ctl RestController) Stats(c echo.Context) error {
	dto, err := ctl.bankService.Stats(c.Request().Context())
	ok, err := resolveError(c, err)
	if ok || err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

func resolveError(c echo.Context, err error) (bool, error) {
	if err == nil {
		return false, nil
	}

	var (
		capErr *domain.CapacityExceededError
		limErr *domain.WithdrawalLimitExceededError
		insErr *domain.InsufficientBalanceError
		trfErr *domain.TransferFailedError
	)
	switch {
	case errors.Is(err, domain.ErrZeroAmount):
		return true, c.String(http.StatusBadRequest, err.Error())
	case errors.As(err, &capErr):
		return true, c.JSON(http.StatusConflict, echo.Map{
			"error":     capErr.Error(),
			"available": capErr.Available,
		})
	case errors.As(err, &limErr):
		return true, c.JSON(http.StatusConflict, echo.Map{
			"error": limErr.Error(),
			"limit": limErr.Limit,
		})
	case errors.As(err, &insErr):
		return true, c.JSON(http.StatusConflict, echo.Map{
			"error":   insErr.Error(),
			"balance": insErr.Balance,
		})
	case errors.As(err, &trfErr):
		return true, c.String(http.StatusBadGateway, trfErr.Error())
	}
	return false, err
}
