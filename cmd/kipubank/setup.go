package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/quintans/toolkit/latch"
	log "github.com/sirupsen/logrus"

	"github.com/DamianCazal/kipu-bank/internal/domain"
	"github.com/DamianCazal/kipu-bank/internal/domain/app"
	"github.com/DamianCazal/kipu-bank/internal/domain/entity"
	"github.com/DamianCazal/kipu-bank/internal/infra/controller"
	"github.com/DamianCazal/kipu-bank/internal/infra/gateway"
)

type Config struct {
	ApiPort       int   `env:"API_PORT" envDefault:"8000"`
	BankCap       int64 `env:"BANK_CAP,required"`
	MaxWithdrawal int64 `env:"MAX_WITHDRAWAL,required"`

	NatsURL       string        `env:"NATS_URL"`
	StanClusterID string        `env:"STAN_CLUSTER_ID" envDefault:"test-cluster"`
	Topic         string        `env:"TOPIC" envDefault:"bank"`
	PayoutTimeout time.Duration `env:"PAYOUT_TIMEOUT" envDefault:"500ms"`

	UnknownCallPolicy string `env:"UNKNOWN_CALL_POLICY" envDefault:"deposit"`
}

func Setup(cfg *Config) {
	limits, err := entity.NewBankLimits(cfg.BankCap, cfg.MaxWithdrawal)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	policy := controller.UnknownCallPolicy(cfg.UnknownCallPolicy)
	if policy != controller.PolicyDeposit && policy != controller.PolicyReject {
		log.Fatalf("unknown call policy '%s' is not one of: %s, %s", cfg.UnknownCallPolicy, controller.PolicyDeposit, controller.PolicyReject)
	}

	var (
		transfer domain.TransferExecutor
		notifier domain.Notifier
	)
	if cfg.NatsURL != "" {
		m, err := gateway.NewMessenger(cfg.NatsURL, cfg.StanClusterID, "kipu-bank-"+uuid.New().String(), cfg.Topic, cfg.PayoutTimeout)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		defer m.Close()
		transfer, notifier = m, m
	} else {
		log.Info("No NATS_URL configured, payouts are looped back")
		transfer, notifier = gateway.Loopback{}, gateway.LogNotifier{}
	}

	// Usecases
	bank := app.NewBankService(limits, transfer, notifier)

	// Controllers
	rest := controller.NewRestController(bank, policy)

	ltx := latch.NewCountDownLatch()
	ctx, cancel := context.WithCancel(context.Background())

	// rest server
	ltx.Add(1)
	go func() {
		startRestServer(ctx, rest, cfg.ApiPort)
		ltx.Done()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	ltx.WaitWithTimeout(3 * time.Second)
}

func startRestServer(ctx context.Context, c controller.RestController, port int) {
	// Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	e.GET("/", c.Ping)
	e.POST("/", c.Inbound)
	e.POST("/deposits", c.Deposit)
	e.POST("/withdrawals", c.Withdraw)
	e.GET("/accounts/:id/balance", c.Balance)
	e.GET("/stats", c.Stats)

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			log.Warnf("Shutting down REST server: %v", err)
		}
	}()

	// Start server
	address := fmt.Sprintf(":%d", port)
	if err := e.Start(address); err != nil {
		log.Info(err)
	}
}
