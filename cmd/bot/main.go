package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	calc "github.com/vert5x-git/tgInlineCalc"
	"github.com/vert5x-git/tgInlineCalc/binance"
	"github.com/vert5x-git/tgInlineCalc/bot"
	"github.com/vert5x-git/tgInlineCalc/cbr"
	"github.com/vert5x-git/tgInlineCalc/config"
	"github.com/vert5x-git/tgInlineCalc/expr"
	"github.com/vert5x-git/tgInlineCalc/rates"
	"github.com/vert5x-git/tgInlineCalc/stats"
)

func main() {
	cfg := config.MustLoad()

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cbrService := cbr.NewService(cfg.CBR.URL, cfg.HTTPTimeout, calc.CBRCodes)
	cbrService = cbr.NewLoggingService(log.With(logger, "component", "cbr"), cbrService)

	binanceService := binance.NewService(cfg.Binance.URL, cfg.HTTPTimeout)
	binanceService = binance.NewLoggingService(log.With(logger, "component", "binance"), binanceService)

	ratesService := rates.NewService(cbrService, binanceService, calc.BinanceSymbols, log.With(logger, "component", "rates"))

	evalService := expr.NewService()
	evalService = expr.NewLoggingService(log.With(logger, "component", "expr"), evalService)

	store := stats.Open(cfg.StatsFile, log.With(logger, "component", "stats"))

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Log("msg", "telegram authorization failed", "err", err)
		os.Exit(1)
	}

	b := bot.New(api, ratesService, evalService, store, cfg.Telegram.AdminID, cfg.HTTPTimeout, log.With(logger, "component", "bot"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log("msg", "bot started", "username", api.Self.UserName)
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log("msg", "bot stopped", "err", err)
		os.Exit(1)
	}
	logger.Log("msg", "bot stopped")
}
