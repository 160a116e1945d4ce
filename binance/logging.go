package binance

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/shopspring/decimal"
)

// loggingService decorates a binance.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Price(ctx context.Context, symbol string) (price decimal.Decimal, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "price",
			"symbol", symbol,
			"price", price,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Price(ctx, symbol)
}
