package cbr

import (
	"context"
	"time"

	"github.com/go-kit/log"

	calc "github.com/vert5x-git/tgInlineCalc"
)

// loggingService decorates a cbr.Service with logging
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

func (s *loggingService) Rates(ctx context.Context) (prices calc.Prices, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"tokens", len(prices),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx)
}
