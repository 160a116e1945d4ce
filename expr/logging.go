package expr

import (
	"time"

	"github.com/go-kit/log"

	calc "github.com/vert5x-git/tgInlineCalc"
)

// loggingService decorates an expr.Service with logging
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

func (s *loggingService) Evaluate(expression string, prices calc.Prices) (result string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "evaluate",
			"expression", expression,
			"result", result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(expression, prices)
}
