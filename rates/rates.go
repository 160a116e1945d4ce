// Package rates aggregates the currency and crypto feeds into one price
// table per request.
package rates

import (
	"context"
	"sync"

	"github.com/go-kit/log"

	calc "github.com/vert5x-git/tgInlineCalc"
	"github.com/vert5x-git/tgInlineCalc/binance"
	"github.com/vert5x-git/tgInlineCalc/cbr"
)

// crossRateScale fractional digits kept when deriving cross-rates
const crossRateScale = 18

// Service assembles a fresh price table from every configured source
type Service interface {
	// FetchAll never fails as a whole: sources that error are logged and
	// their tokens omitted. An empty table means every source failed and
	// the caller must not attempt evaluation.
	FetchAll(ctx context.Context) calc.Prices
}

// service fans out to the feeds and merges whatever they return
type service struct {
	// cbr the currency feed
	cbr cbr.Service

	// binance the crypto feed, queried once per watched symbol
	binance binance.Service

	// symbols maps watched ticker symbols to tokens
	symbols map[string]calc.Token

	// logger records per-source failures, which FetchAll swallows
	logger log.Logger
}

// NewService constructs a valid rates Service.
func NewService(cbrService cbr.Service, binanceService binance.Service, symbols map[string]calc.Token, logger log.Logger) Service {
	return &service{
		cbr:     cbrService,
		binance: binanceService,
		symbols: symbols,
		logger:  logger,
	}
}

// FetchAll issues the currency-feed call and one call per crypto symbol
// concurrently, waits for all of them to settle, then derives cross-rates
// from whatever primitives arrived.
func (s *service) FetchAll(ctx context.Context) calc.Prices {
	var (
		wg     sync.WaitGroup
		lock   sync.Mutex
		merged = calc.Prices{}
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		prices, err := s.cbr.Rates(ctx)
		if err != nil {
			s.logger.Log("msg", "currency feed failed", "err", err)
			return
		}
		lock.Lock()
		defer lock.Unlock()
		for token, value := range prices {
			merged[token] = value
		}
	}()

	for symbol, token := range s.symbols {
		wg.Add(1)
		go func(symbol string, token calc.Token) {
			defer wg.Done()
			price, err := s.binance.Price(ctx, symbol)
			if err != nil {
				s.logger.Log("msg", "ticker fetch failed", "symbol", symbol, "err", err)
				return
			}
			lock.Lock()
			defer lock.Unlock()
			merged[token] = price
		}(symbol, token)
	}

	wg.Wait()
	derive(merged)
	return merged
}

// derive adds cross-rates whose operands are both present. A missing
// operand just means the cross-rate is omitted.
func derive(prices calc.Prices) {
	ur, hasUR := prices[calc.USD]
	if !hasUR {
		return
	}
	if er, ok := prices[calc.EUR]; ok {
		prices[calc.EURUSD] = er.DivRound(ur, crossRateScale)
	}
	if bnc, ok := prices[calc.BTC]; ok {
		prices[calc.BTCRUB] = bnc.Mul(ur)
	}
	if eth, ok := prices[calc.ETH]; ok {
		prices[calc.ETHRUB] = eth.Mul(ur)
	}
}
