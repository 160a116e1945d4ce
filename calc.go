// Package calc holds the shared vocabulary of the inline calculator:
// rate tokens and the per-request price table both feeds are merged into.
package calc

import "github.com/shopspring/decimal"

// Token a short alphabetic shorthand for a live market price or cross-rate
type Token string

// Watched tokens. The first group is fetched directly from a feed,
// the second is derived from primitives once both operands are present.
const (
	USD Token = "ur"  // CBR USD/RUB
	CNY Token = "cr"  // CBR CNY/RUB
	EUR Token = "er"  // CBR EUR/RUB
	BTC Token = "bnc" // Binance BTC/USDT
	ETH Token = "eth" // Binance ETH/USDT

	EURUSD Token = "eu" // er / ur
	BTCRUB Token = "ob" // bnc * ur
	ETHRUB Token = "oe" // eth * ur
)

// Prices maps tokens to their current values. A table is built fresh for
// every request and discarded after one evaluation; it is never cached.
type Prices map[Token]decimal.Decimal

// CBRCodes maps currency-feed character codes to their tokens.
var CBRCodes = map[string]Token{
	"USD": USD,
	"CNY": CNY,
	"EUR": EUR,
}

// BinanceSymbols maps crypto-feed ticker symbols to their tokens.
var BinanceSymbols = map[string]Token{
	"BTCUSDT": BTC,
	"ETHUSDT": ETH,
}

// CryptoTokens are the tokens that switch result rounding from 2 to 8
// fractional digits when they appear in the user's input.
var CryptoTokens = []Token{BTC, ETH, BTCRUB, ETHRUB}
