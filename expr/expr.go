// Package expr turns a free-text arithmetic expression with rate
// shorthands and percent adjustments into a formatted decimal result.
package expr

import (
	"regexp"
	"strings"

	calc "github.com/vert5x-git/tgInlineCalc"
)

// safePattern the character whitelist the fully rewritten expression must
// match before evaluation. This is the sole gate between user input and
// the evaluator, so it runs after every rewrite stage, never before.
var safePattern = regexp.MustCompile(`^[ \d.+\-*/()]+$`)

// Service evaluates user expressions against a price table
type Service interface {
	Evaluate(expression string, prices calc.Prices) (string, error)
}

type service struct{}

// NewService constructs a valid expr Service.
func NewService() Service {
	return service{}
}

// Evaluate runs the rewrite pipeline over expression and evaluates the
// outcome: token substitution, percent rewriting, character validation,
// decimal arithmetic, rounding and locale formatting. The price table is
// consumed once; nothing is cached between calls.
func (service) Evaluate(expression string, prices calc.Prices) (string, error) {
	if len(prices) == 0 {
		return "", ErrRatesUnavailable
	}

	rewritten := Substitute(expression, prices)
	rewritten = RewritePercent(rewritten)

	if !safePattern.MatchString(rewritten) {
		return "", ErrInvalidCharacters
	}

	result, err := eval(rewritten)
	if err != nil {
		return "", err
	}

	// crypto amounts need more fractional digits than fiat; the check is
	// a substring test on the original input, before any substitution
	places := int32(2)
	if containsCrypto(expression) {
		places = 8
	}

	return Format(result, places), nil
}

func containsCrypto(expression string) bool {
	for _, token := range calc.CryptoTokens {
		if strings.Contains(expression, string(token)) {
			return true
		}
	}
	return false
}
