package expr

import (
	"regexp"
	"sort"

	calc "github.com/vert5x-git/tgInlineCalc"
)

var (
	// percent patterns: a number (optionally wrapped in one level of
	// parentheses, spaces and dots allowed inside) adjusted up or down
	// by a plain decimal percentage
	percentPlus  = regexp.MustCompile(`(\(?\d[\d.\s]*\)?)\s*\+\s*(\d+\.?\d*)\s*%`)
	percentMinus = regexp.MustCompile(`(\(?\d[\d.\s]*\)?)\s*-\s*(\d+\.?\d*)\s*%`)
)

// Substitute replaces every whole-word occurrence of a known token with
// its price. Tokens are tried longest first so a token that is a textual
// prefix of another can never clip the longer one. A single pass, never
// recursive: substituted values are not scanned again.
func Substitute(expression string, prices calc.Prices) string {
	tokens := make([]calc.Token, 0, len(prices))
	for token := range prices {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	for _, token := range tokens {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(string(token)) + `\b`)
		expression = pattern.ReplaceAllLiteralString(expression, prices[token].String())
	}
	return expression
}

// RewritePercent turns "x + p%" into "(x * (1 + p / 100))" and the minus
// form into "(x * (1 - p / 100))". One non-overlapping left-to-right pass
// per direction, plus before minus; leftovers that still contain '%'
// fail validation downstream.
func RewritePercent(expression string) string {
	expression = percentPlus.ReplaceAllString(expression, `(${1} * (1 + ${2} / 100))`)
	return percentMinus.ReplaceAllString(expression, `(${1} * (1 - ${2} / 100))`)
}
