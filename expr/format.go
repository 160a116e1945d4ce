package expr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders value with the Russian numeric convention: integer
// digits grouped in threes with a space, comma as the decimal point,
// exactly places fractional digits. Rounding is half-even.
func Format(value decimal.Decimal, places int32) string {
	fixed := value.StringFixedBank(places)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
