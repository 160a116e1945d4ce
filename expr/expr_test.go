package expr

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	calc "github.com/vert5x-git/tgInlineCalc"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixturePrices() calc.Prices {
	return calc.Prices{
		calc.USD:    d("80"),
		calc.CNY:    d("11.25"),
		calc.EUR:    d("96"),
		calc.EURUSD: d("1.2"),
		calc.BTC:    d("100000"),
		calc.ETH:    d("4000"),
		calc.BTCRUB: d("8000000"),
		calc.ETHRUB: d("320000"),
	}
}

func TestService_Evaluate(t *testing.T) {
	prices := fixturePrices()
	s := NewService()

	tests := []struct {
		name       string
		expression string
		want       string
		wantErr    error
	}{
		{"plain arithmetic", "(237+78)/(66623-1000)", "0,00", nil},
		{"precedence", "2+3*4", "14,00", nil},
		{"parentheses", "(2+3)*4", "20,00", nil},
		{"unary minus", "-5+3", "-2,00", nil},
		{"division", "10/4", "2,50", nil},
		{"token substitution", "ur+1", "81,00", nil},
		{"two tokens", "ur + eu", "81,20", nil},
		{"percent up", "100 + 10%", "110,00", nil},
		{"percent down", "200 - 25%", "150,00", nil},
		{"percent on token", "ur+1.5%", "81,20", nil},
		{"crypto rounds to eight digits", "bnc", "100 000,00000000", nil},
		{"crypto in rubles", "ob+4%", "8 320 000,00000000", nil},
		{"fiat rounds to two digits", "ur*2", "160,00", nil},
		{"unknown token", "xyz+1", "", ErrInvalidCharacters},
		{"percent leftover", "100+10%-5%", "", ErrInvalidCharacters},
		{"trailing operator", "5+", "", ErrSyntax},
		{"unbalanced parenthesis", "(5+1", "", ErrSyntax},
		{"empty input", "", "", ErrSyntax},
		{"division by zero", "5/0", "", ErrDivisionByZero},
		{"double dot literal", "1.2.3", "", ErrInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Evaluate(tt.expression, prices)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_EvaluateEmptyPrices(t *testing.T) {
	s := NewService()

	_, err := s.Evaluate("ur+1", calc.Prices{})

	assert.True(t, errors.Is(err, ErrRatesUnavailable))
}

func TestService_EvaluateInvalidCharactersIsSyntaxClass(t *testing.T) {
	s := NewService()

	_, err := s.Evaluate("hello", fixturePrices())

	assert.True(t, errors.Is(err, ErrInvalidCharacters))
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestSubstitute_WholeWordOnly(t *testing.T) {
	prices := calc.Prices{calc.EUR: d("96")}

	// "er" is present in the table but "eur" must stay intact
	assert.Equal(t, "eur", Substitute("eur", prices))
	assert.Equal(t, "96+1", Substitute("er+1", prices))
}

func TestSubstitute_LongestTokenFirst(t *testing.T) {
	prices := calc.Prices{
		"e":  d("1"),
		"eu": d("2"),
	}

	// the longer token wins, no residual character from a partial match
	assert.Equal(t, "2", Substitute("eu", prices))
	assert.Equal(t, "1", Substitute("e", prices))
	assert.Equal(t, "2+1", Substitute("eu+e", prices))
}

func TestSubstitute_SinglePass(t *testing.T) {
	// a substituted value is not scanned for tokens again
	prices := calc.Prices{"x": d("5")}

	assert.Equal(t, "5*5", Substitute("x*x", prices))
}

func TestRewritePercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100+10%", "(100 * (1 + 10 / 100))"},
		{"200-25%", "(200 * (1 - 25 / 100))"},
		{"(100)+10%", "((100) * (1 + 10 / 100))"},
		{"100+10", "100+10"},
		{"100", "100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RewritePercent(tt.in), "input %q", tt.in)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value  string
		places int32
		want   string
	}{
		{"1234567.89", 2, "1 234 567,89"},
		{"0", 2, "0,00"},
		{"-1234.5", 2, "-1 234,50"},
		{"0.1", 8, "0,10000000"},
		{"100000", 8, "100 000,00000000"},
		{"0.125", 2, "0,12"}, // half-even
		{"42", 2, "42,00"},
		{"999", 2, "999,00"},
		{"1000", 2, "1 000,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(d(tt.value), tt.places), "value %v places %v", tt.value, tt.places)
	}
}
