package cbr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	calc "github.com/vert5x-git/tgInlineCalc"
)

const dailyRatesXML = `<?xml version="1.0" encoding="windows-1251"?>
<ValCurs Date="29.08.2026" name="Foreign Currency Market">
<Valute ID="R01235"><NumCode>840</NumCode><CharCode>USD</CharCode><Nominal>1</Nominal><Value>80,8601</Value></Valute>
<Valute ID="R01375"><NumCode>156</NumCode><CharCode>CNY</CharCode><Nominal>10</Nominal><Value>112,5000</Value></Valute>
<Valute ID="R01239"><NumCode>978</NumCode><CharCode>EUR</CharCode><Nominal>1</Nominal><Value>94,1234</Value></Valute>
<Valute ID="R01335"><NumCode>398</NumCode><CharCode>KZT</CharCode><Nominal>100</Nominal><Value>16,9000</Value></Valute>
</ValCurs>`

func TestService_Rates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/xml; charset=windows-1251")
		_, _ = rw.Write([]byte(dailyRatesXML))
	}))
	defer server.Close()

	s := NewService(server.URL, time.Second, calc.CBRCodes)

	prices, err := s.Rates(context.Background())

	assert.Nil(t, err)
	assert.Len(t, prices, 3)
	assert.True(t, prices[calc.USD].Equal(decimal.RequireFromString("80.8601")))
	// value divided by nominal, comma normalized to dot
	assert.True(t, prices[calc.CNY].Equal(decimal.RequireFromString("11.25")))
	// the unwatched KZT record is ignored, hence Len == 3 above
	assert.True(t, prices[calc.EUR].Equal(decimal.RequireFromString("94.1234")))
}

func TestService_RatesBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewService(server.URL, time.Second, calc.CBRCodes)

	_, err := s.Rates(context.Background())

	assert.NotNil(t, err)
}

func TestService_RatesMalformedXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte("<ValCurs><Valute>"))
	}))
	defer server.Close()

	s := NewService(server.URL, time.Second, calc.CBRCodes)

	_, err := s.Rates(context.Background())

	assert.NotNil(t, err)
}

func TestService_RatesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(10 * time.Millisecond)
		_, _ = rw.Write([]byte(dailyRatesXML))
	}))
	defer server.Close()

	s := NewService(server.URL, time.Millisecond, calc.CBRCodes)

	_, err := s.Rates(context.Background())

	assert.NotNil(t, err)
}
