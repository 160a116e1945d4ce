// Package binance fetches spot prices from the Binance ticker endpoint.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Service wraps the Binance price ticker endpoint
type Service interface {
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// service Binance API client
type service struct {
	// url ticker endpoint, parameterized by symbol via query string
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid binance Service.
func NewService(url string, timeout time.Duration) Service {
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// Price loads the current spot price for one ticker symbol.
func (s *service) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	type Response struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"` // decimal-formatted string
	}

	url := fmt.Sprintf("%v?symbol=%v", s.url, symbol)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("unexpected status: %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decoding json: %w", err)
	}

	price, err := decimal.NewFromString(response.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad price value [%v]: %w", symbol, err)
	}

	return price, nil
}
