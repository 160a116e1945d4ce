// Package cbr fetches the Central Bank of Russia daily exchange rates.
package cbr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	calc "github.com/vert5x-git/tgInlineCalc"
)

// valueScale fractional digits kept when dividing a quote by its nominal
const valueScale = 18

// Service wraps the CBR daily rates endpoint
type Service interface {
	Rates(ctx context.Context) (calc.Prices, error)
}

// service CBR API client
type service struct {
	// url daily rates endpoint
	url string

	// watched maps CharCode values to tokens; other codes are ignored
	watched map[string]calc.Token

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid cbr Service.
func NewService(url string, timeout time.Duration, watched map[string]calc.Token) Service {
	return &service{
		url:     url,
		watched: watched,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// valCurs mirrors the daily rates XML document. Value uses a comma as
// the decimal separator and applies per Nominal units of the currency.
type valCurs struct {
	Valutes []struct {
		CharCode string `xml:"CharCode"`
		Nominal  string `xml:"Nominal"`
		Value    string `xml:"Value"`
	} `xml:"Valute"`
}

// Rates loads the current daily rates for every watched currency code.
// Rates change once a day.
func (s *service) Rates(ctx context.Context) (calc.Prices, error) {
	request, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %v", httpResponse.Status)
	}

	// The endpoint declares windows-1251 in the XML prolog.
	decoder := xml.NewDecoder(httpResponse.Body)
	decoder.CharsetReader = charsetReader

	var response valCurs
	if err := decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding xml: %w", err)
	}

	prices := calc.Prices{}
	for _, valute := range response.Valutes {
		token, ok := s.watched[valute.CharCode]
		if !ok {
			continue
		}
		value, err := decimal.NewFromString(strings.Replace(valute.Value, ",", ".", 1))
		if err != nil {
			return nil, fmt.Errorf("bad rate value [%v]: %w", valute.CharCode, err)
		}
		nominal, err := decimal.NewFromString(valute.Nominal)
		if err != nil {
			return nil, fmt.Errorf("bad nominal [%v]: %w", valute.CharCode, err)
		}
		prices[token] = value.DivRound(nominal, valueScale)
	}

	return prices, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "windows-1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	case "utf-8":
		return input, nil
	}
	return nil, fmt.Errorf("unsupported charset: %v", charset)
}
