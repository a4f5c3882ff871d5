package fixer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/infrastructure/file"
)

const (
	// CacheName キャッシュファイル名（拡張子なし）
	CacheName = "eur"
)

var requiredCurrencies = []model.CurrencyType{model.JPY, model.BTC, model.USD}

// Client fixer.io 用クライアント
type Client struct {
	fetcher    *file.Fetcher
	origin     string
	accessKey  string
	ttlMinutes int
	validate   bool
}

// NewClient 生成
func NewClient(fetcher *file.Fetcher, origin, accessKey string, ttlMinutes int, validate bool) *Client {
	return &Client{
		fetcher:    fetcher,
		origin:     origin,
		accessKey:  accessKey,
		ttlMinutes: ttlMinutes,
		validate:   validate,
	}
}

// GetExchangeRates EUR基準の為替レートを取得
func (c *Client) GetExchangeRates(ctx context.Context) (*model.ExchangeRates, error) {
	u, err := c.makeURL()
	if err != nil {
		return nil, err
	}

	req := file.Request{Name: CacheName, URL: u.String(), TTLMinutes: c.ttlMinutes}
	if c.validate {
		req.Validate = validate
	}
	doc, err := c.fetcher.Obtain(ctx, req)
	if err != nil {
		return nil, err
	}

	var res latestResponse
	if err := doc.Decode(&res); err != nil {
		return nil, err
	}
	if err := checkRates(&res); err != nil {
		return nil, fmt.Errorf("error in fixer.io, check %s: %w", doc.Path, err)
	}

	return &model.ExchangeRates{
		Base:  res.Base,
		Rates: res.Rates,
	}, nil
}

func (c *Client) makeURL() (*url.URL, error) {
	u, err := url.Parse(c.origin)
	if err != nil {
		return nil, fmt.Errorf("failed parse origin url; origin: %s, error: %w", c.origin, err)
	}
	q := u.Query()
	q.Set("access_key", c.accessKey)
	u.RawQuery = q.Encode()
	return u, nil
}

func validate(body []byte) error {
	var res latestResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}
	if res.Success != nil && !*res.Success {
		if res.Error != nil {
			return fmt.Errorf("%w: fixer.io error %d %s: %s", model.ErrInvalidPayload, res.Error.Code, res.Error.Type, res.Error.Info)
		}
		return fmt.Errorf("%w: fixer.io returned success=false", model.ErrInvalidPayload)
	}
	return checkRates(&res)
}

func checkRates(res *latestResponse) error {
	if res.Rates == nil {
		return fmt.Errorf("%w: rates is missing", model.ErrInvalidPayload)
	}
	for _, c := range requiredCurrencies {
		if _, ok := res.Rates[c]; !ok {
			return fmt.Errorf("%w: rate of %s is missing", model.ErrInvalidPayload, c)
		}
	}
	return nil
}
