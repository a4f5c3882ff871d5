package miningpoolhub

import (
	"context"
	"encoding/json"
	"fmt"

	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/infrastructure/file"
)

const (
	// CacheName キャッシュファイル名（拡張子なし）
	CacheName = "mph-profit-stats"
)

// Client MiningPoolHub 用クライアント
type Client struct {
	fetcher    *file.Fetcher
	url        string
	ttlMinutes int
	validate   bool
}

// NewClient 生成
func NewClient(fetcher *file.Fetcher, url string, ttlMinutes int, validate bool) *Client {
	return &Client{
		fetcher:    fetcher,
		url:        url,
		ttlMinutes: ttlMinutes,
		validate:   validate,
	}
}

// GetProfitStats コインごとの採掘収益統計を取得
func (c *Client) GetProfitStats(ctx context.Context) (model.ProfitStats, error) {
	req := file.Request{Name: CacheName, URL: c.url, TTLMinutes: c.ttlMinutes}
	if c.validate {
		req.Validate = validate
	}
	doc, err := c.fetcher.Obtain(ctx, req)
	if err != nil {
		return nil, err
	}

	var res profitStatsResponse
	if err := doc.Decode(&res); err != nil {
		return nil, err
	}
	if res.Return == nil {
		return nil, fmt.Errorf("error in MiningPoolHub, check %s: %w: return is missing", doc.Path, model.ErrInvalidPayload)
	}

	return model.NewProfitStats(res.Return), nil
}

func validate(body []byte) error {
	var res profitStatsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}
	if res.Success != nil && !*res.Success {
		return fmt.Errorf("%w: MiningPoolHub returned success=false", model.ErrInvalidPayload)
	}
	if res.Return == nil {
		return fmt.Errorf("%w: return is missing", model.ErrInvalidPayload)
	}
	return nil
}
