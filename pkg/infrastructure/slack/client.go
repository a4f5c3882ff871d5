package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TextMessage テキストのみのメッセージ
type TextMessage struct {
	Text string `json:"text"`
}

// Client Incoming Webhook 用クライアント
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient 生成
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// PostText テキストを投稿
func (c *Client) PostText(ctx context.Context, text string) error {
	return c.PostMessage(ctx, &TextMessage{Text: text})
}

// PostMessage メッセージを投稿
func (c *Client) PostMessage(ctx context.Context, messageObj interface{}) error {
	values, err := json.Marshal(messageObj)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(values))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("slack response %d error: %s", res.StatusCode, body)
	}

	return nil
}
