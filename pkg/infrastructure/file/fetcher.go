package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"mining-profit/pkg/domain"
	"mining-profit/pkg/infrastructure/memory"
)

const (
	// DefaultTTLMinutes TTL未指定時の有効期間（分）
	DefaultTTLMinutes = 15
)

// ErrNoCache 取得に失敗し、代わりに使うキャッシュもない
var ErrNoCache = errors.New("no cached data")

// Source ドキュメントの取得経路
type Source int

const (
	// Cached 有効期間内のキャッシュ
	Cached Source = iota
	// Downloaded 新しく取得したもの
	Downloaded
	// Fallback 取得に失敗したため使った古いキャッシュ
	Fallback
)

func (s Source) String() string {
	switch s {
	case Cached:
		return "cached"
	case Downloaded:
		return "downloaded"
	case Fallback:
		return "fallback"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Document 取得したJSON
type Document struct {
	Name   string
	Path   string
	Body   []byte
	Source Source
	// FetchErr Fallback のときの取得失敗理由
	FetchErr error
}

// Decode v に読み込む
func (d *Document) Decode(v interface{}) error {
	if err := json.Unmarshal(d.Body, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", d.Path, err)
	}
	return nil
}

// Request 取得要求
type Request struct {
	Name       string
	URL        string
	TTLMinutes int
	// Validate 取得直後の内容検証、エラーなら取得失敗として扱う
	Validate func([]byte) error
}

// Fetcher キャッシュファイルの鮮度を見てから取得する
type Fetcher struct {
	Dir        string
	HTTPClient *http.Client
	Memo       *memory.DocumentCache
	Logger     domain.Logger
	Now        func() time.Time
}

// NewFetcher 生成
func NewFetcher(dir string, httpClient *http.Client, memo *memory.DocumentCache, logger domain.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{
		Dir:        dir,
		HTTPClient: httpClient,
		Memo:       memo,
		Logger:     logger,
		Now:        time.Now,
	}
}

// Path name のキャッシュファイルのパス
func (f *Fetcher) Path(name string) string {
	return filepath.Join(f.Dir, name+".json")
}

// Obtain キャッシュが古ければ取得し直し、失敗したらキャッシュを返す
func (f *Fetcher) Obtain(ctx context.Context, req Request) (*Document, error) {
	ttl := req.TTLMinutes
	if ttl == 0 {
		ttl = DefaultTTLMinutes
	}
	path := f.Path(req.Name)

	if req.URL == "" || !ShouldDownload(path, ttl, f.Now()) {
		if f.Memo != nil {
			if body, ok := f.Memo.Get(req.Name); ok {
				return &Document{Name: req.Name, Path: path, Body: body, Source: Cached}, nil
			}
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if req.URL != "" {
			f.remember(req.Name, path, body, ttl)
		}
		return &Document{Name: req.Name, Path: path, Body: body, Source: Cached}, nil
	}

	f.Logger.Info("Downloading %s ...", req.Name)
	body, err := f.download(ctx, req)
	if err == nil {
		err = WriteJSON(path, json.RawMessage(body))
	}
	if err != nil {
		f.Logger.Warn("failed to download %s, using cache: %v", req.Name, err)
		if f.Memo != nil {
			f.Memo.Delete(req.Name)
		}
		cached, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, fmt.Errorf("%w for %s, download error: %v, read error: %v", ErrNoCache, req.Name, err, rerr)
		}
		return &Document{Name: req.Name, Path: path, Body: cached, Source: Fallback, FetchErr: err}, nil
	}

	f.remember(req.Name, path, body, ttl)
	return &Document{Name: req.Name, Path: path, Body: body, Source: Downloaded}, nil
}

func (f *Fetcher) download(ctx context.Context, req Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, err
	}
	res, err := f.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", res.StatusCode, body)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("response is not json, name: %s", req.Name)
	}
	if req.Validate != nil {
		if err := req.Validate(body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// remember キャッシュファイルが有効な間だけメモリに保持する
func (f *Fetcher) remember(name, path string, body []byte, ttlMinutes int) {
	if f.Memo == nil {
		return
	}
	stat, err := os.Stat(path)
	if err != nil {
		return
	}
	expireAt := stat.ModTime().Add(time.Duration(ttlMinutes+1) * time.Minute)
	f.Memo.Set(name, body, expireAt.Sub(f.Now()))
}

// ShouldDownload ファイルがない、または経過時間（分、切り捨て）が ttlMinutes を超えていれば true
func ShouldDownload(path string, ttlMinutes int, now time.Time) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return true
	}
	age := int(now.Sub(stat.ModTime()) / time.Minute)
	return age > ttlMinutes
}
