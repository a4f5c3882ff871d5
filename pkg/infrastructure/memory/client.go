package memory

import (
	"time"

	"github.com/pmylund/go-cache"
)

// DocumentCache 取得済みJSONの保持
type DocumentCache struct {
	c *cache.Cache
}

// NewDocumentCache 生成
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		c: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

// Get 保持しているJSONを取得
func (d *DocumentCache) Get(name string) ([]byte, bool) {
	v, ok := d.c.Get(name)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set ttl の間だけ保持
func (d *DocumentCache) Set(name string, body []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	d.c.Set(name, body, ttl)
}

// Delete 破棄
func (d *DocumentCache) Delete(name string) {
	d.c.Delete(name)
}

// Count 保持数
func (d *DocumentCache) Count() int {
	return d.c.ItemCount()
}
