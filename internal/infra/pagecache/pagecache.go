// Package pagecache caches rendered profile pages for a short TTL.
package pagecache

import (
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
)

// Cache stores rendered pages keyed by member id. Implementations are best
// effort; a miss or a failed set only costs a re-render.
type Cache interface {
	Get(memberID string) ([]byte, bool)
	Set(memberID string, page []byte)
}

// Noop disables page caching. Used when no memcached address is configured.
type Noop struct{}

func (Noop) Get(memberID string) ([]byte, bool) { return nil, false }
func (Noop) Set(memberID string, page []byte)   {}

type Memcached struct {
	client *memcache.Client
	ttl    int32
}

func NewMemcached(addr string, ttlSeconds int) *Memcached {
	return &Memcached{
		client: memcache.New(addr),
		ttl:    int32(ttlSeconds),
	}
}

func (m *Memcached) Get(memberID string) ([]byte, bool) {
	item, err := m.client.Get(cacheKey(memberID))
	if err != nil {
		if err != memcache.ErrCacheMiss {
			slog.Warn("page cache get failed",
				slog.String("member", memberID),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return item.Value, true
}

func (m *Memcached) Set(memberID string, page []byte) {
	err := m.client.Set(&memcache.Item{
		Key:        cacheKey(memberID),
		Value:      page,
		Expiration: m.ttl,
	})
	if err != nil {
		slog.Warn("page cache set failed",
			slog.String("member", memberID),
			slog.String("error", err.Error()),
		)
	}
}

func cacheKey(memberID string) string {
	return "userrate:page:" + memberID
}
