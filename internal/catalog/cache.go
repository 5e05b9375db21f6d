// README: Redis-backed snapshot cache so boards keep serving a stale menu across RTDB outages.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "catalog:snapshot"

// cachedSnapshot is the wire form stored in redis; derived fields are rebuilt
// through NewSnapshot on load.
type cachedSnapshot struct {
	Sections   []Section  `json:"sections"`
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
	Season     string     `json:"season"`
	StoredAt   time.Time  `json:"storedAt"`
}

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Put stores the snapshot JSON with the configured TTL.
func (c *Cache) Put(ctx context.Context, snap *Snapshot) error {
	payload, err := json.Marshal(cachedSnapshot{
		Sections:   snap.Sections,
		Categories: snap.Categories,
		Items:      snap.Items,
		Season:     snap.Season,
		StoredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, snapshotKey, payload, c.ttl).Err()
}

// Get loads the cached snapshot. The second return is false when no cached
// copy exists or it has expired.
func (c *Cache) Get(ctx context.Context) (*Snapshot, bool, error) {
	payload, err := c.redis.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cached cachedSnapshot
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, err
	}
	return NewSnapshot(cached.Sections, cached.Categories, cached.Items, cached.Season), true, nil
}
