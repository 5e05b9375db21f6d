// README: Catalog provider; polls RTDB, swaps an atomic snapshot, and notifies subscribers.
package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"menuboard/internal/config"
)

// ErrNotLoaded is returned by Refresh when neither RTDB nor the cache could
// produce a snapshot and none has been loaded before.
var ErrNotLoaded = errors.New("catalog not loaded")

// Source is the read side of the catalog store the provider polls.
type Source interface {
	Categories(ctx context.Context) ([]Category, error)
	Items(ctx context.Context) ([]Item, error)
	Sections(ctx context.Context) ([]Section, error)
	Season(ctx context.Context) (string, error)
}

// Service holds the current snapshot. Reads are lock-free; the refresher is
// the only writer. A nil cache disables the redis fallback.
type Service struct {
	source Source
	cache  *Cache
	cfg    config.CatalogConfig
	logger *zap.Logger

	current atomic.Pointer[Snapshot]

	mu   sync.Mutex
	subs []func(*Snapshot)
}

func NewService(source Source, cache *Cache, cfg config.CatalogConfig, logger *zap.Logger) *Service {
	s := &Service{source: source, cache: cache, cfg: cfg, logger: logger}
	s.current.Store(NewSnapshot(nil, nil, nil, ""))
	return s
}

// Snapshot returns the current consistent view. Never nil: before the first
// successful refresh it is an empty catalog, which every consumer handles.
func (s *Service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Subscribe registers a callback invoked after every snapshot swap. The
// callback runs on the refresher goroutine and must not block.
func (s *Service) Subscribe(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Refresh rebuilds the snapshot from RTDB. On failure it falls back to the
// redis cache, and failing that keeps whatever snapshot is already loaded.
func (s *Service) Refresh(ctx context.Context) error {
	snap, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("catalog refresh failed", zap.Error(err))
		if s.current.Load() != nil && len(s.current.Load().Items) > 0 {
			return nil // keep serving the previous snapshot
		}
		if s.cache != nil {
			cached, ok, cacheErr := s.cache.Get(ctx)
			if cacheErr != nil {
				s.logger.Warn("catalog cache read failed", zap.Error(cacheErr))
			}
			if ok {
				s.swap(cached)
				s.logger.Info("catalog served from cache",
					zap.Int("items", len(cached.Items)))
				return nil
			}
		}
		return ErrNotLoaded
	}

	s.swap(snap)
	if s.cache != nil {
		if err := s.cache.Put(ctx, snap); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return nil
}

// RunRefresher polls until the context is cancelled.
func (s *Service) RunRefresher(ctx context.Context) {
	interval := time.Duration(s.cfg.RefreshSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

func (s *Service) fetch(ctx context.Context) (*Snapshot, error) {
	categories, err := s.source.Categories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.source.Items(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.source.Sections(ctx)
	if err != nil {
		return nil, err
	}
	season, err := s.source.Season(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(sections, categories, items, season), nil
}

func (s *Service) swap(snap *Snapshot) {
	s.current.Store(snap)

	s.mu.Lock()
	subs := append(([]func(*Snapshot))(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
