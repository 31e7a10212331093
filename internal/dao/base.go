package dao

import (
	"context"
	"log/slog"
	"sync"
)

// Source is the base struct that all row sources embed.
type Source struct {
	Factory
	sid *SourceID
	mx  sync.RWMutex
}

// Init initializes the source with its factory and ID.
func (s *Source) Init(f Factory, sid *SourceID) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.Factory = f
	s.sid = sid
}

// SourceID returns the source identifier.
func (s *Source) SourceID() *SourceID {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.sid
}

func (s *Source) getFactory() Factory {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.Factory
}

func (s *Source) logger() *slog.Logger {
	if f := s.getFactory(); f != nil && f.Logger() != nil {
		return f.Logger()
	}
	return slog.Default()
}

func (s *Source) cacheKey() string {
	if sid := s.SourceID(); sid != nil {
		return sid.String()
	}
	return ""
}

// cached returns fresh cached records for the source or fetches and caches them.
func (s *Source) cached(ctx context.Context, fetch func(context.Context) ([]Record, error)) ([]Record, error) {
	var cache *ResourceCache
	if f := s.getFactory(); f != nil {
		cache = f.Cache()
	}
	key := s.cacheKey()
	if cache != nil {
		if rr, ok := cache.Get(key); ok {
			return rr, nil
		}
	}

	rr, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache.Set(key, rr)
	}

	return rr, nil
}
