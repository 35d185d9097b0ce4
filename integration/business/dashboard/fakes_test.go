package dashboard

import (
	"context"
	"sync"
	"time"

	"ottolink.app/integration/model"
)

type fakeJWTCache struct {
	mu      sync.Mutex
	entries map[string]model.JwtTokenCacheEntry
	ttls    []time.Duration
}

func newFakeJWTCache() *fakeJWTCache {
	return &fakeJWTCache{entries: map[string]model.JwtTokenCacheEntry{}}
}

func (f *fakeJWTCache) Get(_ context.Context, key string) (model.JwtTokenCacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok {
		return model.JwtTokenCacheEntry{}, model.ErrNotFound
	}
	return e, nil
}

func (f *fakeJWTCache) Put(_ context.Context, key string, entry model.JwtTokenCacheEntry, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = entry
	f.ttls = append(f.ttls, ttl)
	return nil
}

type fakeHashCache struct {
	mu      sync.Mutex
	entries map[string]model.PublicHashCacheEntry
	ttls    []time.Duration
}

func newFakeHashCache() *fakeHashCache {
	return &fakeHashCache{entries: map[string]model.PublicHashCacheEntry{}}
}

func (f *fakeHashCache) Get(_ context.Context, key string) (model.PublicHashCacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[key]
	if !ok {
		return model.PublicHashCacheEntry{}, model.ErrNotFound
	}
	return e, nil
}

func (f *fakeHashCache) Put(_ context.Context, key string, entry model.PublicHashCacheEntry, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = entry
	f.ttls = append(f.ttls, ttl)
	return nil
}

type fakeCredentials struct {
	creds model.Credentials
}

func (f *fakeCredentials) Credentials(context.Context) (model.Credentials, error) {
	return f.creds, nil
}

// fakeTimer fires immediately and records every requested delay.
type fakeTimer struct {
	mu     sync.Mutex
	delays []time.Duration
	c      chan time.Time
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{c: make(chan time.Time, 1)}
}

func (t *fakeTimer) Start(d time.Duration) {
	t.mu.Lock()
	t.delays = append(t.delays, d)
	t.mu.Unlock()
	t.c <- time.Time{}
}

func (t *fakeTimer) Stop() {}

func (t *fakeTimer) C() <-chan time.Time {
	return t.c
}
