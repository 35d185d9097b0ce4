package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/facebookgo/clock"

	"ottolink.app/integration/model"
)

type fakeCache struct {
	mu    sync.Mutex
	clock clock.Clock
	entry *model.ConnectivityCacheEntry
	puts  int
}

func (f *fakeCache) Get(context.Context) (model.ConnectivityCacheEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entry == nil || !f.clock.Now().Before(f.entry.CachedUntil) {
		return model.ConnectivityCacheEntry{}, model.ErrNotFound
	}
	return *f.entry, nil
}

func (f *fakeCache) Put(_ context.Context, entry model.ConnectivityCacheEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entry = &entry
	f.puts++
	return nil
}

func (f *fakeCache) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entry = nil
	return nil
}

type fakeState struct {
	mu        sync.Mutex
	creds     model.Credentials
	lastKnown *bool
	contacts  int
}

func (f *fakeState) Credentials(context.Context) (model.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds, nil
}

func (f *fakeState) LastKnownConnectionState(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastKnown == nil {
		return false, model.ErrNotFound
	}
	return *f.lastKnown, nil
}

func (f *fakeState) SetLastKnownConnectionState(_ context.Context, connected bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastKnown = &connected
	return nil
}

func (f *fakeState) TouchLastSuccessfulContact(_ context.Context, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts++
	f.creds.LastSuccessfulContact = &at
	return nil
}

func (f *fakeState) removeKey() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds.ExternalAPIKey = ""
}

type countingProber struct {
	calls  atomic.Int32
	result atomic.Bool
	gate   chan struct{}
}

func (p *countingProber) Probe(context.Context) bool {
	p.calls.Add(1)
	if p.gate != nil {
		<-p.gate
	}
	return p.result.Load()
}

type recordingSink struct {
	mu   sync.Mutex
	msgs []string
}

func (s *recordingSink) Info(msg string, _ ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}
