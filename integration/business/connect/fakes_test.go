package connect

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"

	"ottolink.app/integration/model"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

type fakeTokens struct {
	mu     sync.Mutex
	clock  clock.Clock
	tokens map[string]entry[model.ConnectToken]
	claims map[string]time.Time
}

func newFakeTokens(clk clock.Clock) *fakeTokens {
	return &fakeTokens{
		clock:  clk,
		tokens: map[string]entry[model.ConnectToken]{},
		claims: map[string]time.Time{},
	}
}

func (f *fakeTokens) Put(_ context.Context, digest string, token model.ConnectToken, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[digest] = entry[model.ConnectToken]{value: token, expiresAt: f.clock.Now().Add(ttl)}
	return nil
}

func (f *fakeTokens) Get(_ context.Context, digest string) (model.ConnectToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.tokens[digest]
	if !ok || !f.clock.Now().Before(e.expiresAt) {
		return model.ConnectToken{}, model.ErrNotFound
	}
	return e.value, nil
}

func (f *fakeTokens) Claim(_ context.Context, digest string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if until, ok := f.claims[digest]; ok && f.clock.Now().Before(until) {
		return false, nil
	}
	f.claims[digest] = f.clock.Now().Add(ttl)
	return true, nil
}

func (f *fakeTokens) Release(_ context.Context, digest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claims, digest)
	return nil
}

func (f *fakeTokens) Update(_ context.Context, digest string, token model.ConnectToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.tokens[digest]
	if !ok {
		return model.ErrNotFound
	}
	e.value = token
	f.tokens[digest] = e
	return nil
}

type fakeFlags struct {
	mu     sync.Mutex
	clock  clock.Clock
	flags  map[string]entry[model.ConnectSuccessFlag]
	putErr error
}

func newFakeFlags(clk clock.Clock) *fakeFlags {
	return &fakeFlags{clock: clk, flags: map[string]entry[model.ConnectSuccessFlag]{}}
}

func (f *fakeFlags) Put(_ context.Context, digest string, flag model.ConnectSuccessFlag, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.flags[digest] = entry[model.ConnectSuccessFlag]{value: flag, expiresAt: f.clock.Now().Add(ttl)}
	return nil
}

func (f *fakeFlags) Take(_ context.Context, digest string) (model.ConnectSuccessFlag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.flags[digest]
	delete(f.flags, digest)
	if !ok || !f.clock.Now().Before(e.expiresAt) {
		return model.ConnectSuccessFlag{}, model.ErrNotFound
	}
	return e.value, nil
}

type fakeCounters struct {
	mu     sync.Mutex
	counts map[model.IssueRateKey]int64
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{counts: map[model.IssueRateKey]int64{}}
}

func (f *fakeCounters) Increment(_ context.Context, key model.IssueRateKey, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounters) Decrement(_ context.Context, key model.IssueRateKey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]--
	return f.counts[key], nil
}

func (f *fakeCounters) total(userID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k, v := range f.counts {
		if k.UserID == userID {
			n += v
		}
	}
	return n
}

func (f *fakeCounters) Count(_ context.Context, key model.IssueRateKey) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[key], nil
}

type fakeCredentials struct {
	mu        sync.Mutex
	secret    string
	inits     int
	apiKey    string
	ottoUUID  string
	saveCalls int
	saveErr   error
}

func (f *fakeCredentials) SigningSecret(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.secret == "" {
		return "", model.ErrNotFound
	}
	return f.secret, nil
}

func (f *fakeCredentials) InitSigningSecret(_ context.Context, secret string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	if f.secret == "" {
		f.secret = secret
	}
	return f.secret, nil
}

func (f *fakeCredentials) SaveConnection(_ context.Context, apiKey, ottoUUID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.apiKey = apiKey
	f.ottoUUID = ottoUUID
	return nil
}
