package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ottolink.app/integration/config"
	"ottolink.app/integration/model"
)

const projectUUID = "8c1d3f7a-0b5e-4e1a-9d2f-3a6b7c8d9e0f"

type fixture struct {
	clock  *clock.Mock
	jwts   *fakeJWTCache
	hashes *fakeHashCache
	creds  *fakeCredentials
	timer  *fakeTimer
	hits   atomic.Int32
	srv    *httptest.Server
	biz    Business
}

func newFixture(t *testing.T, handler func(f *fixture, w http.ResponseWriter, r *http.Request)) *fixture {
	clk := clock.NewMock()
	clk.Add(1000 * time.Hour)

	f := &fixture{
		clock:  clk,
		jwts:   newFakeJWTCache(),
		hashes: newFakeHashCache(),
		creds:  &fakeCredentials{creds: model.Credentials{ExternalAPIKey: "ext-key"}},
		timer:  newFakeTimer(),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		handler(f, w, r)
	}))
	t.Cleanup(f.srv.Close)

	cfg := config.Config{
		APIDomain:            f.srv.URL,
		OttoProjectsDomain:   f.srv.URL + "/api/v2/otto-projects",
		SiteID:               "1",
		InstallSalt:          "salt",
		RemoteTimeout:        5 * time.Second,
		JWTRefreshMargin:     5 * time.Minute,
		JWTMaxTTL:            24 * time.Hour,
		PublicHashTTL:        time.Hour,
		RetryMaxAttempts:     3,
		RetryInitialInterval: time.Second,
		RetryMaxInterval:     30 * time.Second,
	}
	f.biz = NewDashboardBusiness(f.jwts, f.hashes, f.creds, clk, cfg, WithRetryTimer(f.timer))
	return f
}

func signedJWT(t *testing.T, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "otto",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestGetJWTCached(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-jwt-from-api-key", r.URL.Path)
		assert.Equal(t, "ext-key", r.Header.Get("X-API-KEY"))
		fmt.Fprintf(w, `{"token":"tok-%d","expires":%d}`, f.hits.Load(), f.clock.Now().Add(2*time.Hour).Unix())
	})
	ctx := context.Background()

	first, ok := f.biz.GetJWT(ctx, false)
	require.True(t, ok)
	second, ok := f.biz.GetJWT(ctx, false)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), f.hits.Load())
	assert.Equal(t, []time.Duration{2 * time.Hour}, f.jwts.ttls)

	refreshed, ok := f.biz.GetJWT(ctx, true)
	require.True(t, ok)
	assert.NotEqual(t, first, refreshed)
	assert.Equal(t, int32(2), f.hits.Load())
}

func TestGetJWTRefreshesNearExpiry(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"jwt":"tok-%d","expires_at":"%s"}`, f.hits.Load(), f.clock.Now().Add(time.Hour).UTC().Format(time.RFC3339))
	})
	ctx := context.Background()

	first, ok := f.biz.GetJWT(ctx, false)
	require.True(t, ok)

	f.clock.Add(56 * time.Minute)
	second, ok := f.biz.GetJWT(ctx, false)
	require.True(t, ok)

	assert.NotEqual(t, first, second)
	assert.Equal(t, int32(2), f.hits.Load())
}

func TestGetJWTExpiryFromClaim(t *testing.T) {
	var token string
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"access_token":%q}`, token)
	})
	token = signedJWT(t, f.clock.Now().Add(48*time.Hour))

	got, ok := f.biz.GetJWT(context.Background(), false)
	require.True(t, ok)
	assert.Equal(t, token, got)
	assert.Equal(t, []time.Duration{24 * time.Hour}, f.jwts.ttls, "ttl is capped at one day")
}

func TestGetJWTFailures(t *testing.T) {
	testCases := []struct {
		name       string
		noKey      bool
		status     int
		body       string
		expectHits int32
	}{
		{name: "no_external_key", noKey: true, expectHits: 0},
		{name: "server_error", status: http.StatusInternalServerError, body: `{}`, expectHits: 1},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"bad key"}`, expectHits: 1},
		{name: "not_json", status: http.StatusOK, body: `<html>`, expectHits: 1},
		{name: "no_token_field", status: http.StatusOK, body: `{"expires":1}`, expectHits: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			if tc.noKey {
				f.creds.creds = model.Credentials{}
			}

			token, ok := f.biz.GetJWT(context.Background(), false)
			assert.False(t, ok)
			assert.Empty(t, token)
			assert.Equal(t, tc.expectHits, f.hits.Load())
			assert.Empty(t, f.jwts.entries)
		})
	}
}

func TestFetchPublicHash(t *testing.T) {
	testCases := []struct {
		name           string
		responses      []int
		body           string
		expectedHash   string
		expectedOK     bool
		expectedHits   int32
		expectedDelays []time.Duration
	}{
		{
			name:         "ok_first_try",
			responses:    []int{http.StatusOK},
			body:         `{"public_hash":"abcDEF_123-xyz"}`,
			expectedHash: "abcDEF_123-xyz",
			expectedOK:   true,
			expectedHits: 1,
		},
		{
			name:         "nested_field",
			responses:    []int{http.StatusOK},
			body:         `{"hash":"short","data":{"public_hash":"nested_hash_value"}}`,
			expectedHash: "nested_hash_value",
			expectedOK:   true,
			expectedHits: 1,
		},
		{
			name:         "unauthorized_is_not_retried",
			responses:    []int{http.StatusUnauthorized},
			expectedHits: 1,
		},
		{
			name:         "not_found_is_not_retried",
			responses:    []int{http.StatusNotFound},
			expectedHits: 1,
		},
		{
			name:           "unavailable_exhausts_attempts",
			responses:      []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable},
			expectedHits:   3,
			expectedDelays: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:           "recovers_after_retries",
			responses:      []int{http.StatusTooManyRequests, http.StatusBadGateway, http.StatusOK},
			body:           `{"publicHash":"recovered_hash"}`,
			expectedHash:   "recovered_hash",
			expectedOK:     true,
			expectedHits:   3,
			expectedDelays: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name:         "no_valid_hash",
			responses:    []int{http.StatusOK},
			body:         `{"public_hash":"bad hash!"}`,
			expectedHits: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/otto-projects/"+projectUUID+"/", r.URL.Path)
				assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")
				i := int(f.hits.Load()) - 1
				w.WriteHeader(tc.responses[i])
				_, _ = w.Write([]byte(tc.body))
			})
			jwtToken := signedJWT(t, f.clock.Now().Add(time.Hour))

			hash, ok := f.biz.FetchPublicHash(context.Background(), projectUUID, jwtToken)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedHash, hash)
			assert.Equal(t, tc.expectedHits, f.hits.Load())
			assert.Equal(t, tc.expectedDelays, f.timer.delays)
			if tc.expectedOK {
				assert.Equal(t, []time.Duration{time.Hour}, f.hashes.ttls)
			} else {
				assert.Empty(t, f.hashes.entries)
			}
		})
	}
}

func TestFetchPublicHashCached(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"public_hash":"cached_hash_123"}`))
	})
	jwtToken := signedJWT(t, f.clock.Now().Add(time.Hour))

	for i := 0; i < 3; i++ {
		hash, ok := f.biz.FetchPublicHash(context.Background(), projectUUID, jwtToken)
		require.True(t, ok)
		assert.Equal(t, "cached_hash_123", hash)
	}
	assert.Equal(t, int32(1), f.hits.Load())
}

func TestFetchPublicHashRejectsInput(t *testing.T) {
	f := newFixture(t, func(f *fixture, w http.ResponseWriter, r *http.Request) {})
	jwtToken := signedJWT(t, f.clock.Now().Add(time.Hour))

	_, ok := f.biz.FetchPublicHash(context.Background(), "short", jwtToken)
	assert.False(t, ok)
	_, ok = f.biz.FetchPublicHash(context.Background(), projectUUID, "not-a-jwt")
	assert.False(t, ok)
	assert.Equal(t, int32(0), f.hits.Load())
}
