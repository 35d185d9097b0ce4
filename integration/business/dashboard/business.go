package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/facebookgo/clock"

	"ottolink.app/integration/config"
	"ottolink.app/integration/model"
)

type Business interface {
	GetJWT(ctx context.Context, forceRefresh bool) (string, bool)
	FetchPublicHash(ctx context.Context, uuid, jwt string) (string, bool)
}

// JWTCache stores dashboard tokens.
type JWTCache interface {
	Get(ctx context.Context, key string) (model.JwtTokenCacheEntry, error)
	Put(ctx context.Context, key string, entry model.JwtTokenCacheEntry, ttl time.Duration) error
}

// PublicHashCache stores public share hashes.
type PublicHashCache interface {
	Get(ctx context.Context, key string) (model.PublicHashCacheEntry, error)
	Put(ctx context.Context, key string, entry model.PublicHashCacheEntry, ttl time.Duration) error
}

// CredentialSource supplies the external API key.
type CredentialSource interface {
	Credentials(ctx context.Context) (model.Credentials, error)
}

type business struct {
	jwts   JWTCache
	hashes PublicHashCache
	creds  CredentialSource
	clock  clock.Clock
	client *http.Client
	timer  backoff.Timer

	apiDomain      string
	projectsDomain string
	siteID         string
	installSalt    string

	refreshMargin time.Duration
	maxTTL        time.Duration
	hashTTL       time.Duration

	retryAttempts int
	retryInitial  time.Duration
	retryMax      time.Duration
}

type Option func(*business)

// WithRetryTimer replaces the timer used between retry attempts.
func WithRetryTimer(t backoff.Timer) Option {
	return func(b *business) {
		b.timer = t
	}
}

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *business) {
		b.client = c
	}
}

func NewDashboardBusiness(
	jwts JWTCache,
	hashes PublicHashCache,
	creds CredentialSource,
	clk clock.Clock,
	cfg config.Config,
	opts ...Option,
) Business {
	b := &business{
		jwts:           jwts,
		hashes:         hashes,
		creds:          creds,
		clock:          clk,
		client:         &http.Client{Timeout: cfg.RemoteTimeout},
		apiDomain:      cfg.APIDomain,
		projectsDomain: cfg.OttoProjectsDomain,
		siteID:         cfg.SiteID,
		installSalt:    cfg.InstallSalt,
		refreshMargin:  cfg.JWTRefreshMargin,
		maxTTL:         cfg.JWTMaxTTL,
		hashTTL:        cfg.PublicHashTTL,
		retryAttempts:  cfg.RetryMaxAttempts,
		retryInitial:   cfg.RetryInitialInterval,
		retryMax:       cfg.RetryMaxInterval,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// saltedKey derives a cache key that does not reveal its inputs.
func (b *business) saltedKey(parts ...string) string {
	h := sha256.New()
	h.Write([]byte(b.installSalt))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
