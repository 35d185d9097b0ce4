package connect

import (
	"context"
	"time"

	"github.com/facebookgo/clock"
	"github.com/go-playground/validator/v10"

	"ottolink.app/integration/config"
	"ottolink.app/integration/model"
)

var validate = validator.New()

type Business interface {
	IssueToken(ctx context.Context, actor model.Actor, issue model.IssueContext) (*model.IssuedToken, error)
	ValidateCallback(ctx context.Context, nonce string, payload model.CallbackPayload) (*model.CallbackResult, error)
	PollStatus(ctx context.Context, nonce string) (*model.PollResult, error)
}

// TokenStore holds token metadata keyed by Digest(token).
type TokenStore interface {
	Put(ctx context.Context, digest string, token model.ConnectToken, ttl time.Duration) error
	Get(ctx context.Context, digest string) (model.ConnectToken, error)
	Claim(ctx context.Context, digest string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, digest string) error
	Update(ctx context.Context, digest string, token model.ConnectToken) error
}

// SuccessFlagStore hands callback results to the poller.
type SuccessFlagStore interface {
	Put(ctx context.Context, digest string, flag model.ConnectSuccessFlag, ttl time.Duration) error
	Take(ctx context.Context, digest string) (model.ConnectSuccessFlag, error)
}

// CounterStore backs the issuance rate limiter.
type CounterStore interface {
	Increment(ctx context.Context, key model.IssueRateKey, ttl time.Duration) (int64, error)
	Decrement(ctx context.Context, key model.IssueRateKey) (int64, error)
	Count(ctx context.Context, key model.IssueRateKey) (int64, error)
}

// CredentialStore is the durable side of the connect flow.
type CredentialStore interface {
	SigningSecret(ctx context.Context) (string, error)
	InitSigningSecret(ctx context.Context, secret string) (string, error)
	SaveConnection(ctx context.Context, apiKey, ottoUUID string) error
}

type business struct {
	tokens  TokenStore
	flags   SuccessFlagStore
	creds   CredentialStore
	limiter *RateLimiter
	clock   clock.Clock

	tokenTTL     time.Duration
	secretLength int
	installSalt  string
	siteURL      string
}

// NewConnectBusiness wires the issuer, validator and poller over their
// stores.
func NewConnectBusiness(
	tokens TokenStore,
	flags SuccessFlagStore,
	counters CounterStore,
	creds CredentialStore,
	clk clock.Clock,
	cfg config.Config,
) Business {
	return &business{
		tokens:       tokens,
		flags:        flags,
		creds:        creds,
		limiter:      NewRateLimiter(counters, clk, cfg.IssueRateLimit, cfg.IssueRateWindow),
		clock:        clk,
		tokenTTL:     cfg.ConnectTokenTTL,
		secretLength: cfg.SigningSecretLength,
		installSalt:  cfg.InstallSalt,
		siteURL:      cfg.SiteURL,
	}
}
