package connect

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"strconv"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"ottolink.app/integration/model"
)

const (
	secretAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randomPartLength = 32
	userAgentPrefix  = 100
)

// IssueToken mints a single-use nonce token for the admin connect flow.
func (b *business) IssueToken(ctx context.Context, actor model.Actor, issue model.IssueContext) (*model.IssuedToken, error) {
	if !actor.Can(model.CapabilityManageOptions) {
		return nil, model.NewConnectError(model.FailurePermissionDenied, "insufficient permissions")
	}

	allowed, err := b.limiter.Allow(ctx, actor.UserID)
	if err != nil {
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to check rate limit", Err: err}
	}
	if !allowed {
		rlog.Warn("connect token rate limit hit", "user_id", actor.UserID)
		return nil, model.NewConnectError(model.FailureRateLimited, "too many token requests, try again later")
	}

	secret, err := b.signingSecret(ctx)
	if err != nil {
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to load signing secret", Err: err}
	}

	random := make([]byte, randomPartLength)
	if _, err := rand.Read(random); err != nil {
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to read random bytes", Err: err}
	}

	now := b.clock.Now()
	mac := hmac.New(sha256.New, []byte(secret+b.installSalt))
	mac.Write(random)
	mac.Write([]byte(strconv.FormatInt(now.UnixNano(), 10)))
	mac.Write([]byte(actor.UserID))
	mac.Write([]byte(b.siteURL))
	token := hex.EncodeToString(mac.Sum(nil))

	ua := issue.UserAgent
	if len(ua) > userAgentPrefix {
		ua = ua[:userAgentPrefix]
	}

	digest := Digest(token)
	meta := model.ConnectToken{
		ID:              uuid.NewString(),
		NonceDigest:     digest,
		CreatedAt:       now,
		ExpiresAt:       now.Add(b.tokenTTL),
		UserID:          actor.UserID,
		SiteURL:         b.siteURL,
		ClientIP:        issue.ClientIP,
		UserAgentPrefix: ua,
		Version:         model.ConnectTokenVersion,
	}
	if err := b.tokens.Put(ctx, digest, meta, b.tokenTTL); err != nil {
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to store connect token", Err: err}
	}

	rlog.Info("connect token issued", "token_id", meta.ID, "user_id", actor.UserID, "expires_at", meta.ExpiresAt)
	return &model.IssuedToken{Token: token, ExpiresAt: meta.ExpiresAt}, nil
}

// signingSecret returns the install's signing secret, generating it on
// first use. Concurrent first uses converge on a single stored value.
func (b *business) signingSecret(ctx context.Context) (string, error) {
	secret, err := b.creds.SigningSecret(ctx)
	if err == nil && secret != "" {
		return secret, nil
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return "", err
	}

	generated, err := randomAlphanumeric(b.secretLength)
	if err != nil {
		return "", err
	}
	stored, err := b.creds.InitSigningSecret(ctx, generated)
	if err != nil {
		return "", err
	}
	if stored == generated {
		rlog.Info("generated connect signing secret")
	}
	return stored, nil
}

func randomAlphanumeric(n int) (string, error) {
	out := make([]byte, n)
	size := big.NewInt(int64(len(secretAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		out[i] = secretAlphabet[idx.Int64()]
	}
	return string(out), nil
}
