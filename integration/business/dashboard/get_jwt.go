package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"encore.dev/rlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

const (
	jwtEndpoint        = "/generate-jwt-from-api-key"
	maxResponseBody    = 1 << 20
	defaultJWTLifetime = time.Hour
)

var (
	tokenFields  = []string{"token", "jwt", "access_token"}
	expiryFields = []string{"expires", "expires_at", "exp"}
)

// GetJWT returns a dashboard JWT for the configured external API key,
// minting a new one when the cached token is missing, near expiry or
// forceRefresh is set. Any failure yields ("", false).
func (b *business) GetJWT(ctx context.Context, forceRefresh bool) (string, bool) {
	creds, err := b.creds.Credentials(ctx)
	if err != nil {
		rlog.Error("failed to load credentials for jwt", "error", err)
		return "", false
	}
	if !creds.HasExternalAPIKey() {
		return "", false
	}

	key := b.saltedKey("jwt", creds.ExternalAPIKey)
	now := b.clock.Now()

	if !forceRefresh {
		entry, err := b.jwts.Get(ctx, key)
		switch {
		case err == nil && entry.Usable(now, b.refreshMargin):
			metrics.CacheCounter.WithLabelValues("jwt", "hit").Inc()
			return entry.Token, true
		case err != nil && !errors.Is(err, model.ErrNotFound):
			rlog.Warn("failed to read jwt cache", "error", err)
		}
		metrics.CacheCounter.WithLabelValues("jwt", "miss").Inc()
	}

	token, expires, err := b.mintJWT(ctx, creds.ExternalAPIKey)
	if err != nil {
		rlog.Warn("failed to mint dashboard jwt", "error", err)
		metrics.RemoteRequestCounter.WithLabelValues("jwt", string(model.KindOf(err))).Inc()
		return "", false
	}
	metrics.RemoteRequestCounter.WithLabelValues("jwt", "ok").Inc()

	ttl := expires.Sub(now)
	if ttl > b.maxTTL {
		ttl = b.maxTTL
	}
	if ttl <= 0 {
		rlog.Warn("minted jwt is already expired", "expires", expires)
		return "", false
	}

	entry := model.JwtTokenCacheEntry{Token: token, Expires: expires, CreatedAt: now}
	if err := b.jwts.Put(ctx, key, entry, ttl); err != nil {
		rlog.Warn("failed to cache dashboard jwt", "error", err)
	}
	return token, true
}

func (b *business) mintJWT(ctx context.Context, apiKey string) (string, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiDomain+jwtEndpoint, nil)
	if err != nil {
		return "", time.Time{}, &model.ConnectError{Kind: model.FailureInternal, Message: "build jwt request", Err: err}
	}
	req.Header.Set("X-API-KEY", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", time.Time{}, &model.ConnectError{Kind: model.FailureTransport, Message: "jwt request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", time.Time{}, &model.ConnectError{Kind: model.FailureTransport, Message: "read jwt response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, model.NewConnectError(model.FailureRemote, fmt.Sprintf("jwt endpoint returned %d", resp.StatusCode))
	}
	if !gjson.ValidBytes(body) {
		return "", time.Time{}, model.NewConnectError(model.FailureRemote, "jwt response is not json")
	}

	res := gjson.ParseBytes(body)
	token := firstString(res, tokenFields...)
	if token == "" {
		return "", time.Time{}, model.NewConnectError(model.FailureRemote, "jwt response has no token")
	}

	if expires, ok := responseExpiry(res); ok {
		return token, expires, nil
	}
	if expires, ok := claimExpiry(token); ok {
		return token, expires, nil
	}
	return token, b.clock.Now().Add(defaultJWTLifetime), nil
}

func firstString(res gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := res.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// responseExpiry reads the expiry from the response body, as unix seconds
// or RFC 3339.
func responseExpiry(res gjson.Result) (time.Time, bool) {
	for _, field := range expiryFields {
		v := res.Get(field)
		if !v.Exists() {
			continue
		}
		switch v.Type {
		case gjson.Number:
			if v.Int() > 0 {
				return time.Unix(v.Int(), 0), true
			}
		case gjson.String:
			if n, err := strconv.ParseInt(v.Str, 10, 64); err == nil && n > 0 {
				return time.Unix(n, 0), true
			}
			if t, err := time.Parse(time.RFC3339, v.Str); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// claimExpiry reads the exp claim without verifying the signature; the
// token is only ever forwarded to its issuer.
func claimExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
