package connect

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// Digest is the storage key for a nonce token. Raw tokens never reach a
// store.
func Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NormalizeSiteURL lower-cases scheme and host and drops a trailing slash
// so that cosmetic differences do not fail the site check.
func NormalizeSiteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimRight(strings.ToLower(raw), "/")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
