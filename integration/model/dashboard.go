package model

import "time"

// JwtTokenCacheEntry is a dashboard JWT minted from the external API key.
type JwtTokenCacheEntry struct {
	Token     string    `json:"token"`
	Expires   time.Time `json:"expires"`
	CreatedAt time.Time `json:"created_at"`
}

// Usable reports whether the token can still be handed out, leaving margin
// before its absolute expiry.
func (e JwtTokenCacheEntry) Usable(now time.Time, margin time.Duration) bool {
	return e.Token != "" && now.Before(e.Expires.Add(-margin))
}

// PublicHashCacheEntry is a cached public share hash for an Otto project.
type PublicHashCacheEntry struct {
	Hash string `json:"hash"`
}
