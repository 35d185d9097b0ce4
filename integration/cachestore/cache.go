package cachestore

import (
	"time"

	"encore.dev/storage/cache"

	"ottolink.app/integration/model"
)

// Cluster is the cache cluster backing every ephemeral entity of the
// integration service.
var Cluster = cache.NewCluster("integration-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.VolatileTTL,
})

// ConnectTokenKeyspace stores token metadata under the token digest.
var ConnectTokenKeyspace = cache.NewStructKeyspace[string, model.ConnectToken](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "connect_token/:key",
		DefaultExpiry: cache.ExpireIn(15 * time.Minute),
	},
)

// ConnectClaimKeyspace holds the single-use claim taken by the callback.
var ConnectClaimKeyspace = cache.NewStringKeyspace[string](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "connect_claim/:key",
		DefaultExpiry: cache.ExpireIn(15 * time.Minute),
	},
)

// ConnectSuccessKeyspace holds flags waiting for the browser poll.
var ConnectSuccessKeyspace = cache.NewStructKeyspace[string, model.ConnectSuccessFlag](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "connect_success/:key",
		DefaultExpiry: cache.ExpireIn(15 * time.Minute),
	},
)

// IssueRateKeyspace counts issuances per user per fixed bucket.
var IssueRateKeyspace = cache.NewIntKeyspace[model.IssueRateKey](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "connect_rate/:UserID/:Bucket",
		DefaultExpiry: cache.ExpireIn(10 * time.Minute),
	},
)

// ConnectivityKeyspace holds the last probe verdict.
var ConnectivityKeyspace = cache.NewStructKeyspace[string, model.ConnectivityCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "heartbeat_status_cache/:key",
		DefaultExpiry: cache.ExpireIn(5 * time.Minute),
	},
)

// JWTKeyspace holds dashboard JWTs keyed by a digest of the API key.
var JWTKeyspace = cache.NewStructKeyspace[string, model.JwtTokenCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "jwt_token/:key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)

// PublicHashKeyspace holds public share hashes.
var PublicHashKeyspace = cache.NewStructKeyspace[string, model.PublicHashCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "public_hash/:key",
		DefaultExpiry: cache.ExpireIn(time.Hour),
	},
)

// InFlightKeyspace marks single-use requests currently being processed.
var InFlightKeyspace = cache.NewStringKeyspace[model.SingleUseKey](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "single_use/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(time.Minute),
	},
)
