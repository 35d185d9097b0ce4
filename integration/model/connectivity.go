package model

import "time"

// ConnectivityCacheEntry is the last probe verdict.
type ConnectivityCacheEntry struct {
	Status      bool      `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	CachedUntil time.Time `json:"cached_until"`
	UpdatedBy   string    `json:"updated_by"`
}

// NewConnectivityCacheEntry builds an entry valid for ttl from now.
func NewConnectivityCacheEntry(status bool, now time.Time, ttl time.Duration, updatedBy string) ConnectivityCacheEntry {
	return ConnectivityCacheEntry{
		Status:      status,
		Timestamp:   now,
		CachedUntil: now.Add(ttl),
		UpdatedBy:   updatedBy,
	}
}

// Valid reports whether the entry may still be served at now.
func (e ConnectivityCacheEntry) Valid(now time.Time) bool {
	return now.Before(e.CachedUntil)
}

// ConnectivitySource tells where an IsConnected answer came from.
type ConnectivitySource string

const (
	ConnectivitySourceNoKey    ConnectivitySource = "no_key"
	ConnectivitySourceCache    ConnectivitySource = "cache"
	ConnectivitySourceFallback ConnectivitySource = "fallback"
	ConnectivitySourceCold     ConnectivitySource = "cold"
)

// Tick originators recorded in ConnectivityCacheEntry.UpdatedBy.
const (
	UpdatedByScheduler = "scheduler"
	UpdatedByImmediate = "immediate"
)

// ConnectivityStatus is the answer served to the admin UI.
type ConnectivityStatus struct {
	Connected             bool               `json:"connected"`
	Source                ConnectivitySource `json:"source"`
	CheckedAt             *time.Time         `json:"checked_at,omitempty"`
	CachedUntil           *time.Time         `json:"cached_until,omitempty"`
	UpdatedBy             string             `json:"updated_by,omitempty"`
	LastSuccessfulContact *time.Time         `json:"last_successful_contact,omitempty"`
}
