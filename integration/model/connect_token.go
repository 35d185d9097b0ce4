package model

import (
	"time"
)

// ConnectTokenVersion is bumped whenever the token derivation changes.
const ConnectTokenVersion = "2"

// ConnectToken is the metadata recorded for an issued nonce token.
// It is stored under Digest(token), never under the token itself.
type ConnectToken struct {
	ID              string    `json:"id"`
	NonceDigest     string    `json:"nonce_digest"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	UserID          string    `json:"user_id"`
	SiteURL         string    `json:"site_url"`
	ClientIP        string    `json:"client_ip"`
	UserAgentPrefix string    `json:"user_agent_prefix"`
	Used            bool      `json:"used"`
	CallbackUsed    bool      `json:"callback_used"`
	Version         string    `json:"version"`
}

// Expired reports whether the token window has elapsed at now.
func (t ConnectToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IssueContext carries request metadata recorded alongside a token.
type IssueContext struct {
	ClientIP  string
	UserAgent string
}

// IssuedToken is what the admin UI receives after issuance.
type IssuedToken struct {
	Token     string    `json:"nonce_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CallbackPayload is posted by the external platform once the user has
// authorised the install.
type CallbackPayload struct {
	SiteURL  string `json:"site_url" validate:"required,url,max=2048"`
	APIKey   string `json:"api_key" validate:"required,max=512"`
	OttoUUID string `json:"otto_uuid" validate:"required,min=10,max=128"`
}

// CallbackResult is returned on a successful callback.
type CallbackResult struct {
	OttoUUID    string    `json:"otto_uuid"`
	ConnectedAt time.Time `json:"connected_at"`
}

// ConnectSuccessFlag is handed to the browser exactly once by the poller.
type ConnectSuccessFlag struct {
	APIKey    string    `json:"api_key"`
	OttoUUID  string    `json:"otto_uuid"`
	CreatedAt time.Time `json:"created_at"`
}

// PollResult is the poller's answer to the browser.
type PollResult struct {
	Updated  bool   `json:"updated"`
	APIKey   string `json:"api_key,omitempty"`
	OttoUUID string `json:"otto_uuid,omitempty"`
}

// IssueRateKey addresses one fixed bucket of the issuance limiter.
type IssueRateKey struct {
	UserID string
	Bucket int64
}
