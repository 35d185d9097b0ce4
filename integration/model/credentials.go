package model

import "time"

// Option names persisted in the Credential Store.
const (
	OptionAPIKey                   = "apikey"
	OptionExternalAPIKey           = "external_api_key"
	OptionOttoUUID                 = "otto_uuid"
	OptionSigningSecret            = "connect_signing_secret"
	OptionLastSuccessfulContact    = "last_successful_contact"
	OptionLastKnownConnectionState = "last_known_connection_state"
)

// Credentials is the typed view of the credential options.
type Credentials struct {
	APIKey                string
	ExternalAPIKey        string
	OttoUUID              string
	LastSuccessfulContact *time.Time
}

// HasExternalAPIKey reports whether an external API key is configured.
func (c Credentials) HasExternalAPIKey() bool {
	return c.ExternalAPIKey != ""
}
