package store

import (
	"context"
	"fmt"
	"time"

	"ottolink.app/integration/model"
	"ottolink.app/integration/store/options"
)

var credentialOptions = []string{
	model.OptionAPIKey,
	model.OptionExternalAPIKey,
	model.OptionOttoUUID,
	model.OptionLastSuccessfulContact,
}

// Credentials loads the typed credential view in one query.
func (s *Store) Credentials(ctx context.Context) (model.Credentials, error) {
	rows, err := s.Options.ListOptions(ctx, credentialOptions)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("list credential options: %w", err)
	}

	var creds model.Credentials
	for _, row := range rows {
		switch row.Name {
		case model.OptionAPIKey:
			creds.APIKey = row.Value
		case model.OptionExternalAPIKey:
			creds.ExternalAPIKey = row.Value
		case model.OptionOttoUUID:
			creds.OttoUUID = row.Value
		case model.OptionLastSuccessfulContact:
			if t, err := time.Parse(time.RFC3339, row.Value); err == nil {
				creds.LastSuccessfulContact = &t
			}
		}
	}
	return creds, nil
}

// SaveConnection persists what the connect callback retrieved. Both options
// are written by one statement, so a failure leaves neither changed.
func (s *Store) SaveConnection(ctx context.Context, apiKey, ottoUUID string) error {
	_, err := s.Options.UpsertOptions(ctx, options.UpsertOptionsParams{
		Names:  []string{model.OptionAPIKey, model.OptionOttoUUID},
		Values: []string{apiKey, ottoUUID},
	})
	if err != nil {
		return fmt.Errorf("save connection: %w", err)
	}
	return nil
}

// SaveExternalAPIKey stores the external API key.
func (s *Store) SaveExternalAPIKey(ctx context.Context, key string) error {
	return s.set(ctx, model.OptionExternalAPIKey, key)
}

// DeleteExternalAPIKey removes the external API key. Removing an absent key
// is not an error.
func (s *Store) DeleteExternalAPIKey(ctx context.Context) error {
	if _, err := s.Options.DeleteOptions(ctx, []string{model.OptionExternalAPIKey}); err != nil {
		return fmt.Errorf("delete external api key: %w", err)
	}
	return nil
}

// SigningSecret returns the connect-token signing secret or model.ErrNotFound.
func (s *Store) SigningSecret(ctx context.Context) (string, error) {
	return s.get(ctx, model.OptionSigningSecret)
}

// InitSigningSecret stores secret unless another writer got there first, and
// returns the secret now in effect.
func (s *Store) InitSigningSecret(ctx context.Context, secret string) (string, error) {
	return s.insertIfAbsent(ctx, model.OptionSigningSecret, secret)
}

// TouchLastSuccessfulContact records the time of the last successful probe.
func (s *Store) TouchLastSuccessfulContact(ctx context.Context, at time.Time) error {
	return s.set(ctx, model.OptionLastSuccessfulContact, at.UTC().Format(time.RFC3339))
}
