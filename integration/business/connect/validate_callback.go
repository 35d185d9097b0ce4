package connect

import (
	"context"
	"errors"

	"encore.dev/rlog"

	"ottolink.app/integration/model"
)

// ValidateCallback accepts the external platform's callback for a nonce
// token. A token is accepted at most once, even under concurrent
// callbacks.
func (b *business) ValidateCallback(ctx context.Context, nonce string, payload model.CallbackPayload) (*model.CallbackResult, error) {
	if nonce == "" {
		return nil, model.NewConnectError(model.FailureValidation, "nonce token is required")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, &model.ConnectError{Kind: model.FailureValidation, Message: "invalid callback payload", Err: err}
	}

	digest := Digest(nonce)
	now := b.clock.Now()

	token, err := b.tokens.Get(ctx, digest)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewConnectError(model.FailureNotFound, "connect token not found or expired")
		}
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to load connect token", Err: err}
	}
	if token.Expired(now) {
		return nil, model.NewConnectError(model.FailureNotFound, "connect token not found or expired")
	}
	if token.CallbackUsed {
		return nil, model.NewConnectError(model.FailureAlreadyUsed, "connect token already used")
	}
	if NormalizeSiteURL(payload.SiteURL) != NormalizeSiteURL(token.SiteURL) {
		rlog.Warn("connect callback site mismatch", "token_id", token.ID, "site_url", payload.SiteURL)
		return nil, model.NewConnectError(model.FailureContextMismatch, "site url does not match the issuing site")
	}

	claimed, err := b.tokens.Claim(ctx, digest, token.ExpiresAt.Sub(now))
	if err != nil {
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to claim connect token", Err: err}
	}
	if !claimed {
		return nil, model.NewConnectError(model.FailureAlreadyUsed, "connect token already used")
	}

	if err := b.creds.SaveConnection(ctx, payload.APIKey, payload.OttoUUID); err != nil {
		b.releaseClaim(ctx, digest, token.ID)
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to persist connection", Err: err}
	}

	flag := model.ConnectSuccessFlag{
		APIKey:    payload.APIKey,
		OttoUUID:  payload.OttoUUID,
		CreatedAt: now,
	}
	if err := b.flags.Put(ctx, digest, flag, b.tokenTTL); err != nil {
		b.releaseClaim(ctx, digest, token.ID)
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to store success flag", Err: err}
	}

	token.Used = true
	token.CallbackUsed = true
	if err := b.tokens.Update(ctx, digest, token); err != nil {
		// The claim already blocks reuse.
		rlog.Error("failed to mark connect token used", "token_id", token.ID, "error", err)
	}

	rlog.Info("connect callback accepted", "token_id", token.ID, "otto_uuid", payload.OttoUUID)
	return &model.CallbackResult{OttoUUID: payload.OttoUUID, ConnectedAt: now}, nil
}

// releaseClaim lets the platform retry a callback that failed after the
// claim was taken. The token stays unused.
func (b *business) releaseClaim(ctx context.Context, digest, tokenID string) {
	if err := b.tokens.Release(ctx, digest); err != nil {
		rlog.Error("failed to release connect claim", "token_id", tokenID, "error", err)
	}
}
