package connect

import (
	"context"
	"errors"

	"ottolink.app/integration/model"
)

// PollStatus consumes the success flag for nonce. Only one poller ever
// observes Updated=true.
func (b *business) PollStatus(ctx context.Context, nonce string) (*model.PollResult, error) {
	if nonce == "" {
		return nil, model.NewConnectError(model.FailureValidation, "nonce token is required")
	}

	flag, err := b.flags.Take(ctx, Digest(nonce))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.PollResult{Updated: false}, nil
		}
		return nil, &model.ConnectError{Kind: model.FailureInternal, Message: "failed to read success flag", Err: err}
	}

	return &model.PollResult{
		Updated:  true,
		APIKey:   flag.APIKey,
		OttoUUID: flag.OttoUUID,
	}, nil
}
