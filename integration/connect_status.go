package integration

import (
	"context"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

type ConnectStatusRequest struct {
	NonceToken string `json:"nonce_token" validate:"required,max=128"`
}

// Validate implements validation for ConnectStatusRequest using go-playground/validator
func (r *ConnectStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return toAPIError(&model.ConnectError{Kind: model.FailureValidation, Message: "nonce_token is required", Err: err})
	}
	return nil
}

//encore:api auth method=POST path=/v1/connect/status
func (s *Service) ConnectStatus(ctx context.Context, req *ConnectStatusRequest) (*model.PollResult, error) {
	if _, err := requireCapability(model.CapabilityManageOptions); err != nil {
		return nil, err
	}

	result, err := s.connect.PollStatus(ctx, req.NonceToken)
	if err != nil {
		rlog.Error("failed to poll connect status", "error", err)
		return nil, toAPIError(err)
	}
	if result.Updated {
		metrics.ConnectCounter.WithLabelValues("poll", "updated").Inc()
	}
	return result, nil
}
