package integration

import (
	"context"

	"ottolink.app/integration/model"
)

//encore:api auth method=GET path=/v1/connectivity
func (s *Service) GetConnectivity(ctx context.Context) (*model.ConnectivityStatus, error) {
	status := s.connectivity.Status(ctx)
	return &status, nil
}

type CheckConnectivityRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=64"`
}

// Validate implements validation for CheckConnectivityRequest using go-playground/validator
func (r *CheckConnectivityRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return toAPIError(&model.ConnectError{Kind: model.FailureValidation, Message: "reason is too long", Err: err})
	}
	return nil
}

type CheckConnectivityResponse struct {
	Connected bool `json:"connected"`
}

//encore:api auth method=POST path=/v1/connectivity/check
func (s *Service) CheckConnectivity(ctx context.Context, req *CheckConnectivityRequest) (*CheckConnectivityResponse, error) {
	if _, err := requireCapability(model.CapabilityManageOptions); err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "manual"
	}
	return &CheckConnectivityResponse{
		Connected: s.connectivity.TriggerImmediateCheck(ctx, reason),
	}, nil
}
