package integration

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"ottolink.app/integration/model"
)

type SaveExternalAPIKeyRequest struct {
	APIKey string `json:"api_key" validate:"required,max=512"`
}

// Validate implements validation for SaveExternalAPIKeyRequest using go-playground/validator
func (r *SaveExternalAPIKeyRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type CredentialsResponse struct {
	HasExternalAPIKey bool `json:"has_external_api_key"`
	Connected         bool `json:"connected"`
}

//encore:api auth method=PUT path=/v1/credentials/external-api-key
func (s *Service) SaveExternalAPIKey(ctx context.Context, req *SaveExternalAPIKeyRequest) (*CredentialsResponse, error) {
	actor, err := requireCapability(model.CapabilityManageOptions)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.SaveExternalAPIKey(ctx, req.APIKey); err != nil {
		rlog.Error("failed to save external api key", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to save external api key"}
	}
	rlog.Info("external api key saved", "user_id", actor.UserID)

	if err := s.scheduler.Schedule(ctx); err != nil {
		// The key is stored; the next restart reconciles the heartbeat.
		rlog.Error("failed to schedule heartbeat", "error", err)
	}

	return &CredentialsResponse{
		HasExternalAPIKey: true,
		Connected:         s.connectivity.TriggerImmediateCheck(ctx, "api_key_saved"),
	}, nil
}

//encore:api auth method=DELETE path=/v1/credentials/external-api-key
func (s *Service) DeleteExternalAPIKey(ctx context.Context) (*CredentialsResponse, error) {
	actor, err := requireCapability(model.CapabilityManageOptions)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.DeleteExternalAPIKey(ctx); err != nil {
		rlog.Error("failed to delete external api key", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete external api key"}
	}
	rlog.Info("external api key removed", "user_id", actor.UserID)

	if err := s.scheduler.Unschedule(ctx); err != nil {
		rlog.Error("failed to unschedule heartbeat", "error", err)
		runAsync("clear_connectivity_cache", s.connectivity.ClearCache)
	}

	return &CredentialsResponse{}, nil
}
