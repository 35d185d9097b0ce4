package integration

import (
	"context"
	"time"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

type ConnectCallbackRequest struct {
	NonceToken string `json:"nonce_token"`
	SiteURL    string `json:"site_url"`
	APIKey     string `json:"api_key"`
	OttoUUID   string `json:"otto_uuid"`
}

// SingleUseKey keys the in-flight guard on the nonce token.
func (r *ConnectCallbackRequest) SingleUseKey() string {
	return r.NonceToken
}

type ConnectCallbackResponse struct {
	Success     bool      `json:"success"`
	OttoUUID    string    `json:"otto_uuid"`
	ConnectedAt time.Time `json:"connected_at"`
}

//encore:api public method=POST path=/v1/connect/callback tag:single_use
func (s *Service) ConnectCallback(ctx context.Context, req *ConnectCallbackRequest) (*ConnectCallbackResponse, error) {
	result, err := s.connect.ValidateCallback(ctx, req.NonceToken, model.CallbackPayload{
		SiteURL:  req.SiteURL,
		APIKey:   req.APIKey,
		OttoUUID: req.OttoUUID,
	})
	if err != nil {
		kind := model.KindOf(err)
		metrics.ConnectCounter.WithLabelValues("callback", string(kind)).Inc()
		if kind == model.FailureInternal {
			rlog.Error("failed to validate connect callback", "error", err)
		} else {
			rlog.Warn("connect callback rejected", "kind", kind)
		}
		return nil, toAPIError(err)
	}
	metrics.ConnectCounter.WithLabelValues("callback", "ok").Inc()

	runAsync("post_connect_check", func(ctx context.Context) error {
		s.connectivity.TriggerImmediateCheck(ctx, "connect_callback")
		return nil
	})

	return &ConnectCallbackResponse{
		Success:     true,
		OttoUUID:    result.OttoUUID,
		ConnectedAt: result.ConnectedAt,
	}, nil
}
