package integration

import (
	"context"
	"strings"
	"time"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

type IssueConnectTokenRequest struct {
	ForwardedFor string `header:"X-Forwarded-For" json:"-"`
	UserAgent    string `header:"User-Agent" json:"-"`
}

type IssueConnectTokenResponse struct {
	NonceToken string    `json:"nonce_token"`
	ExpiresAt  time.Time `json:"expires_at"`
	ExpiresIn  int64     `json:"expires_in"`
}

//encore:api auth method=POST path=/v1/connect/token
func (s *Service) IssueConnectToken(ctx context.Context, req *IssueConnectTokenRequest) (*IssueConnectTokenResponse, error) {
	actor := currentActor()

	issued, err := s.connect.IssueToken(ctx, actor, model.IssueContext{
		ClientIP:  clientIP(req.ForwardedFor),
		UserAgent: req.UserAgent,
	})
	if err != nil {
		metrics.ConnectCounter.WithLabelValues("issue", string(model.KindOf(err))).Inc()
		if model.KindOf(err) == model.FailureInternal {
			rlog.Error("failed to issue connect token", "user_id", actor.UserID, "error", err)
		}
		return nil, toAPIError(err)
	}
	metrics.ConnectCounter.WithLabelValues("issue", "ok").Inc()

	return &IssueConnectTokenResponse{
		NonceToken: issued.Token,
		ExpiresAt:  issued.ExpiresAt,
		ExpiresIn:  int64(time.Until(issued.ExpiresAt).Seconds()),
	}, nil
}

// clientIP returns the originating address from X-Forwarded-For.
func clientIP(forwardedFor string) string {
	first, _, _ := strings.Cut(forwardedFor, ",")
	return strings.TrimSpace(first)
}
