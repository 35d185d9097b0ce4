package integration

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type DashboardTokenRequest struct {
	Refresh bool `query:"refresh"`
}

type DashboardTokenResponse struct {
	Token string `json:"token"`
}

//encore:api auth method=GET path=/v1/dashboard/token
func (s *Service) GetDashboardToken(ctx context.Context, req *DashboardTokenRequest) (*DashboardTokenResponse, error) {
	token, ok := s.dashboard.GetJWT(ctx, req.Refresh)
	if !ok {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "dashboard token unavailable"}
	}
	return &DashboardTokenResponse{Token: token}, nil
}

type PublicHashResponse struct {
	PublicHash string `json:"public_hash"`
}

//encore:api auth method=GET path=/v1/dashboard/public-hash/:uuid
func (s *Service) GetPublicHash(ctx context.Context, uuid string) (*PublicHashResponse, error) {
	token, ok := s.dashboard.GetJWT(ctx, false)
	if !ok {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "dashboard token unavailable"}
	}

	hash, ok := s.dashboard.FetchPublicHash(ctx, uuid, token)
	if !ok {
		// A revoked token surfaces as a failed fetch; retry once with a
		// freshly minted one.
		fresh, refreshed := s.dashboard.GetJWT(ctx, true)
		if refreshed && fresh != token {
			hash, ok = s.dashboard.FetchPublicHash(ctx, uuid, fresh)
		}
	}
	if !ok {
		rlog.Warn("public hash unavailable", "project", uuid)
		return nil, &errs.Error{Code: errs.NotFound, Message: "public hash unavailable"}
	}
	return &PublicHashResponse{PublicHash: hash}, nil
}
