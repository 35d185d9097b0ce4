package integration

import (
	"context"
	"crypto/subtle"
	"strings"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"

	"ottolink.app/integration/model"
)

var secrets struct {
	// AdminAPIToken is shared with the CMS front end that forwards
	// authenticated admin requests.
	AdminAPIToken string
}

// AuthParams are the headers the CMS front end forwards with each admin
// request.
type AuthParams struct {
	Authorization string `header:"Authorization"`
	ActorID       string `header:"X-Actor-ID"`
	Capabilities  string `header:"X-Actor-Capabilities"`
}

//encore:authhandler
func AuthHandler(ctx context.Context, p *AuthParams) (auth.UID, *model.Actor, error) {
	token := strings.TrimPrefix(p.Authorization, "Bearer ")
	if token == "" || secrets.AdminAPIToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(secrets.AdminAPIToken)) != 1 {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid admin token"}
	}
	if p.ActorID == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "X-Actor-ID header is required"}
	}

	return auth.UID(p.ActorID), &model.Actor{
		UserID:       p.ActorID,
		Capabilities: parseCapabilities(p.Capabilities),
	}, nil
}

func parseCapabilities(raw string) []string {
	var out []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// currentActor returns the authenticated actor of the request.
func currentActor() model.Actor {
	if actor, ok := auth.Data().(*model.Actor); ok && actor != nil {
		return *actor
	}
	return model.Actor{}
}

// requireCapability rejects actors lacking capability.
func requireCapability(capability string) (model.Actor, error) {
	actor := currentActor()
	if !actor.Can(capability) {
		return actor, &errs.Error{Code: errs.PermissionDenied, Message: "insufficient permissions"}
	}
	return actor, nil
}
