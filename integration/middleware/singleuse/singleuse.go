package singleuse

import (
	"context"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"

	"ottolink.app/integration/business/connect"
	"ottolink.app/integration/cachestore"
	"ottolink.app/integration/model"
)

// markerTTL bounds how long a crashed request can block its key.
const markerTTL = time.Minute

// Keyed is implemented by request payloads of single_use endpoints.
type Keyed interface {
	SingleUseKey() string
}

// MarkerStore records in-flight requests.
type MarkerStore interface {
	Mark(ctx context.Context, key model.SingleUseKey, ttl time.Duration) (bool, error)
	Clear(ctx context.Context, key model.SingleUseKey) error
}

var markers MarkerStore = cachestore.InFlight{}

//encore:middleware target=tag:single_use
func SingleUseMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	cacheKey := model.SingleUseKey{
		Resource: req.Data().Path,
		Key:      connect.Digest(key),
	}

	marked, markErr := markers.Mark(req.Context(), cacheKey, markerTTL)
	if markErr != nil {
		rlog.Error("Failed to mark request as processing", "error", markErr)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"},
		}
	}
	if !marked {
		return handleInFlight(cacheKey)
	}

	defer clearMarker(req.Context(), cacheKey)
	return next(req)
}

// extractKey reads the single-use key from the decoded payload
func extractKey(req middleware.Request) (string, *errs.Error) {
	keyed, ok := req.Data().Payload.(Keyed)
	if !ok {
		return "", &errs.Error{Code: errs.Internal, Message: "endpoint payload has no single-use key"}
	}

	key := strings.TrimSpace(keyed.SingleUseKey())
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "nonce_token is required"}
	}
	return key, nil
}

// handleInFlight rejects a request whose twin is still being processed
func handleInFlight(key model.SingleUseKey) middleware.Response {
	rlog.Info("Concurrent request detected", "resource", key.Resource)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."},
	}
}

// clearMarker removes the in-flight marker once the request completes
func clearMarker(ctx context.Context, key model.SingleUseKey) {
	if err := markers.Clear(ctx, key); err != nil {
		rlog.Error("Failed to clear in-flight marker", "error", err)
	}
}
