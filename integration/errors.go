package integration

import (
	"errors"

	"encore.dev/beta/errs"

	"ottolink.app/integration/model"
)

// toAPIError maps connect-flow failures onto API error codes.
func toAPIError(err error) error {
	if err == nil {
		return nil
	}
	var ce *model.ConnectError
	if !errors.As(err, &ce) {
		return &errs.Error{Code: errs.Internal, Message: "internal error"}
	}

	code := errs.Internal
	message := ce.Message
	switch ce.Kind {
	case model.FailureRateLimited:
		code = errs.ResourceExhausted
	case model.FailureNotFound:
		code = errs.NotFound
	case model.FailureAlreadyUsed, model.FailureContextMismatch:
		code = errs.FailedPrecondition
	case model.FailureValidation:
		code = errs.InvalidArgument
	case model.FailurePermissionDenied:
		code = errs.PermissionDenied
	case model.FailureTransport, model.FailureRemote:
		code = errs.Unavailable
	default:
		message = "internal error"
	}
	return &errs.Error{
		Code:    code,
		Message: message,
		Details: failureDetails{Kind: ce.Kind},
	}
}

type failureDetails struct {
	Kind model.FailureKind `json:"kind"`
}

func (failureDetails) ErrDetails() {}
