package integration

import (
	"errors"
	"fmt"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"

	"ottolink.app/integration/model"
)

func TestToAPIError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedCode    errs.ErrCode
		expectedMessage string
	}{
		{
			name:            "rate_limited",
			err:             model.NewConnectError(model.FailureRateLimited, "too many token requests"),
			expectedCode:    errs.ResourceExhausted,
			expectedMessage: "too many token requests",
		},
		{
			name:         "not_found",
			err:          model.NewConnectError(model.FailureNotFound, "connect token not found or expired"),
			expectedCode: errs.NotFound,
		},
		{
			name:         "already_used",
			err:          model.NewConnectError(model.FailureAlreadyUsed, "connect token already used"),
			expectedCode: errs.FailedPrecondition,
		},
		{
			name:         "context_mismatch",
			err:          model.NewConnectError(model.FailureContextMismatch, "site url does not match"),
			expectedCode: errs.FailedPrecondition,
		},
		{
			name:         "validation",
			err:          model.NewConnectError(model.FailureValidation, "invalid callback payload"),
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "permission",
			err:          model.NewConnectError(model.FailurePermissionDenied, "insufficient permissions"),
			expectedCode: errs.PermissionDenied,
		},
		{
			name:         "remote",
			err:          model.NewConnectError(model.FailureRemote, "upstream returned 502"),
			expectedCode: errs.Unavailable,
		},
		{
			name:            "wrapped_connect_error",
			err:             fmt.Errorf("issue: %w", model.NewConnectError(model.FailureNotFound, "gone")),
			expectedCode:    errs.NotFound,
			expectedMessage: "gone",
		},
		{
			name:            "internal_hides_message",
			err:             &model.ConnectError{Kind: model.FailureInternal, Message: "failed to persist connection", Err: errors.New("db down")},
			expectedCode:    errs.Internal,
			expectedMessage: "internal error",
		},
		{
			name:            "plain_error",
			err:             errors.New("boom"),
			expectedCode:    errs.Internal,
			expectedMessage: "internal error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := toAPIError(tc.err)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedMessage != "" {
				var apiErr *errs.Error
				assert.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tc.expectedMessage, apiErr.Message)
			}
		})
	}

	assert.NoError(t, toAPIError(nil))
}
