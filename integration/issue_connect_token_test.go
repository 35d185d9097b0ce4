package integration

import (
	"context"
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ottolink.app/integration/model"
)

func TestIssueConnectToken(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Minute)

	testCases := []struct {
		name          string
		mockReturn    *model.IssuedToken
		mockError     error
		expectedCode  errs.ErrCode
		expectSuccess bool
	}{
		{
			name:          "issued",
			mockReturn:    &model.IssuedToken{Token: "a1b2c3", ExpiresAt: expiresAt},
			expectSuccess: true,
		},
		{
			name:         "rate_limited",
			mockError:    model.NewConnectError(model.FailureRateLimited, "too many token requests"),
			expectedCode: errs.ResourceExhausted,
		},
		{
			name:         "permission_denied",
			mockError:    model.NewConnectError(model.FailurePermissionDenied, "insufficient permissions"),
			expectedCode: errs.PermissionDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			asAdmin()

			ts.connect.EXPECT().
				IssueToken(gomock.Any(), *adminActor, model.IssueContext{ClientIP: "203.0.113.9", UserAgent: "Mozilla/5.0"}).
				Return(tc.mockReturn, tc.mockError).
				Times(1)

			resp, err := ts.IssueConnectToken(context.Background(), &IssueConnectTokenRequest{
				ForwardedFor: "203.0.113.9, 10.0.0.1",
				UserAgent:    "Mozilla/5.0",
			})

			if !tc.expectSuccess {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, resp)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "a1b2c3", resp.NonceToken)
			assert.Equal(t, expiresAt, resp.ExpiresAt)
			assert.InDelta(t, 900, resp.ExpiresIn, 2)
		})
	}
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "203.0.113.9", clientIP("203.0.113.9, 10.0.0.1"))
	assert.Equal(t, "203.0.113.9", clientIP(" 203.0.113.9 "))
	assert.Equal(t, "", clientIP(""))
}
