package integration

import (
	"context"
	"errors"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSaveExternalAPIKey(t *testing.T) {
	testCases := []struct {
		name            string
		viewer          bool
		saveErr         error
		scheduleErr     error
		expectSchedule  bool
		expectConnected bool
		expectedCode    errs.ErrCode
	}{
		{
			name:            "saved_and_connected",
			expectSchedule:  true,
			expectConnected: true,
		},
		{
			name:            "schedule_failure_is_not_fatal",
			scheduleErr:     errors.New("temporal unavailable"),
			expectSchedule:  true,
			expectConnected: false,
		},
		{
			name:         "store_failure",
			saveErr:      errors.New("db down"),
			expectedCode: errs.Internal,
		},
		{
			name:         "missing_capability",
			viewer:       true,
			expectedCode: errs.PermissionDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			ts.credentials.saveErr = tc.saveErr
			if tc.viewer {
				asViewer()
			} else {
				asAdmin()
			}

			if tc.expectSchedule {
				ts.scheduler.EXPECT().Schedule(gomock.Any()).Return(tc.scheduleErr).Times(1)
				ts.connectivity.EXPECT().
					TriggerImmediateCheck(gomock.Any(), "api_key_saved").
					Return(tc.expectConnected).
					Times(1)
			}

			resp, err := ts.SaveExternalAPIKey(context.Background(), &SaveExternalAPIKeyRequest{APIKey: "ext-key"})

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, resp)
				return
			}
			assert.NoError(t, err)
			assert.True(t, resp.HasExternalAPIKey)
			assert.Equal(t, tc.expectConnected, resp.Connected)
			assert.Equal(t, []string{"ext-key"}, ts.credentials.saved)
		})
	}
}

func TestSaveExternalAPIKeyRequest_Validation(t *testing.T) {
	assert.Error(t, (&SaveExternalAPIKeyRequest{}).Validate())
	assert.NoError(t, (&SaveExternalAPIKeyRequest{APIKey: "ext-key"}).Validate())
}

func TestDeleteExternalAPIKey(t *testing.T) {
	testCases := []struct {
		name             string
		viewer           bool
		deleteErr        error
		unscheduleErr    error
		expectUnschedule bool
		expectClear      bool
		expectedCode     errs.ErrCode
	}{
		{
			name:             "deleted",
			expectUnschedule: true,
		},
		{
			name:             "unschedule_failure_clears_cache",
			unscheduleErr:    errors.New("temporal unavailable"),
			expectUnschedule: true,
			expectClear:      true,
		},
		{
			name:         "store_failure",
			deleteErr:    errors.New("db down"),
			expectedCode: errs.Internal,
		},
		{
			name:         "missing_capability",
			viewer:       true,
			expectedCode: errs.PermissionDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)
			ts.credentials.deleteErr = tc.deleteErr
			if tc.viewer {
				asViewer()
			} else {
				asAdmin()
			}

			if tc.expectUnschedule {
				ts.scheduler.EXPECT().Unschedule(gomock.Any()).Return(tc.unscheduleErr).Times(1)
			}
			if tc.expectClear {
				ts.connectivity.EXPECT().ClearCache(gomock.Any()).Return(nil).Times(1)
			}

			resp, err := ts.DeleteExternalAPIKey(context.Background())

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, resp)
				assert.Zero(t, ts.credentials.deletes)
				return
			}
			assert.NoError(t, err)
			assert.False(t, resp.HasExternalAPIKey)
			assert.Equal(t, 1, ts.credentials.deletes)
		})
	}
}
