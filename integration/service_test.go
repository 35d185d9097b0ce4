package integration

import (
	"context"
	"testing"

	"encore.dev/beta/auth"
	"encore.dev/et"
	"go.uber.org/mock/gomock"

	"ottolink.app/integration/mocks/business/connect_business"
	"ottolink.app/integration/mocks/business/connectivity_business"
	"ottolink.app/integration/mocks/business/dashboard_business"
	"ottolink.app/integration/mocks/domain/heartbeat_scheduler"
	"ottolink.app/integration/model"
)

type testService struct {
	*Service
	connect      *connect_business.MockBusiness
	connectivity *connectivity_business.MockBusiness
	dashboard    *dashboard_business.MockBusiness
	scheduler    *heartbeat_scheduler.MockScheduler
	credentials  *fakeCredentialStore
}

type fakeCredentialStore struct {
	creds     model.Credentials
	saveErr   error
	deleteErr error
	saved     []string
	deletes   int
}

func (f *fakeCredentialStore) Credentials(context.Context) (model.Credentials, error) {
	return f.creds, nil
}

func (f *fakeCredentialStore) SaveExternalAPIKey(_ context.Context, key string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, key)
	f.creds.ExternalAPIKey = key
	return nil
}

func (f *fakeCredentialStore) DeleteExternalAPIKey(context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	f.creds.ExternalAPIKey = ""
	return nil
}

func newTestService(t *testing.T) *testService {
	ctrl := gomock.NewController(t)
	ts := &testService{
		connect:      connect_business.NewMockBusiness(ctrl),
		connectivity: connectivity_business.NewMockBusiness(ctrl),
		dashboard:    dashboard_business.NewMockBusiness(ctrl),
		scheduler:    heartbeat_scheduler.NewMockScheduler(ctrl),
		credentials:  &fakeCredentialStore{},
	}
	ts.Service = &Service{
		connect:      ts.connect,
		connectivity: ts.connectivity,
		dashboard:    ts.dashboard,
		scheduler:    ts.scheduler,
		credentials:  ts.credentials,
	}

	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = prev })
	return ts
}

var adminActor = &model.Actor{UserID: "42", Capabilities: []string{model.CapabilityManageOptions}}

func asAdmin() {
	et.OverrideAuthInfo(auth.UID(adminActor.UserID), adminActor)
}

func asViewer() {
	et.OverrideAuthInfo("43", &model.Actor{UserID: "43", Capabilities: []string{"read"}})
}
