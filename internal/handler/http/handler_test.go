package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/models"
)

const testCPF = "52998224725"

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// fakeAuthFlow implements service.AuthFlowService. Each method field can be
// overridden per test case.
type fakeAuthFlow struct {
	loginFn          func(ctx context.Context, in models.LoginInput) (models.LoginResult, error)
	registerFn       func(ctx context.Context, in models.RegistrationInput) (models.RegistrationResult, error)
	forgotPasswordFn func(ctx context.Context, in models.ForgotPasswordInput) (models.FlowState, error)
	openResetFn      func(ctx context.Context, token string) (models.ResetView, error)
	resetPasswordFn  func(ctx context.Context, in models.ResetPasswordInput) (models.ResetView, error)
}

func (f *fakeAuthFlow) Login(ctx context.Context, in models.LoginInput) (models.LoginResult, error) {
	return f.loginFn(ctx, in)
}

func (f *fakeAuthFlow) Register(ctx context.Context, in models.RegistrationInput) (models.RegistrationResult, error) {
	return f.registerFn(ctx, in)
}

func (f *fakeAuthFlow) ForgotPassword(ctx context.Context, in models.ForgotPasswordInput) (models.FlowState, error) {
	return f.forgotPasswordFn(ctx, in)
}

func (f *fakeAuthFlow) OpenReset(ctx context.Context, token string) (models.ResetView, error) {
	return f.openResetFn(ctx, token)
}

func (f *fakeAuthFlow) ResetPassword(ctx context.Context, in models.ResetPasswordInput) (models.ResetView, error) {
	return f.resetPasswordFn(ctx, in)
}

// fakeCredentials implements service.CredentialService.
type fakeCredentials struct {
	getFn     func(ctx context.Context, cpf string) (models.CandidateProfile, error)
	listFn    func(ctx context.Context) ([]models.CandidateProfile, error)
	updateFn  func(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error)
	setRoleFn func(ctx context.Context, cpf string, role models.Role) (models.CandidateProfile, error)
	deleteFn  func(ctx context.Context, cpf string) error
}

func (f *fakeCredentials) Register(context.Context, models.RegistrationInput) (models.CandidateProfile, error) {
	panic("not used")
}

func (f *fakeCredentials) Authenticate(context.Context, string, string) (models.CandidateProfile, error) {
	panic("not used")
}

func (f *fakeCredentials) Get(ctx context.Context, cpf string) (models.CandidateProfile, error) {
	return f.getFn(ctx, cpf)
}

func (f *fakeCredentials) Exists(context.Context, string) (bool, error) {
	panic("not used")
}

func (f *fakeCredentials) List(ctx context.Context) ([]models.CandidateProfile, error) {
	return f.listFn(ctx)
}

func (f *fakeCredentials) Update(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error) {
	return f.updateFn(ctx, cpf, upd)
}

func (f *fakeCredentials) SetRole(ctx context.Context, cpf string, role models.Role) (models.CandidateProfile, error) {
	return f.setRoleFn(ctx, cpf, role)
}

func (f *fakeCredentials) ResetPassword(context.Context, string, string) error {
	panic("not used")
}

func (f *fakeCredentials) Delete(ctx context.Context, cpf string) error {
	return f.deleteFn(ctx, cpf)
}

// fakeProfiles implements service.ProfileService.
type fakeProfiles struct {
	updateFn func(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error)
}

func (f *fakeProfiles) UpdateOwnProfile(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error) {
	return f.updateFn(ctx, cpf, upd)
}

// fakeSettings implements service.SettingsService over a plain value.
type fakeSettings struct {
	current   models.Settings
	updateErr error
}

func (f *fakeSettings) Current() models.Settings { return f.current }

func (f *fakeSettings) Load(context.Context) (models.Settings, error) { return f.current, nil }

func (f *fakeSettings) Refresh(context.Context) (models.Settings, error) { return f.current, nil }

func (f *fakeSettings) Update(_ context.Context, allow bool) (models.Settings, error) {
	if f.updateErr != nil {
		return f.current, f.updateErr
	}
	f.current.AllowCandidateEdit = allow
	return f.current, nil
}

func (f *fakeSettings) Subscribe(ctx context.Context) <-chan models.Settings {
	ch := make(chan models.Settings)
	close(ch)
	return ch
}

type fakeAppInfo struct {
	version string
}

func (f *fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfo) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testSessionService() service.SessionService {
	return service.NewSessionService(config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "intern-portal",
		TokenDuration: time.Hour,
	})
}

// newTestServices returns services whose transport-facing parts are fakes.
// Tests replace the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthFlowService:   &fakeAuthFlow{},
		CredentialService: &fakeCredentials{},
		ProfileService:    &fakeProfiles{},
		SettingsService:   &fakeSettings{},
		SessionService:    testSessionService(),
		AppInfoService:    &fakeAppInfo{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop()).Init()
}

// bearer returns an Authorization header value for a session with role.
func bearer(t *testing.T, role models.Role) string {
	t.Helper()
	session, err := testSessionService().Create(context.Background(), models.CandidateProfile{CPF: testCPF, Role: role})
	require.NoError(t, err)
	return "Bearer " + session.String()
}

func doRequest(t *testing.T, h http.Handler, method, target, body, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
