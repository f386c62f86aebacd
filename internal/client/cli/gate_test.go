package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmaslov/authgate/internal/client/models"
	"github.com/vmaslov/authgate/internal/client/services"
	"github.com/vmaslov/authgate/internal/errx"
	"github.com/vmaslov/authgate/internal/logging"
)

// fakeAuthService implements services.AuthService with scripted behavior.
type fakeAuthService struct {
	authenticated bool
	user          *models.User

	loginErrs  []error // popped per attempt; nil means success
	loginCalls int
	logoutErr  error
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (*services.LoginResult, error) {
	f.loginCalls++
	if len(f.loginErrs) > 0 {
		err := f.loginErrs[0]
		f.loginErrs = f.loginErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.authenticated = true
	user := models.User{ID: "u1", Email: creds.Email, Roles: []string{"user"}, Lang: "en", Enabled: true}
	f.user = &user
	return &services.LoginResult{User: user, Token: "tok1"}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.authenticated = false
	f.user = nil
	return nil
}

func (f *fakeAuthService) IsAuthenticated(ctx context.Context) bool { return f.authenticated }

func (f *fakeAuthService) Token(ctx context.Context) (string, bool) {
	if f.authenticated {
		return "tok1", true
	}
	return "", false
}

func (f *fakeAuthService) Profile(ctx context.Context) (*models.User, bool) {
	if f.user == nil {
		return nil, false
	}
	return f.user, true
}

func newTestApp(svc services.AuthService, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		authService: svc,
		log:         logging.NewNop(),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         &out,
	}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
}

func TestRoot_NoSession_ShowsLoginSurface(t *testing.T) {
	svc := &fakeAuthService{}
	app, out := newTestApp(svc, "exit\n")

	app.Root(context.Background())

	require.Contains(t, out.String(), "Please log in")
	require.NotContains(t, out.String(), "authgate>")
}

func TestRoot_ExistingSession_ShowsHomeSurface(t *testing.T) {
	svc := &fakeAuthService{authenticated: true, user: &models.User{Email: "a@b.com"}}
	app, out := newTestApp(svc, "exit\n")

	app.Root(context.Background())

	require.Contains(t, out.String(), "Logged in as a@b.com")
	require.Contains(t, out.String(), "authgate>")
}

func TestRoot_LoginThenLogoutThenExit(t *testing.T) {
	stubPassword(t, "longenough")
	svc := &fakeAuthService{}
	app, out := newTestApp(svc, "a@b.com\nlogout\nexit\n")

	app.Root(context.Background())

	s := out.String()
	require.Contains(t, s, "Welcome, a@b.com!")
	require.Contains(t, s, "Logged out")
	// after logout the gate falls back to the login surface
	require.Contains(t, s[strings.Index(s, "Logged out"):], "Please log in")
	require.False(t, svc.authenticated)
}

func TestLoginSurface_ValidationError_ShownInline(t *testing.T) {
	stubPassword(t, "longenough")
	svc := &fakeAuthService{loginErrs: []error{errx.Validation("Invalid email format")}}
	app, out := newTestApp(svc, "bad-email\na@b.com\n")

	ok := app.loginSurface(context.Background())
	require.True(t, ok)
	require.Contains(t, out.String(), "  -> Invalid email format")
	require.Equal(t, 2, svc.loginCalls)
}

func TestLoginSurface_InvalidCredentials_ShownAsAlert(t *testing.T) {
	stubPassword(t, "longenough")
	svc := &fakeAuthService{loginErrs: []error{errx.InvalidCredentials("Invalid email or password", 401)}}
	app, out := newTestApp(svc, "a@b.com\na@b.com\n")

	ok := app.loginSurface(context.Background())
	require.True(t, ok)
	require.Contains(t, out.String(), "[!] Invalid email or password")
}

func TestLogin_RetriesTransientNetworkFailure(t *testing.T) {
	svc := &fakeAuthService{loginErrs: []error{
		errx.Network("Network error. Please check your connection."),
		nil,
	}}
	app, _ := newTestApp(svc, "")

	res, err := app.login(context.Background(), models.Credentials{Email: "a@b.com", Password: "longenough"})
	require.NoError(t, err)
	require.Equal(t, "tok1", res.Token)
	require.Equal(t, 2, svc.loginCalls)
}

func TestLogin_DoesNotRetryInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{loginErrs: []error{
		errx.InvalidCredentials("Invalid email or password", 401),
	}}
	app, _ := newTestApp(svc, "")

	_, err := app.login(context.Background(), models.Credentials{Email: "a@b.com", Password: "longenough"})
	require.Error(t, err)
	require.Equal(t, 1, svc.loginCalls)

	ae, ok := errx.As(err)
	require.True(t, ok)
	require.Equal(t, errx.KindInvalidCredentials, ae.Kind)
}

func TestHome_Whoami_PrintsProfile(t *testing.T) {
	svc := &fakeAuthService{
		authenticated: true,
		user:          &models.User{ID: "u1", Email: "a@b.com", Roles: []string{"user", "admin"}, Lang: "en", Enabled: true},
	}
	app, out := newTestApp(svc, "whoami\nexit\n")

	app.home(context.Background())

	s := out.String()
	require.Contains(t, s, "id:      u1")
	require.Contains(t, s, "roles:   user, admin")
	require.Contains(t, s, "enabled: true")
}

func TestHome_LogoutFailure_StaysOnHomeSurface(t *testing.T) {
	svc := &fakeAuthService{
		authenticated: true,
		logoutErr:     errx.Unknown("Failed to remove session token"),
	}
	app, out := newTestApp(svc, "logout\nexit\n")

	stay := app.home(context.Background())
	require.False(t, stay) // user exited afterwards
	require.Contains(t, out.String(), "[!] Failed to remove session token")
	require.True(t, svc.authenticated)
}

func TestHome_TokenWithoutProfile_StillAuthenticated(t *testing.T) {
	svc := &fakeAuthService{authenticated: true}
	app, out := newTestApp(svc, "whoami\nexit\n")

	app.home(context.Background())

	s := out.String()
	require.Contains(t, s, "Logged in\n")
	require.Contains(t, s, "No profile stored for this session")
}
