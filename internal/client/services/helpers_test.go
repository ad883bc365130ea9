package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
	"github.com/a1br4h33m/IMDB-Redesign/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *session.SQLiteStore {
	t.Helper()
	s, err := session.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedSession(t *testing.T, s session.Store, token string, user models.UserProfile) {
	t.Helper()
	require.NoError(t, s.Save(context.Background(), token, user))
}

func sampleUser() models.UserProfile {
	return models.UserProfile{ID: 1, Name: "Ann Lee", Email: "ann@example.com", EmailVerified: true}
}

// ---- fake client ----

// fakeClient implements api.Client for unit tests. It records the last
// arguments of every call and counts calls so tests can assert that local
// validation failures never reach the network.
type fakeClient struct {
	Token string

	LoginCalls int
	LoginRet   struct {
		Token string
		User  models.UserProfile
	}
	LoginErr       error
	LastLoginEmail string
	LastLoginPass  string

	SignupCalls int
	SignupRet   struct {
		Token string
		User  models.UserProfile
	}
	SignupErr      error
	LastSignupName string

	ProfileCalls int
	ProfileRet   models.UserProfile
	ProfileErr   error

	SetupCalls int
	SetupRet   string
	SetupErr   error

	VerifyCalls  int
	VerifyErr    error
	LastVerified string

	DisableCalls int
	DisableErr   error

	CheckCalls int
	CheckRet   bool
	CheckErr   error

	AddCalls int
	AddErr   error
	LastAdd  models.Favorite

	RemoveCalls int
	RemoveErr   error
	LastRemove  int64

	ListCalls int
	ListRet   []models.Favorite
	ListErr   error
}

func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) Login(_ context.Context, email, password string) (string, models.UserProfile, error) {
	f.LoginCalls++
	f.LastLoginEmail, f.LastLoginPass = email, password
	return f.LoginRet.Token, f.LoginRet.User, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, name, _, _ string) (string, models.UserProfile, error) {
	f.SignupCalls++
	f.LastSignupName = name
	return f.SignupRet.Token, f.SignupRet.User, f.SignupErr
}

func (f *fakeClient) Profile(_ context.Context) (models.UserProfile, error) {
	f.ProfileCalls++
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) SetupTwoFA(_ context.Context) (string, error) {
	f.SetupCalls++
	return f.SetupRet, f.SetupErr
}

func (f *fakeClient) VerifyTwoFA(_ context.Context, code string) error {
	f.VerifyCalls++
	f.LastVerified = code
	return f.VerifyErr
}

func (f *fakeClient) DisableTwoFA(_ context.Context, code string) error {
	f.DisableCalls++
	return f.DisableErr
}

func (f *fakeClient) CheckFavorite(_ context.Context, movieID int64) (bool, error) {
	f.CheckCalls++
	return f.CheckRet, f.CheckErr
}

func (f *fakeClient) AddFavorite(_ context.Context, fav models.Favorite) error {
	f.AddCalls++
	f.LastAdd = fav
	return f.AddErr
}

func (f *fakeClient) RemoveFavorite(_ context.Context, movieID int64) error {
	f.RemoveCalls++
	f.LastRemove = movieID
	return f.RemoveErr
}

func (f *fakeClient) Favorites(_ context.Context) ([]models.Favorite, error) {
	f.ListCalls++
	return f.ListRet, f.ListErr
}

// ---- recording notifier ----

type recordingNotifier struct {
	Sessions []*session.Session
	TwoFA    []bool
}

func (r *recordingNotifier) SessionChanged(s *session.Session) { r.Sessions = append(r.Sessions, s) }
func (r *recordingNotifier) TwoFAStateChanged(v bool)          { r.TwoFA = append(r.TwoFA, v) }
