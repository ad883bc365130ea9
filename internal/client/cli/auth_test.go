package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/api"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/services"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
)

// stubInputs replaces the interactive input seams with canned answers. Each
// call pops the next value; running out of answers fails the test.
func stubInputs(t *testing.T, texts []string, passwords []string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatal("no more text inputs")
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if len(passwords) == 0 {
			t.Fatal("no more password inputs")
		}
		v := passwords[0]
		passwords = passwords[1:]
		return v, nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func stubConfirm(t *testing.T, answer bool) func() {
	t.Helper()
	orig := confirm
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) bool { return answer }
	return func() { confirm = orig }
}

type fakeAuthSvc struct {
	loginEmail    string
	loginPassword string
	loginErr      error

	signupIn  services.SignupInput
	signupErr error

	logoutCalled bool
	logoutErr    error

	restoreSession *session.Session
	restoreErr     error
}

func (f *fakeAuthSvc) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	return f.loginErr
}
func (f *fakeAuthSvc) Signup(_ context.Context, in services.SignupInput) error {
	f.signupIn = in
	return f.signupErr
}
func (f *fakeAuthSvc) Logout(_ context.Context, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	f.logoutCalled = true
	return f.logoutErr == nil, f.logoutErr
}
func (f *fakeAuthSvc) Restore(context.Context) (*session.Session, error) {
	return f.restoreSession, f.restoreErr
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := &App{
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}
	return a, &out
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuthSvc{}
	a, _ := newTestApp(t)
	a.auth = f

	restore := stubInputs(t, []string{"ann@example.com"}, []string{"secret"})
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "ann@example.com" {
		t.Fatalf("email mismatch: %q", f.loginEmail)
	}
	if f.loginPassword != "secret" {
		t.Fatalf("password mismatch: %q", f.loginPassword)
	}
}

func TestLogin_RendersValidationError(t *testing.T) {
	f := &fakeAuthSvc{loginErr: &services.ValidationError{Message: "email and password are required"}}
	a, out := newTestApp(t)
	a.auth = f

	restore := stubInputs(t, []string{""}, []string{""})
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(out.String(), "email and password are required") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestSignup_CollectsForm(t *testing.T) {
	f := &fakeAuthSvc{}
	a, out := newTestApp(t)
	a.auth = f

	restore := stubInputs(t, []string{"Ann Lee", "ann@example.com"}, []string{"secret", "secret"})
	defer restore()
	restoreConfirm := stubConfirm(t, true)
	defer restoreConfirm()

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	want := services.SignupInput{
		Name:            "Ann Lee",
		Email:           "ann@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		AgreeToTerms:    true,
	}
	if f.signupIn != want {
		t.Fatalf("signup input mismatch: %+v", f.signupIn)
	}
	if !strings.Contains(out.String(), "Welcome, Ann Lee!") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestSignup_DeclinedTerms(t *testing.T) {
	f := &fakeAuthSvc{signupErr: &services.ValidationError{Message: "you must agree to the terms of service"}}
	a, out := newTestApp(t)
	a.auth = f

	restore := stubInputs(t, []string{"Ann", "ann@example.com"}, []string{"secret", "secret"})
	defer restore()
	restoreConfirm := stubConfirm(t, false)
	defer restoreConfirm()

	if err := a.Signup(context.Background()); err == nil {
		t.Fatal("want error")
	}
	if f.signupIn.AgreeToTerms {
		t.Fatal("terms should not be agreed")
	}
	if !strings.Contains(out.String(), "agree to the terms") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestLogout_Declined(t *testing.T) {
	f := &fakeAuthSvc{}
	a, _ := newTestApp(t)
	a.auth = f

	restoreConfirm := stubConfirm(t, false)
	defer restoreConfirm()

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if f.logoutCalled {
		t.Fatal("logout should not have happened")
	}
}

func TestLogout_Confirmed(t *testing.T) {
	f := &fakeAuthSvc{}
	a, out := newTestApp(t)
	a.auth = f

	restoreConfirm := stubConfirm(t, true)
	defer restoreConfirm()

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("logout did not happen")
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestWhoAmI(t *testing.T) {
	a, out := newTestApp(t)

	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatalf("WhoAmI err: %v", err)
	}
	if !strings.Contains(out.String(), "Not logged in.") {
		t.Fatalf("output: %q", out.String())
	}

	out.Reset()
	a.SessionChanged(&session.Session{
		Token: "t",
		User: models.UserProfile{
			Name: "Ann Lee", Email: "ann@example.com",
			EmailVerified: true, TwoFAEnabled: true,
		},
	})
	if err := a.WhoAmI(context.Background()); err != nil {
		t.Fatalf("WhoAmI err: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Ann Lee <ann@example.com>", "Email: verified", "Two-factor: enabled"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q: %q", want, got)
		}
	}
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t)
	if got := a.getStatus(); got != "" {
		t.Fatalf("status: %q", got)
	}

	a.SessionChanged(&session.Session{User: models.UserProfile{Name: "Ann Lee"}})
	if got := a.getStatus(); got != "(AL)" {
		t.Fatalf("status: %q", got)
	}

	a.TwoFAStateChanged(true)
	if got := a.getStatus(); got != "(AL 2fa)" {
		t.Fatalf("status: %q", got)
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &services.ValidationError{Message: "bad input"}, "bad input"},
		{"server rejection", &api.ServerError{Message: "Invalid email or password"}, "Invalid email or password"},
		{"server rejection without message", &api.ServerError{}, "request rejected by server"},
		{"unavailable", fmt.Errorf("login: %w", api.ErrUnavailable), "Cannot reach the server"},
		{"unauthorized", fmt.Errorf("check favorite: %w", api.ErrUnauthorized), "no longer valid"},
		{"busy", services.ErrBusy, "still in progress"},
		{"not authenticated", services.ErrNotAuthenticated, "log in first"},
		{"fallback", errors.New("oops"), "Something went wrong"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, out := newTestApp(t)
			a.renderError(tc.err)
			if !strings.Contains(out.String(), tc.want) {
				t.Fatalf("output missing %q: %q", tc.want, out.String())
			}
		})
	}
}
