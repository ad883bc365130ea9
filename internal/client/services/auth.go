package services

import (
	"context"
	"fmt"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
)

// AuthService manages the login/signup/logout lifecycle and the persisted
// session.
//
// Contract:
//   - Login/Signup: validate locally first (ValidationError, no network
//     call), then exchange credentials for a (token, profile) pair and
//     persist it. On any failure the prior session is untouched.
//   - Logout: purely local; confirm gates the destructive action and a
//     declined confirmation changes nothing.
//   - Restore: re-adopts a previously persisted session at startup without
//     contacting the backend.
//
// All methods honor context cancellation through the underlying client.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, in SignupInput) error
	Logout(ctx context.Context, confirm func() bool) (bool, error)
	Restore(ctx context.Context) (*session.Session, error)
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

type authService struct {
	Deps
	guard *guard
}

// NewAuthService constructs an AuthService over the shared dependencies.
func NewAuthService(d Deps) AuthService {
	return &authService{Deps: d.withDefaults(), guard: newGuard()}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return &ValidationError{Message: "email and password are required"}
	}

	op, err := a.guard.begin("login")
	if err != nil {
		return err
	}
	defer a.guard.end("login")

	token, user, err := a.Client.Login(ctx, email, password)
	if err != nil {
		a.Log.Warn(ctx, "login failed", "op", op, "email", email, "err", err)
		return fmt.Errorf("login: %w", err)
	}
	return a.establishSession(ctx, op, token, user)
}

func (a *authService) Signup(ctx context.Context, in SignupInput) error {
	// Checked in order; the first failing check wins.
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return &ValidationError{Message: "all fields are required"}
	}
	if in.Password != in.ConfirmPassword {
		return &ValidationError{Message: "passwords do not match"}
	}
	if !in.AgreeToTerms {
		return &ValidationError{Message: "you must agree to the terms of service"}
	}

	op, err := a.guard.begin("signup")
	if err != nil {
		return err
	}
	defer a.guard.end("signup")

	token, user, err := a.Client.Signup(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		a.Log.Warn(ctx, "signup failed", "op", op, "email", in.Email, "err", err)
		return fmt.Errorf("signup: %w", err)
	}
	return a.establishSession(ctx, op, token, user)
}

// Logout clears the persisted session after confirmation. No network call is
// made; the backend token simply stops being used. Returns whether the
// logout actually happened.
func (a *authService) Logout(ctx context.Context, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := a.Store.Clear(ctx); err != nil {
		return false, fmt.Errorf("clear session: %w", err)
	}
	a.Client.SetToken("")
	a.Notifier.SessionChanged(nil)
	a.Log.Info(ctx, "logged out")
	return true, nil
}

// Restore loads the persisted session, if any, and installs its token on the
// API client. The cached profile is trusted as-is; no backend call is made.
func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	s, err := a.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, nil
	}
	a.Client.SetToken(s.Token)
	a.Notifier.SessionChanged(s)
	a.Log.Info(ctx, "session restored", "user", s.User.Email)
	return s, nil
}

func (a *authService) establishSession(ctx context.Context, op, token string, user models.UserProfile) error {
	if err := a.Store.Save(ctx, token, user); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.Client.SetToken(token)
	a.Notifier.SessionChanged(&session.Session{Token: token, User: user})
	a.Log.Info(ctx, "session established", "op", op, "user", user.Email)
	return nil
}
