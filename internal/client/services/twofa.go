package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Enrollment is the transient setup state: the shared secret issued by the
// backend and the otpauth URI that authenticator apps scan. It is never
// persisted; abandoning enrollment simply discards it.
type Enrollment struct {
	Secret     string
	OTPAuthURL string
}

// TwoFAService manages time-based one-time-code second-factor enrollment for
// the current session's user.
//
// Code possession is the sole gate for both enabling and disabling, so a
// stolen session token alone cannot toggle the second factor. Every
// operation requires an active session and returns ErrNotAuthenticated
// otherwise.
type TwoFAService interface {
	// Enabled reports whether the cached profile has the second factor on.
	Enabled(ctx context.Context) (bool, error)

	// BeginSetup asks the backend for a fresh shared secret. Each call
	// issues a new secret and invalidates the previous one; the backend
	// tracks which secret is live for the authenticated user.
	BeginSetup(ctx context.Context) (*Enrollment, error)

	// ConfirmSetup submits the 6-digit code generated from the most recent
	// secret. On success the cached profile is refreshed and reports the
	// second factor as enabled; on rejection enrollment stays open for
	// retry.
	ConfirmSetup(ctx context.Context, code string) error

	// Disable verifies a live code against the enabled factor and turns it
	// off. confirm gates the destructive action; a declined confirmation
	// changes nothing. Returns whether the factor was actually disabled.
	Disable(ctx context.Context, code string, confirm func() bool) (bool, error)
}

type twoFAService struct {
	Deps
	issuer string
	guard  *guard
}

// NewTwoFAService constructs a TwoFAService. issuer names this application
// inside authenticator apps.
func NewTwoFAService(d Deps, issuer string) TwoFAService {
	return &twoFAService{Deps: d.withDefaults(), issuer: issuer, guard: newGuard()}
}

func (s *twoFAService) Enabled(ctx context.Context) (bool, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return false, err
	}
	return sess.User.TwoFAEnabled, nil
}

func (s *twoFAService) BeginSetup(ctx context.Context) (*Enrollment, error) {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	op, err := s.guard.begin("setup")
	if err != nil {
		return nil, err
	}
	defer s.guard.end("setup")

	secret, err := s.Client.SetupTwoFA(ctx)
	if err != nil {
		return nil, s.authFailure(ctx, "begin 2fa setup", err)
	}
	s.Log.Info(ctx, "two-factor setup started", "op", op, "user", sess.User.Email)
	return &Enrollment{
		Secret:     secret,
		OTPAuthURL: otpAuthURL(s.issuer, sess.User.Email, secret),
	}, nil
}

func (s *twoFAService) ConfirmSetup(ctx context.Context, code string) error {
	if !codePattern.MatchString(code) {
		return &ValidationError{Message: "enter a valid 6-digit code"}
	}
	sess, err := s.requireSession(ctx)
	if err != nil {
		return err
	}

	op, err := s.guard.begin("confirm")
	if err != nil {
		return err
	}
	defer s.guard.end("confirm")

	if err := s.Client.VerifyTwoFA(ctx, code); err != nil {
		return s.authFailure(ctx, "verify 2fa code", err)
	}

	s.refreshProfile(ctx, sess, true)
	s.Log.Info(ctx, "two-factor enabled", "op", op, "user", sess.User.Email)
	return nil
}

func (s *twoFAService) Disable(ctx context.Context, code string, confirm func() bool) (bool, error) {
	if !codePattern.MatchString(code) {
		return false, &ValidationError{Message: "enter a valid 6-digit code"}
	}
	sess, err := s.requireSession(ctx)
	if err != nil {
		return false, err
	}
	if confirm != nil && !confirm() {
		return false, nil
	}

	op, err := s.guard.begin("disable")
	if err != nil {
		return false, err
	}
	defer s.guard.end("disable")

	if err := s.Client.DisableTwoFA(ctx, code); err != nil {
		return false, s.authFailure(ctx, "disable 2fa", err)
	}

	s.refreshProfile(ctx, sess, false)
	s.Log.Info(ctx, "two-factor disabled", "op", op, "user", sess.User.Email)
	return true, nil
}

// refreshProfile replaces the cached profile with server truth after a
// confirmed two-factor change. If the re-fetch fails, only the two-factor
// flag is patched so the cache never reports the pre-change value.
func (s *twoFAService) refreshProfile(ctx context.Context, sess *session.Session, enabled bool) {
	user, err := s.Client.Profile(ctx)
	if err != nil {
		s.Log.Warn(ctx, "profile refresh failed, patching cached flag", "err", err)
		user = sess.User
		user.TwoFAEnabled = enabled
	}
	if err := s.Store.Save(ctx, sess.Token, user); err != nil {
		s.Log.Error(ctx, "save refreshed profile", "err", err)
		return
	}
	s.Notifier.TwoFAStateChanged(user.TwoFAEnabled)
	s.Notifier.SessionChanged(&session.Session{Token: sess.Token, User: user})
}

// otpAuthURL formats the enrollment URI consumed by authenticator apps.
func otpAuthURL(issuer, account, secret string) string {
	label := url.PathEscape(fmt.Sprintf("%s:%s", issuer, account))
	return "otpauth://totp/" + label +
		"?secret=" + url.QueryEscape(secret) +
		"&issuer=" + url.QueryEscape(issuer) +
		"&digits=6&period=30"
}
