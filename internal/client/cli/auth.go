package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/api"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/services"
)

// getSimpleText, getPassword, and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var confirm = Confirm

// renderError translates service errors into user-facing messages. Validation
// problems and server rejections carry their own message; transport failures
// get a generic connectivity hint.
func (a *App) renderError(err error) {
	var vErr *services.ValidationError
	var srvErr *api.ServerError

	switch {
	case errors.As(err, &vErr):
		fmt.Fprintln(a.out, vErr.Message)
	case errors.As(err, &srvErr):
		fmt.Fprintln(a.out, srvErr.Error())
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Cannot reach the server. Please try again later.")
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Your session is no longer valid. Please log in again.")
	case errors.Is(err, services.ErrBusy):
		fmt.Fprintln(a.out, "The previous request is still in progress.")
	case errors.Is(err, services.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "Please log in first.")
	default:
		fmt.Fprintf(a.out, "Something went wrong: %s\n", err.Error())
	}
}

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted and the prompt picks up the user via SessionChanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.renderError(err)
		return err
	}

	if s := a.currentSession(); s != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Name)
	}
	return nil
}

// Signup walks through the registration form and creates an account. A
// successful signup also logs the user in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirmPassword, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	agree := confirm(a.reader, "Do you agree to the terms of service?", a.out)

	in := services.SignupInput{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
		AgreeToTerms:    agree,
	}
	if err := a.auth.Signup(ctx, in); err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", name)
	return nil
}

// Logout clears the persisted session after confirmation.
func (a *App) Logout(ctx context.Context) error {
	done, err := a.auth.Logout(ctx, func() bool {
		return confirm(a.reader, "Log out?", a.out)
	})
	if err != nil {
		a.renderError(err)
		return err
	}
	if !done {
		return nil
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the cached profile of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.currentSession()
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := s.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.EmailVerified {
		fmt.Fprintln(a.out, "Email: verified")
	} else {
		fmt.Fprintln(a.out, "Email: not verified")
	}
	if u.TwoFAEnabled {
		fmt.Fprintln(a.out, "Two-factor: enabled")
	} else {
		fmt.Fprintln(a.out, "Two-factor: disabled")
	}
	if u.IsAdmin {
		fmt.Fprintln(a.out, "Role: admin")
	}
	return nil
}
