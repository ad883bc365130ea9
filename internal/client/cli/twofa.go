package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/api"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/services"
)

// renderQR is a test seam for the terminal QR code output.
var renderQR = func(text string, w io.Writer) {
	qrterminal.GenerateHalfBlock(text, qrterminal.L, w)
}

// isRejectedCode reports whether the backend rejected the submitted code,
// which keeps enrollment open for another attempt.
func isRejectedCode(err error) bool {
	var srvErr *api.ServerError
	return errors.As(err, &srvErr)
}

// TwoFASettings shows the current second-factor state and walks through
// enabling or disabling it.
func (a *App) TwoFASettings(ctx context.Context) error {
	enabled, err := a.twoFA.Enabled(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	if enabled {
		return a.disableTwoFA(ctx)
	}
	return a.enableTwoFA(ctx)
}

// enableTwoFA requests a fresh secret, renders it as a QR code plus a manual
// entry key, and loops on the 6-digit code until it is accepted or the user
// gives up with an empty line.
func (a *App) enableTwoFA(ctx context.Context) error {
	enrollment, err := a.twoFA.BeginSetup(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintln(a.out, "Scan this QR code with your authenticator app:")
	renderQR(enrollment.OTPAuthURL, a.out)
	fmt.Fprintf(a.out, "Or enter this key manually: %s\n", enrollment.Secret)

	for {
		code, err := getSimpleText(a.reader, "Enter the 6-digit code from the app (empty line to cancel)", a.out)
		if err != nil {
			return err
		}
		if code == "" {
			fmt.Fprintln(a.out, "Setup cancelled.")
			return nil
		}

		err = a.twoFA.ConfirmSetup(ctx, code)
		if err == nil {
			fmt.Fprintln(a.out, "Two-factor authentication is now enabled.")
			return nil
		}

		var vErr *services.ValidationError
		if errors.As(err, &vErr) || isRejectedCode(err) {
			a.renderError(err)
			continue
		}
		a.renderError(err)
		return err
	}
}

func (a *App) disableTwoFA(ctx context.Context) error {
	fmt.Fprintln(a.out, "Two-factor authentication is enabled.")

	code, err := getSimpleText(a.reader, "Enter a current 6-digit code to disable it (empty line to cancel)", a.out)
	if err != nil {
		return err
	}
	if code == "" {
		return nil
	}

	done, err := a.twoFA.Disable(ctx, code, func() bool {
		return confirm(a.reader, "Really disable two-factor authentication?", a.out)
	})
	if err != nil {
		a.renderError(err)
		return err
	}
	if !done {
		return nil
	}
	fmt.Fprintln(a.out, "Two-factor authentication is now disabled.")
	return nil
}
