package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Browse(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Movie(ctx context.Context, arg string) error
	Fav(ctx context.Context, arg string) error
	Unfav(ctx context.Context, arg string) error
	Favorites(ctx context.Context) error
	TwoFASettings(ctx context.Context) error
}

func (a *App) getStatus() string {
	s := a.currentSession()
	if s == nil {
		return ""
	}
	status := s.User.Initials()
	if s.User.TwoFAEnabled {
		status += " 2fa"
	}
	return fmt.Sprintf("(%s)", status)
}

// Root restores a previously saved session and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	s, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}
	if s != nil {
		a.SessionChanged(s)
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// runREPL starts a simple read-eval-print loop for the movie CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help             — show available commands
//	  - browse           — featured movie and the home rails
//	  - search <query>   — search the catalog
//	  - movie <id>       — show details and cast for one movie
//	  - exit | quit      — leave the program
//
//	Not logged in:
//	  - login            — authenticate
//	  - signup           — create an account
//
//	Logged in:
//	  - whoami           — show the current profile
//	  - fav <id>         — add a movie to favorites
//	  - unfav <id>       — remove a movie from favorites
//	  - favorites        — list favorites
//	  - 2fa              — two-factor settings
//	  - logout           — log out
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "movies %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: browse, search <query>, movie <id>, fav <id>, unfav <id>, favorites, 2fa, whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: browse, search <query>, movie <id>, login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "s", "search":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "m", "movie":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: movie <id>")
				continue
			}
			_ = a.Movie(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: fav <id>")
				continue
			}
			_ = a.Fav(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: unfav <id>")
				continue
			}
			_ = a.Unfav(ctx, args[0])

		case "f", "favorites":
			_ = a.Favorites(ctx)

		case "2fa":
			_ = a.TwoFASettings(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
