package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"budget/internal/api"
	"budget/internal/guard"
)

// PrintNavigator renders route changes as terminal hints. The CLI has no
// history stack, so the replace flag carries no meaning here and is ignored.
type PrintNavigator struct {
	Out io.Writer
}

func (n *PrintNavigator) Navigate(route string, replace bool) {
	fmt.Fprintf(n.Out, "-> %s\n", route)
	if route == "/login" {
		fmt.Fprintln(n.Out, "You are not signed in. Run 'budget login' first.")
	}
}

// Run dispatches a subcommand. The session store must be initialized before
// calling.
func Run(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return cmdLogin(ctx, app, rest, out)
	case "logout":
		return cmdLogout(app, out)
	case "register":
		return cmdRegister(ctx, app, rest, out, false)
	case "register-admin":
		return cmdRegister(ctx, app, rest, out, true)
	case "reset-password":
		return cmdResetPassword(ctx, app, rest, out)
	case "whoami":
		return cmdWhoami(app, out)
	case "profile":
		return app.runProtected(out, func() error { return cmdProfile(ctx, app, rest, out) })
	case "delete-account":
		return app.runProtected(out, func() error { return cmdDeleteAccount(ctx, app, out) })
	case "currency":
		return cmdCurrency(app, rest, out)
	case "dashboard":
		return app.runProtected(out, func() error { return cmdDashboard(ctx, app, out) })
	case "expenses":
		return app.runProtected(out, func() error { return cmdExpenses(ctx, app, rest, out) })
	case "budgets":
		return app.runProtected(out, func() error { return cmdBudgets(ctx, app, rest, out) })
	case "admin":
		return app.runProtected(out, func() error { return cmdAdmin(ctx, app, rest, out) })
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// runProtected gates a protected view through the route guard.
func (a *App) runProtected(out io.Writer, fn func() error) error {
	g := guard.New(a.Session, &PrintNavigator{Out: out}, a.Config.LoginRoute, a.Logger.Logger)
	defer g.Unmount()

	switch g.Mount() {
	case guard.StateAuthenticated:
		return fn()
	case guard.StateLoading:
		fmt.Fprintln(out, "Loading session...")
		return nil
	default:
		// The navigator already printed the redirect
		return nil
	}
}

// backendMessage extracts a displayable message from a service error. The
// core hands backend error content through untouched; mapping it to wording
// happens here.
func backendMessage(err error) string {
	var transport *api.TransportError
	if errors.As(err, &transport) {
		if msg := transport.Message(); msg != "" {
			return msg
		}
	}
	var precondition *api.PreconditionError
	if errors.As(err, &precondition) {
		return precondition.Reason
	}
	return err.Error()
}

// loginFailureMessage maps the backend's login failure wording to the
// messages the login view shows.
func loginFailureMessage(err error) string {
	msg := backendMessage(err)
	lowered := strings.ToLower(msg)
	switch {
	case strings.Contains(lowered, "deactivated") || strings.Contains(lowered, "suspended"):
		return "Your account has been deactivated. Contact an administrator."
	case strings.Contains(lowered, "bad credentials") || strings.Contains(lowered, "password"):
		return "Invalid email or password."
	default:
		return "Login failed: " + msg
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `Usage: budget <command> [flags]

Commands:
  login             Sign in (-email, -password)
  logout            Sign out and clear local session
  register          Create an account (-email, -password, -first, -last, -currency)
  register-admin    Create an administrator account (same flags)
  reset-password    Reset a password (-email, -new-password)
  whoami            Show the current session
  profile           Update profile (-email, -first, -last, -currency)
  delete-account    Delete the signed-in account
  currency          Show or set the display currency (show | set CODE | list)
  dashboard         Show the spending overview
  expenses          Manage expenses (list | add | update | delete)
  budgets           Manage budgets (list | add | update | delete)
  admin             Administration (stats | analytics | users | categories | currencies ...)`)
}
