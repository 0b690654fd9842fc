package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"budget/internal/api"
	"budget/internal/core"
	"budget/internal/session"
)

func cmdLogin(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	err := app.Session.Login(ctx, api.Credentials{Email: *email, Password: *password})
	if err != nil {
		fmt.Fprintln(out, loginFailureMessage(err))
		return err
	}

	user := app.Session.User()
	fmt.Fprintf(out, "Signed in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)

	// Post-login routing: administrators land on the admin dashboard
	route := app.Config.UserDashboardRoute
	if core.IsAdmin(user) {
		route = app.Config.AdminDashboardRoute
	}
	(&PrintNavigator{Out: out}).Navigate(route, false)
	return nil
}

func cmdLogout(app *App, out io.Writer) error {
	app.Session.Logout()
	fmt.Fprintln(out, "Signed out.")
	return nil
}

func cmdRegister(ctx context.Context, app *App, args []string, out io.Writer, admin bool) error {
	name := "register"
	if admin {
		name = "register-admin"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "account email (doubles as the username)")
	password := fs.String("password", "", "account password")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	currencyCode := fs.String("currency", "", "preferred currency code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%s requires -email and -password", name)
	}

	code := *currencyCode
	if code == "" {
		code = app.Config.DefaultCurrency
	}
	if !currencyEnabled(app, code) {
		return fmt.Errorf("currency %s is not enabled; run 'budget currency list'", code)
	}

	reg := api.Registration{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
		Currency:  code,
	}

	var err error
	if admin {
		_, err = app.Auth.RegisterAdmin(ctx, reg)
	} else {
		_, err = app.Auth.Register(ctx, reg)
	}
	if err != nil {
		fmt.Fprintf(out, "Registration failed: %s\n", backendMessage(err))
		return err
	}

	fmt.Fprintf(out, "Account created for %s. Run 'budget login' to sign in.\n", *email)
	return nil
}

func currencyEnabled(app *App, code string) bool {
	for _, option := range app.Catalog.Enabled() {
		if option.Code == code {
			return true
		}
	}
	return false
}

func cmdResetPassword(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "account email")
	newPassword := fs.String("new-password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *newPassword == "" {
		return fmt.Errorf("reset-password requires -email and -new-password")
	}

	if _, err := app.Auth.ResetPassword(ctx, *email, *newPassword); err != nil {
		fmt.Fprintf(out, "Password reset failed: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintln(out, "Password updated.")
	return nil
}

func cmdWhoami(app *App, out io.Writer) error {
	user := app.Session.User()
	if user == nil {
		fmt.Fprintln(out, "Not signed in.")
		return nil
	}
	role := "user"
	if core.IsAdmin(user) {
		role = "administrator"
	}
	fmt.Fprintf(out, "%s %s <%s> (%s), currency %s\n",
		user.FirstName, user.LastName, user.Email, role, app.Currency.Code())
	return nil
}

func cmdProfile(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(out)
	email := fs.String("email", "", "new email")
	first := fs.String("first", "", "new first name")
	last := fs.String("last", "", "new last name")
	currencyCode := fs.String("currency", "", "new currency code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current := app.Session.User()
	update := api.ProfileUpdate{
		Email:     current.Email,
		FirstName: current.FirstName,
		LastName:  current.LastName,
		Currency:  current.Currency,
	}
	patch := session.UserPatch{}
	if *email != "" {
		update.Email = *email
		patch.Email = email
	}
	if *first != "" {
		update.FirstName = *first
		patch.FirstName = first
	}
	if *last != "" {
		update.LastName = *last
		patch.LastName = last
	}
	if *currencyCode != "" {
		if !currencyEnabled(app, *currencyCode) {
			return fmt.Errorf("currency %s is not enabled", *currencyCode)
		}
		update.Currency = *currencyCode
	}

	// Server first; only a confirmed update touches local state
	if _, err := app.Auth.UpdateProfile(ctx, update); err != nil {
		fmt.Fprintf(out, "Profile update failed: %s\n", backendMessage(err))
		return err
	}

	if err := app.Session.UpdateUser(patch); err != nil {
		return err
	}
	if *currencyCode != "" {
		if err := app.Currency.Set(*currencyCode); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Profile updated.")
	return nil
}

func cmdDeleteAccount(ctx context.Context, app *App, out io.Writer) error {
	if _, err := app.Auth.DeleteAccount(ctx); err != nil {
		fmt.Fprintf(out, "Account deletion failed: %s\n", backendMessage(err))
		return err
	}
	app.Session.Logout()
	fmt.Fprintln(out, "Account deleted.")
	return nil
}

func cmdCurrency(app *App, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "show" {
		fmt.Fprintf(out, "Display currency: %s (%s)\n",
			app.Currency.Code(), core.CurrencySymbol(app.Currency.Code()))
		return nil
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: budget currency set CODE")
		}
		code := args[1]
		if !currencyEnabled(app, code) {
			return fmt.Errorf("currency %s is not enabled", code)
		}
		if err := app.Currency.Set(code); err != nil {
			return err
		}
		fmt.Fprintf(out, "Display currency set to %s.\n", code)
		if app.Session.IsAuthenticated() {
			fmt.Fprintln(out, "Run 'budget profile -currency "+code+"' to persist it server-side.")
		}
		return nil
	case "list":
		for _, option := range app.Catalog.Enabled() {
			fmt.Fprintf(out, "%s  %s (%s)\n", option.Code, option.Name, option.Symbol)
		}
		return nil
	default:
		return fmt.Errorf("unknown currency subcommand: %s", args[0])
	}
}
