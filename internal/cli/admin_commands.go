package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"budget/internal/api"
	"budget/internal/core"
)

func cmdAdmin(ctx context.Context, app *App, args []string, out io.Writer) error {
	if !core.IsAdmin(app.Session.User()) {
		return fmt.Errorf("admin commands require an administrator account")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: budget admin <stats|analytics|users|categories|currencies> ...")
	}

	switch args[0] {
	case "stats":
		stats, err := app.Admin.DashboardStats(ctx)
		if err != nil {
			fmt.Fprintf(out, "Could not load stats: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintln(out, string(stats))
		return nil
	case "analytics":
		analytics, err := app.Admin.Analytics(ctx)
		if err != nil {
			fmt.Fprintf(out, "Could not load analytics: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintln(out, string(analytics))
		return nil
	case "users":
		return adminUsers(ctx, app, args[1:], out)
	case "categories":
		return adminCategories(ctx, app, args[1:], out)
	case "currencies":
		return adminCurrencies(app, args[1:], out)
	default:
		return fmt.Errorf("unknown admin subcommand: %s", args[0])
	}
}

func adminUsers(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		users, err := app.Admin.Users(ctx)
		if err != nil {
			fmt.Fprintf(out, "Could not load users: %s\n", backendMessage(err))
			return err
		}
		for _, u := range users {
			status := "active"
			if !u.Active {
				status = "suspended"
			}
			role := "user"
			if core.IsAdmin(&u.User) {
				role = "admin"
			}
			fmt.Fprintf(out, "#%d  %-28s %-8s %s\n", u.ID, u.Email, role, status)
		}
		return nil
	case "show":
		id, _, err := popID("admin users show", args[1:])
		if err != nil {
			return err
		}
		u, err := app.Admin.User(ctx, id)
		if err != nil {
			fmt.Fprintf(out, "Could not load user: %s\n", backendMessage(err))
			return err
		}
		status := "active"
		if !u.Active {
			status = "suspended"
		}
		fmt.Fprintf(out, "#%d %s %s <%s> roles=%v currency=%s %s\n",
			u.ID, u.FirstName, u.LastName, u.Email, u.Roles, u.Currency, status)
		return nil
	case "update":
		id, rest, err := popID("admin users update", args[1:])
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("admin users update", flag.ContinueOnError)
		fs.SetOutput(out)
		email := fs.String("email", "", "email address")
		first := fs.String("first", "", "first name")
		last := fs.String("last", "", "last name")
		currencyCode := fs.String("currency", "", "currency code")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if _, err := app.Admin.UpdateUser(ctx, id, api.ProfileUpdate{
			Email:     *email,
			FirstName: *first,
			LastName:  *last,
			Currency:  *currencyCode,
		}); err != nil {
			fmt.Fprintf(out, "Could not update user: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Updated user #%d.\n", id)
		return nil
	case "suspend":
		id, _, err := popID("admin users suspend", args[1:])
		if err != nil {
			return err
		}
		if err := app.Admin.SuspendUser(ctx, id); err != nil {
			fmt.Fprintf(out, "Could not suspend user: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Suspended user #%d.\n", id)
		return nil
	case "activate":
		id, _, err := popID("admin users activate", args[1:])
		if err != nil {
			return err
		}
		if err := app.Admin.ActivateUser(ctx, id); err != nil {
			fmt.Fprintf(out, "Could not activate user: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Activated user #%d.\n", id)
		return nil
	case "delete":
		id, _, err := popID("admin users delete", args[1:])
		if err != nil {
			return err
		}
		if err := app.Admin.DeleteUser(ctx, id); err != nil {
			fmt.Fprintf(out, "Could not delete user: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Deleted user #%d.\n", id)
		return nil
	case "reset-password":
		id, rest, err := popID("admin users reset-password", args[1:])
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("admin users reset-password", flag.ContinueOnError)
		fs.SetOutput(out)
		newPassword := fs.String("new-password", "", "new password")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *newPassword == "" {
			return fmt.Errorf("reset-password requires -new-password")
		}
		if err := app.Admin.ResetUserPassword(ctx, id, *newPassword); err != nil {
			fmt.Fprintf(out, "Could not reset password: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Password reset for user #%d.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown admin users subcommand: %s", args[0])
	}
}

func adminCategories(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		categories, err := app.Admin.Categories(ctx)
		if err != nil {
			fmt.Fprintf(out, "Could not load categories: %s\n", backendMessage(err))
			return err
		}
		for _, c := range categories {
			fmt.Fprintf(out, "#%d  %s\n", c.ID, c.Name)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: budget admin categories add NAME")
		}
		created, err := app.Admin.CreateCategory(ctx, args[1])
		if err != nil {
			fmt.Fprintf(out, "Could not create category: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Created category #%d %s.\n", created.ID, created.Name)
		return nil
	case "update":
		id, rest, err := popID("admin categories update", args[1:])
		if err != nil {
			return err
		}
		if len(rest) < 1 {
			return fmt.Errorf("usage: budget admin categories update ID NAME")
		}
		if _, err := app.Admin.UpdateCategory(ctx, id, rest[0]); err != nil {
			fmt.Fprintf(out, "Could not update category: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Updated category #%d.\n", id)
		return nil
	case "delete":
		id, _, err := popID("admin categories delete", args[1:])
		if err != nil {
			return err
		}
		if err := app.Admin.DeleteCategory(ctx, id); err != nil {
			fmt.Fprintf(out, "Could not delete category: %s\n", backendMessage(err))
			return err
		}
		fmt.Fprintf(out, "Deleted category #%d.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown admin categories subcommand: %s", args[0])
	}
}

// adminCurrencies manages the locally persisted currency catalog that the
// registration and profile pickers read.
func adminCurrencies(app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		for _, option := range app.Catalog.All() {
			state := "enabled"
			if !option.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(out, "%s  %-20s %-3s %s\n", option.Code, option.Name, option.Symbol, state)
		}
		return nil
	case "enable", "disable":
		if len(args) < 2 {
			return fmt.Errorf("usage: budget admin currencies %s CODE", args[0])
		}
		return setCurrencyEnabled(app, args[1], args[0] == "enable", out)
	default:
		return fmt.Errorf("unknown admin currencies subcommand: %s", args[0])
	}
}

func setCurrencyEnabled(app *App, code string, enabled bool, out io.Writer) error {
	all := app.Catalog.All()
	found := false
	for i := range all {
		if all[i].Code == code {
			all[i].Enabled = enabled
			found = true
		}
	}
	if !found {
		return fmt.Errorf("unknown currency code: %s", code)
	}

	var enabledList []core.CurrencyOption
	for _, option := range all {
		if option.Enabled {
			enabledList = append(enabledList, core.CurrencyOption{
				Code: option.Code, Name: option.Name, Symbol: option.Symbol,
			})
		}
	}

	if err := app.Catalog.SaveAll(all); err != nil {
		return err
	}
	if err := app.Catalog.SaveEnabled(enabledList); err != nil {
		return err
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	fmt.Fprintf(out, "Currency %s %s.\n", code, state)
	return nil
}
