package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"budget/internal/core"
)

func cmdBudgets(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return budgetsList(ctx, app, out)
	case "add":
		return budgetsAdd(ctx, app, args[1:], out)
	case "update":
		return budgetsUpdate(ctx, app, args[1:], out)
	case "delete":
		return budgetsDelete(ctx, app, args[1:], out)
	default:
		return fmt.Errorf("unknown budgets subcommand: %s", args[0])
	}
}

func budgetsList(ctx context.Context, app *App, out io.Writer) error {
	budgets, err := app.Budgets.List(ctx)
	if err != nil {
		fmt.Fprintf(out, "Could not load budgets: %s\n", backendMessage(err))
		return err
	}
	if len(budgets) == 0 {
		fmt.Fprintln(out, "No budgets defined.")
		return nil
	}

	code := app.Currency.Code()
	for _, b := range budgets {
		fmt.Fprintf(out, "#%d  %-24s %-10s %s  (%s - %s)\n",
			b.ID, b.Name, b.BudgetType,
			core.FormatAmount(b.AllocatedAmount, code),
			core.FormatDate(b.StartDate), core.FormatDate(b.EndDate))
	}
	return nil
}

func parseBudgetFlags(name string, args []string, out io.Writer) (*core.Budget, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	budgetName := fs.String("name", "", "budget name")
	amount := fs.String("amount", "", "allocated amount, e.g. 200")
	start := fs.String("start", "", "start date (yyyy-mm-dd)")
	end := fs.String("end", "", "end date (yyyy-mm-dd)")
	budgetType := fs.String("type", "monthly", "budget type")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	budget := &core.Budget{
		Name:       *budgetName,
		StartDate:  *start,
		EndDate:    *end,
		BudgetType: *budgetType,
	}
	if *amount != "" {
		value, err := core.ParseAmount(*amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", *amount, err)
		}
		budget.AllocatedAmount = value
	}
	for _, date := range []string{*start, *end} {
		if date != "" && !core.ValidInputDate(date) {
			return nil, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", date)
		}
	}
	return budget, nil
}

func budgetsAdd(ctx context.Context, app *App, args []string, out io.Writer) error {
	budget, err := parseBudgetFlags("budgets add", args, out)
	if err != nil {
		return err
	}
	if budget.Name == "" || budget.AllocatedAmount == 0 {
		return fmt.Errorf("budgets add requires -name and -amount")
	}

	created, err := app.Budgets.Create(ctx, *budget)
	if err != nil {
		fmt.Fprintf(out, "Could not save budget: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Saved budget #%d.\n", created.ID)
	return nil
}

func budgetsUpdate(ctx context.Context, app *App, args []string, out io.Writer) error {
	id, rest, err := popID("budgets update", args)
	if err != nil {
		return err
	}
	budget, err := parseBudgetFlags("budgets update", rest, out)
	if err != nil {
		return err
	}

	if _, err := app.Budgets.Update(ctx, id, *budget); err != nil {
		fmt.Fprintf(out, "Could not update budget: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Updated budget #%d.\n", id)
	return nil
}

func budgetsDelete(ctx context.Context, app *App, args []string, out io.Writer) error {
	id, _, err := popID("budgets delete", args)
	if err != nil {
		return err
	}
	if err := app.Budgets.Delete(ctx, id); err != nil {
		fmt.Fprintf(out, "Could not delete budget: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Deleted budget #%d.\n", id)
	return nil
}

// popID strips a leading numeric ID argument from args.
func popID(name string, args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("usage: budget %s ID [flags]", name)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid id %q", args[0])
	}
	return id, args[1:], nil
}
