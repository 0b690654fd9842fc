package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"

	"budget/internal/core"
)

func cmdExpenses(ctx context.Context, app *App, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return expensesList(ctx, app, args[1:], out)
	case "add":
		return expensesAdd(ctx, app, args[1:], out)
	case "update":
		return expensesUpdate(ctx, app, args[1:], out)
	case "delete":
		return expensesDelete(ctx, app, args[1:], out)
	default:
		return fmt.Errorf("unknown expenses subcommand: %s", args[0])
	}
}

func expensesList(ctx context.Context, app *App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("expenses list", flag.ContinueOnError)
	fs.SetOutput(out)
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := url.Values{}
	if *category != "" {
		params.Set("category", *category)
	}

	expenses, err := app.Expenses.List(ctx, params)
	if err != nil {
		fmt.Fprintf(out, "Could not load expenses: %s\n", backendMessage(err))
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses recorded.")
		return nil
	}

	code := app.Currency.Code()
	for _, e := range expenses {
		fmt.Fprintf(out, "#%d  %-12s %-24s %-12s %s\n",
			e.ID, core.FormatDate(e.Date), e.Description, e.Category,
			core.FormatAmount(e.Amount, code))
	}
	return nil
}

func parseExpenseFlags(name string, args []string, out io.Writer) (*core.Expense, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	description := fs.String("description", "", "what the money went to")
	amount := fs.String("amount", "", "amount, e.g. 12.34")
	date := fs.String("date", core.CurrentDate(), "date (yyyy-mm-dd)")
	category := fs.String("category", "", "category name")
	payment := fs.String("payment", "", "payment method")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	expense := &core.Expense{
		Description:   *description,
		Date:          *date,
		Category:      *category,
		PaymentMethod: *payment,
	}
	if *amount != "" {
		value, err := core.ParseAmount(*amount)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid amount %q: %w", *amount, err)
		}
		expense.Amount = value
	}
	if !core.ValidInputDate(*date) {
		return nil, nil, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", *date)
	}
	return expense, fs.Args(), nil
}

func expensesAdd(ctx context.Context, app *App, args []string, out io.Writer) error {
	expense, _, err := parseExpenseFlags("expenses add", args, out)
	if err != nil {
		return err
	}
	if expense.Description == "" || expense.Amount == 0 {
		return fmt.Errorf("expenses add requires -description and -amount")
	}

	created, err := app.Expenses.Create(ctx, *expense)
	if err != nil {
		fmt.Fprintf(out, "Could not save expense: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Saved expense #%d.\n", created.ID)
	return nil
}

func expensesUpdate(ctx context.Context, app *App, args []string, out io.Writer) error {
	id, rest, err := popID("expenses update", args)
	if err != nil {
		return err
	}
	expense, _, err := parseExpenseFlags("expenses update", rest, out)
	if err != nil {
		return err
	}

	if _, err := app.Expenses.Update(ctx, id, *expense); err != nil {
		fmt.Fprintf(out, "Could not update expense: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Updated expense #%d.\n", id)
	return nil
}

func expensesDelete(ctx context.Context, app *App, args []string, out io.Writer) error {
	id, _, err := popID("expenses delete", args)
	if err != nil {
		return err
	}
	if err := app.Expenses.Delete(ctx, id); err != nil {
		fmt.Fprintf(out, "Could not delete expense: %s\n", backendMessage(err))
		return err
	}
	fmt.Fprintf(out, "Deleted expense #%d.\n", id)
	return nil
}
