package cli

import (
	"context"
	"fmt"
	"io"

	"budget/internal/core"
	"budget/internal/dashboard"
)

func cmdDashboard(ctx context.Context, app *App, out io.Writer) error {
	summary, err := dashboard.Build(ctx, app.Expenses, app.Budgets)
	if err != nil {
		fmt.Fprintf(out, "Could not load dashboard: %s\n", backendMessage(err))
		return err
	}

	code := app.Currency.Code()
	fmt.Fprintf(out, "Spending overview (%s)\n", code)
	fmt.Fprintf(out, "  Expenses:  %d totalling %s\n",
		summary.ExpenseCount, core.FormatAmount(summary.TotalSpent, code))
	fmt.Fprintf(out, "  Allocated: %s across %d budgets\n",
		core.FormatAmount(summary.TotalAllocated, code), len(summary.Budgets))
	fmt.Fprintf(out, "  Remaining: %s\n", core.FormatAmount(summary.Remaining, code))

	if len(summary.ByCategory) > 0 {
		fmt.Fprintln(out, "  By category:")
		for _, entry := range summary.ByCategory {
			fmt.Fprintf(out, "    %-20s %s (%d)\n",
				entry.Category, core.FormatAmount(entry.Total, code), entry.Count)
		}
	}
	return nil
}
