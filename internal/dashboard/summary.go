// Package dashboard aggregates expenses and budgets into the overview the
// dashboard views render. The two fetches are independent backend calls and
// run concurrently; no ordering between them is assumed.
package dashboard

import (
	"context"
	"net/url"
	"sort"

	"budget/internal/core"

	"golang.org/x/sync/errgroup"
)

// ExpenseLister is the slice of the expense service the builder needs.
type ExpenseLister interface {
	List(ctx context.Context, params url.Values) ([]core.Expense, error)
}

// BudgetLister is the slice of the budget service the builder needs.
type BudgetLister interface {
	List(ctx context.Context) ([]core.Budget, error)
}

// CategoryTotal is the spend aggregated for one category.
type CategoryTotal struct {
	Category string
	Total    float64
	Count    int
}

// Summary is the aggregate overview for the authenticated user.
type Summary struct {
	ExpenseCount   int
	TotalSpent     float64
	ByCategory     []CategoryTotal
	Budgets        []core.Budget
	TotalAllocated float64
	Remaining      float64
}

// Build fetches expenses and budgets concurrently and aggregates them. A
// failure of either fetch fails the whole summary; callers show one error.
func Build(ctx context.Context, expenses ExpenseLister, budgets BudgetLister) (*Summary, error) {
	var (
		expenseRows []core.Expense
		budgetRows  []core.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := expenses.List(gctx, nil)
		if err != nil {
			return err
		}
		expenseRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := budgets.List(gctx)
		if err != nil {
			return err
		}
		budgetRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(expenseRows, budgetRows), nil
}

func aggregate(expenses []core.Expense, budgets []core.Budget) *Summary {
	summary := &Summary{
		ExpenseCount: len(expenses),
		Budgets:      budgets,
	}

	byCategory := make(map[string]*CategoryTotal)
	for _, e := range expenses {
		summary.TotalSpent += e.Amount

		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		entry, ok := byCategory[category]
		if !ok {
			entry = &CategoryTotal{Category: category}
			byCategory[category] = entry
		}
		entry.Total += e.Amount
		entry.Count++
	}

	for _, entry := range byCategory {
		summary.ByCategory = append(summary.ByCategory, *entry)
	}
	// Largest spend first; ties by name keep the order stable
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Category < b.Category
	})

	for _, b := range budgets {
		summary.TotalAllocated += b.AllocatedAmount
	}
	summary.Remaining = summary.TotalAllocated - summary.TotalSpent

	return summary
}
