package api

import (
	"context"
	"fmt"
	"net/url"

	"budget/internal/core"
)

const expensesBasePath = "/api/expenses"

// ExpenseService wraps the expenses resource. Every operation requires a
// bearer token.
type ExpenseService struct {
	client *Client
}

func NewExpenseService(client *Client) *ExpenseService {
	return &ExpenseService{client: client}
}

// List returns the caller's expenses. params are passed through as query
// parameters; the backend owns filtering semantics.
func (s *ExpenseService) List(ctx context.Context, params url.Values) ([]core.Expense, error) {
	var expenses []core.Expense
	if err := s.client.get(ctx, expensesBasePath, params, &expenses, true); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (*core.Expense, error) {
	var expense core.Expense
	if err := s.client.get(ctx, fmt.Sprintf("%s/%d", expensesBasePath, id), nil, &expense, true); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) Create(ctx context.Context, expense core.Expense) (*core.Expense, error) {
	var created core.Expense
	if err := s.client.post(ctx, expensesBasePath, expense, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ExpenseService) Update(ctx context.Context, id int64, expense core.Expense) (*core.Expense, error) {
	var updated core.Expense
	if err := s.client.put(ctx, fmt.Sprintf("%s/%d", expensesBasePath, id), expense, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("%s/%d", expensesBasePath, id), nil, true)
}
