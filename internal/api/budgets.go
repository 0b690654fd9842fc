package api

import (
	"context"
	"fmt"

	"budget/internal/core"
)

const budgetsBasePath = "/api/budgets"

// BudgetService wraps the budgets resource. Every operation requires a
// bearer token.
type BudgetService struct {
	client *Client
}

func NewBudgetService(client *Client) *BudgetService {
	return &BudgetService{client: client}
}

func (s *BudgetService) List(ctx context.Context) ([]core.Budget, error) {
	var budgets []core.Budget
	if err := s.client.get(ctx, budgetsBasePath, nil, &budgets, true); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *BudgetService) Get(ctx context.Context, id int64) (*core.Budget, error) {
	var budget core.Budget
	if err := s.client.get(ctx, fmt.Sprintf("%s/%d", budgetsBasePath, id), nil, &budget, true); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *BudgetService) Create(ctx context.Context, budget core.Budget) (*core.Budget, error) {
	var created core.Budget
	if err := s.client.post(ctx, budgetsBasePath, budget, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BudgetService) Update(ctx context.Context, id int64, budget core.Budget) (*core.Budget, error) {
	var updated core.Budget
	if err := s.client.put(ctx, fmt.Sprintf("%s/%d", budgetsBasePath, id), budget, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("%s/%d", budgetsBasePath, id), nil, true)
}
