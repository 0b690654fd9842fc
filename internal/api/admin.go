package api

import (
	"context"
	"encoding/json"
	"fmt"

	"budget/internal/core"
)

const adminBasePath = "/api/admin"

// AdminService wraps the admin resource: dashboard stats, user management,
// category management and analytics. Every operation requires a bearer token;
// authorization itself is enforced server-side.
type AdminService struct {
	client *Client
}

func NewAdminService(client *Client) *AdminService {
	return &AdminService{client: client}
}

// AdminUser is a managed user row. The status field is whatever the backend
// reports; the client only displays it.
type AdminUser struct {
	core.User
	Active bool `json:"active"`
}

type adminResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

// DashboardStats returns the admin dashboard aggregate payload as-is.
func (s *AdminService) DashboardStats(ctx context.Context) (json.RawMessage, error) {
	var stats json.RawMessage
	if err := s.client.get(ctx, adminBasePath+"/dashboard-stats", nil, &stats, true); err != nil {
		return nil, err
	}
	return stats, nil
}

// Analytics returns the analytics payload as-is.
func (s *AdminService) Analytics(ctx context.Context) (json.RawMessage, error) {
	var analytics json.RawMessage
	if err := s.client.get(ctx, adminBasePath+"/analytics", nil, &analytics, true); err != nil {
		return nil, err
	}
	return analytics, nil
}

func (s *AdminService) Users(ctx context.Context) ([]AdminUser, error) {
	var users []AdminUser
	if err := s.client.get(ctx, adminBasePath+"/users", nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) User(ctx context.Context, id int64) (*AdminUser, error) {
	var user AdminUser
	if err := s.client.get(ctx, fmt.Sprintf("%s/users/%d", adminBasePath, id), nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, update ProfileUpdate) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := s.client.put(ctx, fmt.Sprintf("%s/users/%d", adminBasePath, id), update, &resp, true); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AdminService) SuspendUser(ctx context.Context, id int64) error {
	return s.client.put(ctx, fmt.Sprintf("%s/users/%d/suspend", adminBasePath, id), nil, nil, true)
}

func (s *AdminService) ActivateUser(ctx context.Context, id int64) error {
	return s.client.put(ctx, fmt.Sprintf("%s/users/%d/activate", adminBasePath, id), nil, nil, true)
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("%s/users/%d", adminBasePath, id), nil, true)
}

func (s *AdminService) ResetUserPassword(ctx context.Context, id int64, newPassword string) error {
	return s.client.post(ctx, fmt.Sprintf("%s/users/%d/reset-password", adminBasePath, id),
		adminResetPasswordRequest{NewPassword: newPassword}, nil, true)
}

func (s *AdminService) Categories(ctx context.Context) ([]core.Category, error) {
	var categories []core.Category
	if err := s.client.get(ctx, adminBasePath+"/categories", nil, &categories, true); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *AdminService) CreateCategory(ctx context.Context, name string) (*core.Category, error) {
	var created core.Category
	if err := s.client.post(ctx, adminBasePath+"/categories", categoryRequest{Name: name}, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id int64, name string) (*core.Category, error) {
	var updated core.Category
	if err := s.client.put(ctx, fmt.Sprintf("%s/categories/%d", adminBasePath, id), categoryRequest{Name: name}, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("%s/categories/%d", adminBasePath, id), nil, true)
}
