// Package admin is the typed client for the /users administration
// endpoints. It lives apart from the users model package so the model
// types stay importable by the credential store without dragging the
// API client along.
package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/jrsteele09/go-shop-client/users"
	"github.com/pkg/errors"
)

// Service is the typed client for the /users admin endpoints.
type Service struct {
	client *api.Client
}

// NewService creates an admin users Service on top of the API client.
func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[admin.NewService] client is required")
	}
	return &Service{client: client}, nil
}

type userEnvelope struct {
	User users.User `json:"user"`
}

// UpdateUserData carries the editable profile fields.
type UpdateUserData struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
}

// CreateUserData carries the fields for creating an account on another
// user's behalf.
type CreateUserData struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
}

// Create adds a user account (admin).
func (s *Service) Create(ctx context.Context, data CreateUserData) (*users.User, error) {
	var resp userEnvelope
	if err := s.client.Post(ctx, api.PathUsers, data, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// List returns users page by page (admin).
func (s *Service) List(ctx context.Context, page, limit int) ([]users.User, *api.Pagination, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var list []users.User
	pagination, err := s.client.GetPaged(ctx, api.PathUsers, query, &list)
	if err != nil {
		return nil, nil, err
	}
	return list, pagination, nil
}

// Get fetches a single user by ID (admin).
func (s *Service) Get(ctx context.Context, id string) (*users.User, error) {
	var resp userEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%s", api.PathUsers, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Update edits a user's profile (admin).
func (s *Service) Update(ctx context.Context, id string, data UpdateUserData) (*users.User, error) {
	var resp userEnvelope
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%s", api.PathUsers, id), data, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Delete removes a user (admin).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%s", api.PathUsers, id), nil)
}

// Activate re-enables a disabled account (admin).
func (s *Service) Activate(ctx context.Context, id string) (*users.User, error) {
	var resp userEnvelope
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/%s/activate", api.PathUsers, id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Deactivate disables an account (admin).
func (s *Service) Deactivate(ctx context.Context, id string) (*users.User, error) {
	var resp userEnvelope
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/%s/deactivate", api.PathUsers, id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
