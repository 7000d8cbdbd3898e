package orders

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/pkg/errors"
)

// Service is the typed client for the /orders endpoints. Listing
// returns the caller's own orders; admins see all orders and may update
// order status.
type Service struct {
	client *api.Client
}

// NewService creates an orders Service on top of the API client.
func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[orders.NewService] client is required")
	}
	return &Service{client: client}, nil
}

type orderEnvelope struct {
	Order Order `json:"order"`
}

type statusUpdate struct {
	Status Status `json:"status"`
}

// Create places an order from the active cart (checkout).
func (s *Service) Create(ctx context.Context, data CreateOrderData) (*Order, error) {
	var resp orderEnvelope
	if err := s.client.Post(ctx, api.PathOrders, data, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// List returns orders matching the filters, with pagination metadata.
func (s *Service) List(ctx context.Context, filters Filters) ([]Order, *api.Pagination, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		query.Set("limit", strconv.Itoa(filters.Limit))
	}

	var orders []Order
	pagination, err := s.client.GetPaged(ctx, api.PathOrders, query, &orders)
	if err != nil {
		return nil, nil, err
	}
	return orders, pagination, nil
}

// Get fetches a single order by ID.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	var resp orderEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%s", api.PathOrders, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// UpdateStatus moves an order to a new status (admin).
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	var resp orderEnvelope
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/%s/status", api.PathOrders, id), statusUpdate{Status: status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// Cancel cancels an order.
func (s *Service) Cancel(ctx context.Context, id string) (*Order, error) {
	var resp orderEnvelope
	if err := s.client.Post(ctx, fmt.Sprintf("%s/%s/cancel", api.PathOrders, id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}
