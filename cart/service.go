package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/go-shop-client/api"
	"github.com/pkg/errors"
)

// itemCountBuffer is the channel depth handed to item-count observers.
const itemCountBuffer = 16

// Service is the typed client for the /cart endpoints. Every call runs
// through the authenticated transport; the backend resolves the cart
// from the bearer credential.
//
// The service additionally maintains an observable item count so UI
// bindings (navbar badge) can track the cart without polling.
type Service struct {
	client *api.Client

	lock      sync.Mutex
	itemCount int
	countSubs map[int]chan int
	nextID    int
}

// NewService creates a cart Service on top of the API client.
func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[cart.NewService] client is required")
	}
	return &Service{
		client:    client,
		countSubs: make(map[int]chan int),
	}, nil
}

type cartEnvelope struct {
	Cart Cart `json:"cart"`
}

// Get fetches the full cart and updates the observable item count.
func (s *Service) Get(ctx context.Context) (*Cart, error) {
	var resp cartEnvelope
	if err := s.client.Get(ctx, api.PathCart, nil, &resp); err != nil {
		return nil, err
	}
	s.setItemCount(resp.Cart.ItemCount())
	return &resp.Cart, nil
}

// GetSummary fetches the cart totals and updates the observable item
// count.
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := s.client.Get(ctx, api.PathCart+"/summary", nil, &summary); err != nil {
		return nil, err
	}
	s.setItemCount(summary.ItemCount)
	return &summary, nil
}

// AddItem adds a product to the cart.
func (s *Service) AddItem(ctx context.Context, data AddItemData) (*Cart, error) {
	var resp cartEnvelope
	if err := s.client.Post(ctx, api.PathCart+"/items", data, &resp); err != nil {
		return nil, err
	}
	s.setItemCount(resp.Cart.ItemCount())
	return &resp.Cart, nil
}

// UpdateItem changes the quantity of a cart item.
func (s *Service) UpdateItem(ctx context.Context, itemID string, data UpdateItemData) (*Cart, error) {
	var resp cartEnvelope
	if err := s.client.Put(ctx, fmt.Sprintf("%s/items/%s", api.PathCart, itemID), data, &resp); err != nil {
		return nil, err
	}
	s.setItemCount(resp.Cart.ItemCount())
	return &resp.Cart, nil
}

// RemoveItem deletes a cart item, then refreshes the summary so the
// item count observers stay accurate.
func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("%s/items/%s", api.PathCart, itemID), nil); err != nil {
		return err
	}
	if _, err := s.GetSummary(ctx); err != nil {
		// Count refresh is best-effort; the removal itself succeeded.
		return nil
	}
	return nil
}

// Clear empties the whole cart.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.client.Delete(ctx, api.PathCart, nil); err != nil {
		return err
	}
	s.setItemCount(0)
	return nil
}

// ItemCount returns the last observed item count.
func (s *Service) ItemCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.itemCount
}

// SubscribeItemCount registers an observer of the cart item count. The
// returned channel immediately receives the current value, then every
// subsequent change.
func (s *Service) SubscribeItemCount() (<-chan int, func()) {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan int, itemCountBuffer)
	ch <- s.itemCount
	s.countSubs[id] = ch

	cancel := func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		if sub, ok := s.countSubs[id]; ok {
			delete(s.countSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Service) setItemCount(count int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if count == s.itemCount {
		return
	}
	s.itemCount = count
	for _, ch := range s.countSubs {
		select {
		case ch <- count:
		default:
		}
	}
}
