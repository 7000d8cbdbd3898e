package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jrsteele09/go-shop-client/api"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// listCacheTTL bounds how long a product or category listing is served
// from memory before the backend is consulted again. Writes purge the
// cache, so only cross-client changes can be observed late.
const listCacheTTL = 30 * time.Second

// Service is the typed client for the /products and /categories
// endpoints. Read endpoints are public; create/update/delete require an
// admin session and are rejected server-side otherwise.
type Service struct {
	client *api.Client
	cache  *gocache.Cache
}

// NewService creates a catalog Service on top of the API client.
func NewService(client *api.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[catalog.NewService] client is required")
	}
	return &Service{
		client: client,
		cache:  gocache.New(listCacheTTL, time.Minute),
	}, nil
}

// ProductList is a page of products.
type ProductList struct {
	Products   []Product
	Pagination *api.Pagination
}

type productEnvelope struct {
	Product Product `json:"product"`
}

type categoryEnvelope struct {
	Category Category `json:"category"`
}

type categoriesEnvelope struct {
	Categories []Category `json:"categories"`
}

// Products lists products matching the filters, serving repeated
// identical listings from a short-lived cache.
func (s *Service) Products(ctx context.Context, filters ProductFilters) (*ProductList, error) {
	query := filters.query()
	cacheKey := "products?" + query.Encode()
	if cached, ok := s.cache.Get(cacheKey); ok {
		list := cached.(ProductList)
		return &list, nil
	}

	var products []Product
	pagination, err := s.client.GetPaged(ctx, api.PathProducts, query, &products)
	if err != nil {
		return nil, err
	}
	list := ProductList{Products: products, Pagination: pagination}
	s.cache.SetDefault(cacheKey, list)
	return &list, nil
}

// Product fetches a single product by ID.
func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	var resp productEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%s", api.PathProducts, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// ProductBySKU fetches a single product by SKU.
func (s *Service) ProductBySKU(ctx context.Context, sku string) (*Product, error) {
	var resp productEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/sku/%s", api.PathProducts, sku), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

// CreateProduct creates a product (admin).
func (s *Service) CreateProduct(ctx context.Context, data ProductData) (*Product, error) {
	var resp productEnvelope
	if err := s.client.Post(ctx, api.PathProducts, data, &resp); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return &resp.Product, nil
}

// UpdateProduct updates a product (admin).
func (s *Service) UpdateProduct(ctx context.Context, id string, data ProductData) (*Product, error) {
	var resp productEnvelope
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%s", api.PathProducts, id), data, &resp); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return &resp.Product, nil
}

// UpdateStock adjusts a product's stock level (admin).
func (s *Service) UpdateStock(ctx context.Context, id string, data UpdateStockData) (*Product, error) {
	var resp productEnvelope
	if err := s.client.Patch(ctx, fmt.Sprintf("%s/%s/stock", api.PathProducts, id), data, &resp); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return &resp.Product, nil
}

// DeleteProduct removes a product (admin).
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("%s/%s", api.PathProducts, id), nil); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// Categories lists all categories.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	const cacheKey = "categories"
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]Category), nil
	}

	var resp categoriesEnvelope
	if err := s.client.Get(ctx, api.PathCategories, nil, &resp); err != nil {
		return nil, err
	}
	s.cache.SetDefault(cacheKey, resp.Categories)
	return resp.Categories, nil
}

// CategoryTree lists categories nested by parent.
func (s *Service) CategoryTree(ctx context.Context) ([]Category, error) {
	var resp categoriesEnvelope
	if err := s.client.Get(ctx, api.PathCategories+"/tree", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Category fetches a single category by ID.
func (s *Service) Category(ctx context.Context, id string) (*Category, error) {
	var resp categoryEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%s", api.PathCategories, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

// CategoryBySlug fetches a single category by slug.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var resp categoryEnvelope
	if err := s.client.Get(ctx, fmt.Sprintf("%s/slug/%s", api.PathCategories, slug), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Category, nil
}

// CreateCategory creates a category (admin).
func (s *Service) CreateCategory(ctx context.Context, data CategoryData) (*Category, error) {
	var resp categoryEnvelope
	if err := s.client.Post(ctx, api.PathCategories, data, &resp); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return &resp.Category, nil
}

// UpdateCategory updates a category (admin).
func (s *Service) UpdateCategory(ctx context.Context, id string, data CategoryData) (*Category, error) {
	var resp categoryEnvelope
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%s", api.PathCategories, id), data, &resp); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return &resp.Category, nil
}

// DeleteCategory removes a category (admin).
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("%s/%s", api.PathCategories, id), nil); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

// query builds the backend's expected query parameters; the backend
// expects 'categoryId', not 'category'.
func (f ProductFilters) query() url.Values {
	query := url.Values{}
	if f.CategoryID != "" {
		query.Set("categoryId", f.CategoryID)
	}
	if f.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.InStock != nil {
		query.Set("inStock", strconv.FormatBool(*f.InStock))
	}
	if f.SortBy != "" {
		query.Set("sortBy", f.SortBy)
	}
	if f.Page > 0 {
		query.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		query.Set("limit", strconv.Itoa(f.Limit))
	}
	return query
}
