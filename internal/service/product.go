package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/remote"
	"github.com/jhonstore/admin-console/internal/view"
)

type ProductService struct {
	store    remote.ProductStore
	products *cache.Cache[model.Product]
	orders   *cache.Cache[model.Order]
	details  *cache.Cache[model.OrderDetail]
}

func NewProductService(
	store remote.ProductStore,
	products *cache.Cache[model.Product],
	orders *cache.Cache[model.Order],
	details *cache.Cache[model.OrderDetail],
) *ProductService {
	return &ProductService{store: store, products: products, orders: orders, details: details}
}

func (s *ProductService) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	if err := ensureLoaded(ctx, s.products); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	all := s.products.Snapshot()
	visible := view.ProjectProducts(all, q.Filter())
	resp := &dto.ProductListResponse{Products: visible, Visible: len(visible), Total: len(all)}
	if err := s.products.LastErr(); err != nil {
		resp.RefreshError = err.Error()
	}
	return resp, nil
}

// Get fetches the current record straight from the store; edit views need
// the latest server truth, not the cached copy.
func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Create validates locally before any network call.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	if err := validateProduct(req.Name, req.Description, req.Category, req.Price.IsNegative(), req.Stock); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = model.ProductAvailable
	}
	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    strings.TrimSpace(req.Category),
		Status:      status,
		Image:       strings.TrimSpace(req.Image),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.store.CreateProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	// Refresh failure is recorded on the cache and surfaced by the next read.
	_ = s.products.Refresh(ctx)
	return created, nil
}

// Update fetches the current record, merges the partial payload over it and
// submits the full merged record. The remote store replaces whole records,
// so skipping the read would drop every field the form does not carry.
func (s *ProductService) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*model.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	current, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	merged := *current
	if req.Name != nil {
		merged.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}
	if req.Stock != nil {
		merged.Stock = *req.Stock
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}

	updated, err := s.store.UpdateProduct(ctx, id, &merged)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.products.Refresh(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.products.Refresh(ctx)
	return nil
}

// SalesStats aggregates catalog-wide sales from the order detail lines.
func (s *ProductService) SalesStats(ctx context.Context) (*dto.SalesStatsResponse, error) {
	if err := ensureLoaded(ctx, s.products); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := ensureLoaded(ctx, s.details); err != nil {
		return nil, fmt.Errorf("load order details: %w", err)
	}
	if err := ensureLoaded(ctx, s.orders); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return &dto.SalesStatsResponse{
		Sales:          view.SalesByProduct(s.products.Snapshot(), s.details.Snapshot()),
		OrdersByStatus: view.OrdersByStatus(s.orders.Snapshot()),
	}, nil
}

func validateProduct(name, description, category string, negativePrice bool, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if negativePrice {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	return nil
}

// ensureLoaded performs the first fetch for a cache that has never been
// refreshed. Later reads serve the snapshot and let the periodic refresher
// keep it current.
func ensureLoaded[T any](ctx context.Context, c *cache.Cache[T]) error {
	if c.LastRefresh().IsZero() {
		return c.Refresh(ctx)
	}
	return nil
}
