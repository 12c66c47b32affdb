package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/remote"
	"github.com/jhonstore/admin-console/internal/view"
)

type OrderService struct {
	store    remote.OrderStore
	users    remote.UserStore
	orders   *cache.Cache[model.Order]
	details  *cache.Cache[model.OrderDetail]
	products *cache.Cache[model.Product]
}

func NewOrderService(
	store remote.OrderStore,
	users remote.UserStore,
	orders *cache.Cache[model.Order],
	details *cache.Cache[model.OrderDetail],
	products *cache.Cache[model.Product],
) *OrderService {
	return &OrderService{store: store, users: users, orders: orders, details: details, products: products}
}

func (s *OrderService) List(ctx context.Context, q dto.OrderQuery) (*dto.OrderListResponse, error) {
	if err := ensureLoaded(ctx, s.orders); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	all := s.orders.Snapshot()
	visible := view.SortOrdersByRecency(view.ProjectOrders(all, q.Filter()))
	resp := &dto.OrderListResponse{Orders: visible, Visible: len(visible), Total: len(all)}
	if err := s.orders.LastErr(); err != nil {
		resp.RefreshError = err.Error()
	}
	return resp, nil
}

// Detail gathers everything the order detail view needs: the order itself,
// its line items with product names, and the customer. A missing customer
// record degrades to an order without customer info rather than failing.
func (s *OrderService) Detail(ctx context.Context, id int) (*dto.OrderDetailResponse, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := ensureLoaded(ctx, s.details); err != nil {
		return nil, fmt.Errorf("load order details: %w", err)
	}
	if err := ensureLoaded(ctx, s.products); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	names := make(map[int]string)
	for _, p := range s.products.Snapshot() {
		names[p.ID] = p.Name
	}

	var items []dto.OrderLine
	for _, d := range view.DetailsForOrder(s.details.Snapshot(), id) {
		name, ok := names[d.ProductID]
		if !ok {
			name = fmt.Sprintf("Producto #%d", d.ProductID)
		}
		items = append(items, dto.OrderLine{
			ProductID:   d.ProductID,
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
		})
	}

	resp := &dto.OrderDetailResponse{
		Order:       *order,
		StatusClass: model.ClassifyOrderStatus(order.Status),
		Items:       items,
	}
	if user, err := s.users.GetUser(ctx, order.UserID); err == nil {
		u := dto.ToUserResponse(user)
		resp.Customer = &u
	}
	return resp, nil
}

// ChangeStatus is a read-merge-write: the full current record is fetched,
// only the status is replaced, and the whole record goes back in one PUT.
func (s *OrderService) ChangeStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	canonical := model.NormalizeOrderStatus(status)
	if canonical == model.OrderUnknown {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	current, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	merged := *current
	merged.Status = string(canonical)

	updated, err := s.store.UpdateOrder(ctx, id, &merged)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	_ = s.orders.Refresh(ctx)
	return updated, nil
}
