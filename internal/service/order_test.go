package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/remote"
)

type mockOrderStore struct {
	orders map[int]*model.Order
	calls  int
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: make(map[int]*model.Order)}
}

func (m *mockOrderStore) ListOrders(_ context.Context) ([]model.Order, error) {
	m.calls++
	out := make([]model.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderStore) GetOrder(_ context.Context, id int) (*model.Order, error) {
	m.calls++
	o, ok := m.orders[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderStore) UpdateOrder(_ context.Context, id int, o *model.Order) (*model.Order, error) {
	m.calls++
	if _, ok := m.orders[id]; !ok {
		return nil, remote.ErrNotFound
	}
	cp := *o
	m.orders[id] = &cp
	out := cp
	return &out, nil
}

type mockUserStore struct {
	users map[int]*model.User
}

func (m *mockUserStore) ListUsers(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserStore) GetUser(_ context.Context, id int) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserStore) UpdateUser(_ context.Context, id int, u *model.User) (*model.User, error) {
	cp := *u
	m.users[id] = &cp
	out := cp
	return &out, nil
}

func newOrderService(store *mockOrderStore, users *mockUserStore, details []model.OrderDetail, products []model.Product) (*OrderService, *cache.Cache[model.Order]) {
	orders := cache.New("pedidos", store.ListOrders)
	detailCache := cache.New("pedido_detalle", func(context.Context) ([]model.OrderDetail, error) { return details, nil })
	productCache := cache.New("productos", func(context.Context) ([]model.Product, error) { return products, nil })
	return NewOrderService(store, users, orders, detailCache, productCache), orders
}

func TestOrderService_ChangeStatus_NormalizesDriftedInput(t *testing.T) {
	store := newMockOrderStore()
	store.orders[3] = &model.Order{
		ID: 3, UserID: 8, Status: "pendiente",
		ShippingAddress: "Calle 10", PaymentMethodID: 2,
		Total: decimal.NewFromInt(50),
	}
	svc, _ := newOrderService(store, &mockUserStore{}, nil, nil)

	updated, err := svc.ChangeStatus(context.Background(), 3, "en preparacion")
	require.NoError(t, err)
	assert.Equal(t, string(model.OrderInPreparation), updated.Status)

	// Read-merge-write kept the rest of the record intact.
	assert.Equal(t, "Calle 10", updated.ShippingAddress)
	assert.Equal(t, 2, updated.PaymentMethodID)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(50)))
}

func TestOrderService_ChangeStatus_UnknownStatusFailsBeforeNetwork(t *testing.T) {
	store := newMockOrderStore()
	svc, _ := newOrderService(store, &mockUserStore{}, nil, nil)

	_, err := svc.ChangeStatus(context.Background(), 3, "estado raro")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, store.calls)
}

func TestOrderService_ChangeStatus_NotFound(t *testing.T) {
	store := newMockOrderStore()
	svc, _ := newOrderService(store, &mockUserStore{}, nil, nil)

	_, err := svc.ChangeStatus(context.Background(), 99, "enviado")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_List_SortedByRecency(t *testing.T) {
	store := newMockOrderStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.orders[1] = &model.Order{ID: 1, PlacedAt: base, Status: "pendiente"}
	store.orders[2] = &model.Order{ID: 2, PlacedAt: base.Add(2 * time.Hour), Status: "enviado"}
	store.orders[3] = &model.Order{ID: 3, PlacedAt: base.Add(time.Hour), Status: "pendiente"}
	svc, _ := newOrderService(store, &mockUserStore{}, nil, nil)

	resp, err := svc.List(context.Background(), dto.OrderQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, 2, resp.Orders[0].ID)
	assert.Equal(t, 3, resp.Orders[1].ID)
	assert.Equal(t, 1, resp.Orders[2].ID)
	assert.Equal(t, 3, resp.Visible)
	assert.Equal(t, 3, resp.Total)
}

func TestOrderService_Detail_AggregatesItemsAndCustomer(t *testing.T) {
	store := newMockOrderStore()
	store.orders[10] = &model.Order{ID: 10, UserID: 4, Status: "entregado"}
	users := &mockUserStore{users: map[int]*model.User{
		4: {ID: 4, Name: "Ana", Email: "ana@tienda.co", Password: "secreto"},
	}}
	details := []model.OrderDetail{
		{OrderID: 10, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(20)},
		{OrderID: 11, ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(10), Subtotal: decimal.NewFromInt(10)},
		{OrderID: 10, ProductID: 99, Quantity: 1, UnitPrice: decimal.NewFromInt(5), Subtotal: decimal.NewFromInt(5)},
	}
	products := []model.Product{{ID: 1, Name: "Taza"}}
	svc, _ := newOrderService(store, users, details, products)

	resp, err := svc.Detail(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, model.ClassActive, resp.StatusClass)
	require.Len(t, resp.Items, 2, "only this order's lines")
	assert.Equal(t, "Taza", resp.Items[0].ProductName)
	assert.Equal(t, "Producto #99", resp.Items[1].ProductName)

	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Ana", resp.Customer.Name)
}

func TestOrderService_Detail_MissingCustomerDegrades(t *testing.T) {
	store := newMockOrderStore()
	store.orders[10] = &model.Order{ID: 10, UserID: 999, Status: "pendiente"}
	svc, _ := newOrderService(store, &mockUserStore{users: map[int]*model.User{}}, nil, nil)

	resp, err := svc.Detail(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, resp.Customer)
}
