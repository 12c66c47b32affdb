package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/remote"
)

type mockProductStore struct {
	products map[int]*model.Product
	nextID   int
	calls    int

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func newMockProductStore() *mockProductStore {
	return &mockProductStore{products: make(map[int]*model.Product), nextID: 1}
}

func (m *mockProductStore) ListProducts(_ context.Context) ([]model.Product, error) {
	m.calls++
	ids := make([]int, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *m.products[id])
	}
	return out, nil
}

func (m *mockProductStore) GetProduct(_ context.Context, id int) (*model.Product, error) {
	m.calls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, remote.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProductStore) CreateProduct(_ context.Context, p *model.Product) (*model.Product, error) {
	m.calls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	cp := *p
	cp.ID = m.nextID
	m.nextID++
	m.products[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *mockProductStore) UpdateProduct(_ context.Context, id int, p *model.Product) (*model.Product, error) {
	m.calls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if _, ok := m.products[id]; !ok {
		return nil, remote.ErrNotFound
	}
	cp := *p
	m.products[id] = &cp
	out := cp
	return &out, nil
}

func (m *mockProductStore) DeleteProduct(_ context.Context, id int) error {
	m.calls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.products[id]; !ok {
		return remote.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func newProductService(store *mockProductStore) (*ProductService, *cache.Cache[model.Product]) {
	products := cache.New("productos", store.ListProducts)
	orders := cache.New("pedidos", func(context.Context) ([]model.Order, error) { return nil, nil })
	details := cache.New("pedido_detalle", func(context.Context) ([]model.OrderDetail, error) { return nil, nil })
	return NewProductService(store, products, orders, details), products
}

func TestProductService_Create_NegativePriceFailsBeforeNetwork(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Taza", Description: "Cerámica", Category: "hogar",
		Price: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, store.calls, "validation failure must issue zero network calls")
}

func TestProductService_Create_MissingNameFailsFast(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "  ", Description: "Cerámica", Category: "hogar",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, store.calls)
}

func TestProductService_Create_RefreshMakesItVisible(t *testing.T) {
	store := newMockProductStore()
	svc, products := newProductService(store)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Taza", Description: "Cerámica", Category: "hogar",
		Price: decimal.NewFromInt(10), Stock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProductAvailable, created.Status)

	snap := products.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, created.ID, snap[0].ID)
}

func TestProductService_Update_MergesOverCurrentRecord(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)

	original := &model.Product{
		ID: 5, Name: "Camiseta", Description: "Algodón",
		Price: decimal.NewFromInt(30), Stock: 10,
		Category: "ropa", Status: model.ProductAvailable,
		Image: "camiseta.png",
	}
	store.products[5] = original

	newPrice := decimal.NewFromInt(25)
	updated, err := svc.Update(context.Background(), 5, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	// Merge law: the partial's keys win, everything else is unchanged.
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Camiseta", updated.Name)
	assert.Equal(t, "Algodón", updated.Description)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, "camiseta.png", updated.Image, "unedited fields must round-trip")

	stored, _ := store.GetProduct(context.Background(), 5)
	assert.True(t, stored.Price.Equal(newPrice))
	assert.Equal(t, "camiseta.png", stored.Image)
}

func TestProductService_Update_NotFound(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)

	name := "x"
	_, err := svc.Update(context.Background(), 404, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Update_NegativePriceRejected(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)
	store.products[1] = &model.Product{ID: 1, Name: "Taza"}

	bad := decimal.NewFromInt(-1)
	_, err := svc.Update(context.Background(), 1, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, store.calls)
}

func TestProductService_Delete_RemovedAfterRefresh(t *testing.T) {
	store := newMockProductStore()
	svc, products := newProductService(store)

	store.products[7] = &model.Product{ID: 7, Name: "Gorra"}
	require.NoError(t, products.Refresh(context.Background()))
	require.Equal(t, 1, products.Len())

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Empty(t, products.Snapshot(), "cache no longer contains the deleted record")
}

func TestProductService_Delete_FailureLeavesCacheUntouched(t *testing.T) {
	store := newMockProductStore()
	svc, products := newProductService(store)

	store.products[7] = &model.Product{ID: 7, Name: "Gorra"}
	require.NoError(t, products.Refresh(context.Background()))

	store.deleteErr = &remote.StatusError{StatusCode: 500, Message: "fallo interno"}
	err := svc.Delete(context.Background(), 7)

	var statusErr *remote.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "fallo interno", statusErr.Message)

	snap := products.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 7, snap[0].ID)
}

func TestProductService_List_VisibleVersusTotal(t *testing.T) {
	store := newMockProductStore()
	svc, _ := newProductService(store)

	store.products[1] = &model.Product{ID: 1, Name: "Camiseta", Status: model.ProductAvailable}
	store.products[2] = &model.Product{ID: 2, Name: "Taza", Status: model.ProductUnavailable}

	resp, err := svc.List(context.Background(), dto.ProductQuery{Status: string(model.ProductAvailable)})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Visible)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 1, resp.Products[0].ID)
}
