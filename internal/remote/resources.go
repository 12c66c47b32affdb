package remote

import (
	"context"

	"github.com/jhonstore/admin-console/internal/model"
)

const (
	resourceUsers        = "usuarios"
	resourceOrders       = "pedidos"
	resourceOrderDetails = "pedido_detalle"
	resourceProducts     = "productos"
)

type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	UpdateUser(ctx context.Context, id int, user *model.User) (*model.User, error)
}

type OrderStore interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int, order *model.Order) (*model.Order, error)
}

type OrderDetailStore interface {
	ListOrderDetails(ctx context.Context) ([]model.OrderDetail, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, c, resourceUsers)
}

func (c *Client) GetUser(ctx context.Context, id int) (*model.User, error) {
	return get[model.User](ctx, c, resourceUsers, id)
}

func (c *Client) UpdateUser(ctx context.Context, id int, user *model.User) (*model.User, error) {
	return replace(ctx, c, resourceUsers, id, user)
}

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	return list[model.Order](ctx, c, resourceOrders)
}

func (c *Client) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	return get[model.Order](ctx, c, resourceOrders, id)
}

func (c *Client) UpdateOrder(ctx context.Context, id int, order *model.Order) (*model.Order, error) {
	return replace(ctx, c, resourceOrders, id, order)
}

func (c *Client) ListOrderDetails(ctx context.Context) ([]model.OrderDetail, error) {
	return list[model.OrderDetail](ctx, c, resourceOrderDetails)
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	return list[model.Product](ctx, c, resourceProducts)
}

func (c *Client) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return get[model.Product](ctx, c, resourceProducts, id)
}

func (c *Client) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return create(ctx, c, resourceProducts, product)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, product *model.Product) (*model.Product, error) {
	return replace(ctx, c, resourceProducts, id, product)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return remove(ctx, c, resourceProducts, id)
}
