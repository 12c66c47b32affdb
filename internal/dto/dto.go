package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/view"
)

// --- Auth ---

type LoginRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"contrasena" binding:"required"`
}

type SessionResponse struct {
	UserID int        `json:"id"`
	Name   string     `json:"name"`
	Role   model.Role `json:"role"`
}

func ToSessionResponse(s *model.Session) SessionResponse {
	return SessionResponse{UserID: s.UserID, Name: s.Name, Role: s.Role}
}

// --- Users ---

type UserQuery struct {
	Search string `form:"search"`
	Role   string `form:"role"`
	Status string `form:"status"`
}

// UserResponse never carries the stored credential.
type UserResponse struct {
	ID           int              `json:"id_usuario"`
	Name         string           `json:"nombre"`
	Email        string           `json:"correo"`
	Phone        string           `json:"telefono,omitempty"`
	Address      string           `json:"direccion,omitempty"`
	Role         model.Role       `json:"rol"`
	Status       model.UserStatus `json:"estado"`
	RegisteredAt time.Time        `json:"fecha_registro"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID: u.ID, Name: u.Name, Email: u.Email,
		Phone: u.Phone, Address: u.Address,
		Role: u.Role, Status: u.Status, RegisteredAt: u.RegisteredAt,
	}
}

// Visible is the count of rows after filtering; Total is the size of the
// full cache. The two are distinct on purpose.
type UserListResponse struct {
	Users        []UserResponse `json:"users"`
	Visible      int            `json:"visible"`
	Total        int            `json:"total"`
	RefreshError string         `json:"refresh_error,omitempty"`
}

// --- Orders ---

type OrderQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type OrderListResponse struct {
	Orders       []model.Order `json:"orders"`
	Visible      int           `json:"visible"`
	Total        int           `json:"total"`
	RefreshError string        `json:"refresh_error,omitempty"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

type OrderLine struct {
	ProductID   int             `json:"id_producto"`
	ProductName string          `json:"nombre_producto"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderDetailResponse struct {
	Order       model.Order       `json:"order"`
	StatusClass model.StatusClass `json:"status_class"`
	Items       []OrderLine       `json:"items"`
	Customer    *UserResponse     `json:"customer,omitempty"`
}

// --- Products ---

type ProductQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

type ProductListResponse struct {
	Products     []model.Product `json:"products"`
	Visible      int             `json:"visible"`
	Total        int             `json:"total"`
	RefreshError string          `json:"refresh_error,omitempty"`
}

type CreateProductRequest struct {
	Name        string              `json:"nombre" binding:"required"`
	Description string              `json:"descripcion" binding:"required"`
	Price       decimal.Decimal     `json:"precio"`
	Stock       int                 `json:"stock"`
	Category    string              `json:"categoria" binding:"required"`
	Status      model.ProductStatus `json:"estado"`
	Image       string              `json:"imagen"`
}

type UpdateProductRequest struct {
	Name        *string              `json:"nombre"`
	Description *string              `json:"descripcion"`
	Price       *decimal.Decimal     `json:"precio"`
	Stock       *int                 `json:"stock"`
	Category    *string              `json:"categoria"`
	Status      *model.ProductStatus `json:"estado"`
	Image       *string              `json:"imagen"`
}

type SalesStatsResponse struct {
	Sales          []view.ProductSales       `json:"sales"`
	OrdersByStatus map[model.OrderStatus]int `json:"orders_by_status"`
}

func (q UserQuery) Filter() view.UserFilter {
	return view.UserFilter{Search: q.Search, Role: model.Role(q.Role), Status: model.UserStatus(q.Status)}
}

func (q OrderQuery) Filter() view.OrderFilter {
	return view.OrderFilter{Search: q.Search, Status: q.Status}
}

func (q ProductQuery) Filter() view.ProductFilter {
	return view.ProductFilter{Search: q.Search, Category: q.Category, Status: model.ProductStatus(q.Status)}
}
