package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The remote store serializes money fields as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// User is a record from the usuarios resource. Fields the console never edits
// (password, registration date) still round-trip on updates, because the
// remote store does whole-record replacement.
type User struct {
	ID           int        `json:"id_usuario"`
	Name         string     `json:"nombre"`
	Email        string     `json:"correo"`
	Password     string     `json:"contrasena"`
	Phone        string     `json:"telefono,omitempty"`
	Address      string     `json:"direccion,omitempty"`
	Role         Role       `json:"rol"`
	Status       UserStatus `json:"estado"`
	RegisteredAt time.Time  `json:"fecha_registro"`
}

// Order keeps Status as the raw wire string; the store holds drifted
// spellings, so normalization happens at read time via NormalizeOrderStatus.
type Order struct {
	ID              int             `json:"id_pedido"`
	UserID          int             `json:"id_usuario"`
	PlacedAt        time.Time       `json:"fecha_pedido"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"estado"`
	ShippingAddress string          `json:"direccion_envio"`
	PaymentMethodID int             `json:"id_metodo"`
}

type OrderDetail struct {
	OrderID   int             `json:"id_pedido"`
	ProductID int             `json:"id_producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Product struct {
	ID          int             `json:"id_producto"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Category    string          `json:"categoria"`
	Status      ProductStatus   `json:"estado"`
	Image       string          `json:"imagen,omitempty"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
}

// Session is the authenticated-session record persisted by the session store.
// Timestamps are epoch milliseconds for compatibility with records written by
// earlier console versions.
type Session struct {
	UserID    int    `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(s.CreatedAt))
}
