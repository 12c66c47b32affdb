package model

import "strings"

type Role string

const (
	RoleCustomer Role = "cliente"
	RoleAdmin    Role = "administrador"
)

type UserStatus string

const (
	UserActive   UserStatus = "activo"
	UserInactive UserStatus = "inactivo"
)

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "disponible"
	ProductUnavailable ProductStatus = "no disponible"
)

// OrderStatus is the canonical status set. The remote store carries drifted
// spellings ("en preparacion", "preparacion", accent variants); every read
// path goes through NormalizeOrderStatus before comparing.
type OrderStatus string

const (
	OrderPending       OrderStatus = "pendiente"
	OrderInPreparation OrderStatus = "en preparación"
	OrderShipped       OrderStatus = "enviado"
	OrderDelivered     OrderStatus = "entregado"
	OrderCancelled     OrderStatus = "cancelado"
	OrderUnknown       OrderStatus = ""
)

// OrderStatuses lists the canonical values accepted for status changes.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderInPreparation, OrderShipped, OrderDelivered, OrderCancelled,
}

// NormalizeOrderStatus folds a raw wire status onto the canonical set.
// Unrecognized non-empty values map to OrderUnknown; callers decide how to
// treat those (the classifier shows them as in-progress).
func NormalizeOrderStatus(raw string) OrderStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return OrderUnknown
	case strings.Contains(s, "entregado"):
		return OrderDelivered
	case strings.Contains(s, "enviado"):
		return OrderShipped
	case strings.Contains(s, "preparaci"):
		return OrderInPreparation
	case strings.Contains(s, "pendiente"):
		return OrderPending
	case strings.Contains(s, "cancelado"):
		return OrderCancelled
	}
	return OrderUnknown
}

// StatusClass is the display category a status badge falls into.
type StatusClass string

const (
	ClassActive     StatusClass = "activo"
	ClassInProgress StatusClass = "preparacion"
	ClassInactive   StatusClass = "inactivo"
)

// ClassifyOrderStatus maps a raw wire status to its display category.
// Pending, in-preparation and shipped orders share the in-progress class.
func ClassifyOrderStatus(raw string) StatusClass {
	if strings.TrimSpace(raw) == "" {
		return ClassInactive
	}
	switch NormalizeOrderStatus(raw) {
	case OrderDelivered:
		return ClassActive
	case OrderCancelled:
		return ClassInactive
	default:
		return ClassInProgress
	}
}
