package view

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhonstore/admin-console/internal/model"
)

// UserStats are the dashboard summary cards. They always come from the full,
// unfiltered cache; visible-row counts are a separate number and the two are
// never conflated.
type UserStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Clients int `json:"clients"`
	Admins  int `json:"admins"`
}

func CountUsers(users []model.User) UserStats {
	s := UserStats{Total: len(users)}
	for _, u := range users {
		if u.Status == model.UserActive {
			s.Active++
		}
		switch u.Role {
		case model.RoleCustomer:
			s.Clients++
		case model.RoleAdmin:
			s.Admins++
		}
	}
	return s
}

type ProductSales struct {
	ProductID int             `json:"id_producto"`
	Name      string          `json:"nombre"`
	Units     int             `json:"unidades"`
	Revenue   decimal.Decimal `json:"ingresos"`
}

// SalesByProduct aggregates order details into per-product units and revenue.
// Every product appears, including ones with no sales; the result is sorted
// by revenue descending with ties keeping catalog order.
func SalesByProduct(products []model.Product, details []model.OrderDetail) []ProductSales {
	index := make(map[int]int, len(products))
	out := make([]ProductSales, 0, len(products))
	for i, p := range products {
		index[p.ID] = i
		out = append(out, ProductSales{ProductID: p.ID, Name: p.Name, Revenue: decimal.Zero})
	}
	for _, d := range details {
		i, ok := index[d.ProductID]
		if !ok {
			continue
		}
		out[i].Units += d.Quantity
		out[i].Revenue = out[i].Revenue.Add(d.Subtotal)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// OrdersByStatus buckets orders by canonical status. Unrecognized statuses
// land in the OrderUnknown bucket rather than being dropped.
func OrdersByStatus(orders []model.Order) map[model.OrderStatus]int {
	out := make(map[model.OrderStatus]int)
	for _, o := range orders {
		out[model.NormalizeOrderStatus(o.Status)]++
	}
	return out
}

// DetailsForOrder selects the line items belonging to one order.
func DetailsForOrder(details []model.OrderDetail, orderID int) []model.OrderDetail {
	out := make([]model.OrderDetail, 0, 4)
	for _, d := range details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out
}
