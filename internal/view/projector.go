// Package view derives display subsets and aggregates from cache snapshots.
// Every function here is pure: inputs are never mutated, and an empty filter
// value always means match-all.
package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jhonstore/admin-console/internal/model"
)

type UserFilter struct {
	Search string
	Role   model.Role
	Status model.UserStatus
}

type OrderFilter struct {
	Search string
	Status string
}

type ProductFilter struct {
	Search   string
	Category string
	Status   model.ProductStatus
}

func ProjectUsers(users []model.User, f UserFilter) []model.User {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if term != "" && !containsFold(term, u.Name, u.Email) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// ProjectOrders filters in source order; callers wanting the canonical
// display order apply SortOrdersByRecency afterwards. The status predicate
// compares normalized values, so drifted spellings in the store still match.
func ProjectOrders(orders []model.Order, f OrderFilter) []model.Order {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	wantStatus := model.NormalizeOrderStatus(f.Status)
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && model.NormalizeOrderStatus(o.Status) != wantStatus {
			continue
		}
		if term != "" && !containsFold(term, strconv.Itoa(o.ID), strconv.Itoa(o.UserID)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func ProjectProducts(products []model.Product, f ProductFilter) []model.Product {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if term != "" && !containsFold(term, p.Name, p.Description, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortOrdersByRecency sorts descending by order date. The sort is stable, so
// orders sharing a timestamp keep their source order.
func SortOrdersByRecency(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlacedAt.After(out[j].PlacedAt)
	})
	return out
}

func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
