package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhonstore/admin-console/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestClient_ListUsersDecodesWireFields(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/usuarios", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_usuario":1,"nombre":"Ana","correo":"ana@tienda.co",
			"rol":"administrador","estado":"activo","fecha_registro":"2024-01-10T08:00:00Z"}]`))
	}))

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "Ana", users[0].Name)
	assert.Equal(t, "ana@tienda.co", users[0].Email)
	assert.Equal(t, model.RoleAdmin, users[0].Role)
}

func TestClient_GetProductNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ServerMessageSurfaced(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"stock insuficiente"}`))
	}))

	err := c.DeleteProduct(context.Background(), 7)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "stock insuficiente", statusErr.Message)
}

func TestClient_NonJSONErrorBodyFallsBackToTemplate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	err := c.DeleteProduct(context.Background(), 7)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Contains(t, statusErr.Message, "502")
}

func TestClient_UpdateOrderSendsFullRecord(t *testing.T) {
	var received model.Order
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/pedidos/3", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(received)
	}))

	order := &model.Order{
		ID: 3, UserID: 8,
		PlacedAt:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Total:           decimal.NewFromInt(120),
		Status:          "enviado",
		ShippingAddress: "Calle 10 #4-20",
		PaymentMethodID: 2,
	}
	updated, err := c.UpdateOrder(context.Background(), 3, order)
	require.NoError(t, err)

	// Every field round-trips: the store replaces whole records.
	assert.Equal(t, *order, received)
	assert.Equal(t, *order, *updated)
}

func TestClient_CreateProductPostsAndDecodes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/productos", r.URL.Path)
		var p model.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = 42
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}))

	created, err := c.CreateProduct(context.Background(), &model.Product{Name: "Taza"})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "Taza", created.Name)
}
