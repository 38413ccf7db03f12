package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/api/middleware"
	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	ordersvc "nexmart-chat-backend/internal/service/order"
	shoppersvc "nexmart-chat-backend/internal/service/shopper"
)

type testOrderRepo struct {
	mu     sync.Mutex
	orders map[string]model.OrderItem
}

func newTestOrderRepo() *testOrderRepo {
	return &testOrderRepo{orders: make(map[string]model.OrderItem)}
}

func (m *testOrderRepo) ListOrdersByShopper(ctx context.Context, shopperID string) ([]model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := make([]model.OrderItem, 0)
	for _, order := range m.orders {
		if order.ShopperID == shopperID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *testOrderRepo) GetOrder(ctx context.Context, shopperID, orderID string) (model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[model.OrderPK(shopperID, orderID)]
	if !ok {
		return model.OrderItem{}, ordersvc.ErrNotFound
	}
	return order, nil
}

func (m *testOrderRepo) PutOrder(ctx context.Context, order model.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.PK] = order
	return nil
}

func (m *testOrderRepo) MarkOrderCancelled(ctx context.Context, shopperID, orderID, cancelledDate string) (model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pk := model.OrderPK(shopperID, orderID)
	order, ok := m.orders[pk]
	if !ok {
		return model.OrderItem{}, ordersvc.ErrNotFound
	}
	order.Status = model.OrderStatusCancelled
	order.CancelledDate = cancelledDate
	m.orders[pk] = order
	return order, nil
}

func setupOrderHandler(t *testing.T, orderRepo *testOrderRepo, shopperSvc *shoppersvc.Service) (http.Handler, func()) {
	t.Helper()

	paths := OrderPaths{OrderPrefix: "/api/client/v1/orders/"}
	orderEndpoints := NewOrderEndpointsWithServices(ordersvc.NewWithRepository(orderRepo, fixedTime), shopperSvc, paths)

	server, cleanup := newTestServer(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/client/v1/orders", server.MakeHTTPHandleFunc(orderEndpoints.Orders, middleware.ValidateShopperJWT))
	mux.HandleFunc("/api/client/v1/orders/recent", server.MakeHTTPHandleFunc(orderEndpoints.RecentOrder, middleware.ValidateShopperJWT))
	mux.HandleFunc(paths.OrderPrefix, server.MakeHTTPHandleFunc(orderEndpoints.OrderOps, middleware.ValidateShopperJWT))

	return mux, cleanup
}

func registerTestShopper(t *testing.T, svc *shoppersvc.Service) (string, string) {
	t.Helper()
	result, err := svc.Register(context.Background(), shoppersvc.RegisterParams{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register shopper: %v", err)
	}
	return result.Shopper.ShopperID, result.Tokens.AccessToken
}

func seedTestOrders(t *testing.T, repo *testOrderRepo, shopperID string) {
	t.Helper()
	orders := []model.OrderItem{
		{OrderID: "ORD-1001", Status: model.OrderStatusDelivered, CreatedDate: "2025-07-18T09:30:00Z"},
		{OrderID: "ORD-1002", Status: model.OrderStatusShipped, CreatedDate: "2025-08-20T16:45:00Z"},
		{OrderID: "ORD-1003", Status: model.OrderStatusPending, CreatedDate: "2025-08-28T19:05:00Z"},
	}
	for _, order := range orders {
		order.ShopperID = shopperID
		order.PK = model.OrderPK(shopperID, order.OrderID)
		if err := repo.PutOrder(context.Background(), order); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
}

func TestOrderEndpoints(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)
	orderRepo := newTestOrderRepo()

	handler, cleanup := setupOrderHandler(t, orderRepo, shopperSvc)
	defer cleanup()

	shopperID, token := registerTestShopper(t, shopperSvc)
	seedTestOrders(t, orderRepo, shopperID)
	auth := map[string]string{"Authorization": "Bearer " + token}

	listed := doJSONRequest[dto.ListOrdersResponse](t, handler, http.MethodGet, "/api/client/v1/orders", nil, auth, http.StatusOK)
	if len(listed.Orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(listed.Orders))
	}
	if listed.Orders[0].OrderID != "ORD-1003" {
		t.Fatalf("expected newest first, got %s", listed.Orders[0].OrderID)
	}

	recent := doJSONRequest[dto.OrderResponse](t, handler, http.MethodGet, "/api/client/v1/orders/recent", nil, auth, http.StatusOK)
	if recent.OrderID != "ORD-1003" {
		t.Fatalf("expected most recent ORD-1003, got %s", recent.OrderID)
	}

	cancelled := doJSONRequest[dto.OrderResponse](t, handler, http.MethodPost, "/api/client/v1/orders/ORD-1003/cancel", nil, auth, http.StatusOK)
	if cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}

	doJSONRequest[api.ApiError](t, handler, http.MethodPost, "/api/client/v1/orders/ORD-1002/cancel", nil, auth, http.StatusConflict)
}

func TestOrderEndpointsRequireToken(t *testing.T) {
	setupTestJWT(t)
	shopperSvc := shoppersvc.NewWithRepository(newTestShopperRepo(), fixedTime)

	handler, cleanup := setupOrderHandler(t, newTestOrderRepo(), shopperSvc)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/client/v1/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
