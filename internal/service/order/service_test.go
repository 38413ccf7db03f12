package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"nexmart-chat-backend/internal/model"
)

type memoryRepository struct {
	mu     sync.Mutex
	orders map[string]model.OrderItem
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{orders: make(map[string]model.OrderItem)}
}

func (m *memoryRepository) ListOrdersByShopper(ctx context.Context, shopperID string) ([]model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]model.OrderItem, 0)
	for _, o := range m.orders {
		if o.ShopperID == shopperID {
			items = append(items, o)
		}
	}
	return items, nil
}

func (m *memoryRepository) GetOrder(ctx context.Context, shopperID, orderID string) (model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[model.OrderPK(shopperID, orderID)]
	if !ok {
		return model.OrderItem{}, ErrNotFound
	}
	return order, nil
}

func (m *memoryRepository) PutOrder(ctx context.Context, order model.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.PK] = order
	return nil
}

func (m *memoryRepository) MarkOrderCancelled(ctx context.Context, shopperID, orderID, cancelledDate string) (model.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pk := model.OrderPK(shopperID, orderID)
	order, ok := m.orders[pk]
	if !ok {
		return model.OrderItem{}, ErrNotFound
	}
	order.Status = model.OrderStatusCancelled
	order.CancelledDate = cancelledDate
	m.orders[pk] = order
	return order, nil
}

func seedOrders(t *testing.T, repo *memoryRepository, orders ...model.OrderItem) {
	t.Helper()
	for _, o := range orders {
		o.PK = model.OrderPK(o.ShopperID, o.OrderID)
		if err := repo.PutOrder(context.Background(), o); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
}

func TestMostRecentOrderPicksNewestByDate(t *testing.T) {
	repo := newMemoryRepository()
	seedOrders(t, repo,
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1001", Status: model.OrderStatusDelivered, CreatedDate: "2025-07-01T10:00:00Z"},
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1003", Status: model.OrderStatusPending, CreatedDate: "2025-08-25T10:00:00Z"},
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1002", Status: model.OrderStatusShipped, CreatedDate: "2025-08-10T10:00:00Z"},
	)
	service := NewWithRepository(repo, nil)

	order, found, err := service.MostRecentOrder(context.Background(), "s1")
	if err != nil {
		t.Fatalf("most recent order: %v", err)
	}
	if !found {
		t.Fatal("expected an order to be found")
	}
	if order.OrderID != "ORD-1003" {
		t.Fatalf("expected newest order ORD-1003, got %s", order.OrderID)
	}
}

func TestMostRecentOrderDeterministicTieBreak(t *testing.T) {
	repo := newMemoryRepository()
	seedOrders(t, repo,
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1001", CreatedDate: "2025-08-10T10:00:00Z"},
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1002", CreatedDate: "2025-08-10T10:00:00Z"},
	)
	service := NewWithRepository(repo, nil)

	for i := 0; i < 5; i++ {
		order, _, err := service.MostRecentOrder(context.Background(), "s1")
		if err != nil {
			t.Fatalf("most recent order: %v", err)
		}
		if order.OrderID != "ORD-1002" {
			t.Fatalf("tie-break not deterministic, got %s", order.OrderID)
		}
	}
}

func TestMostRecentOrderNoOrders(t *testing.T) {
	service := NewWithRepository(newMemoryRepository(), nil)

	_, found, err := service.MostRecentOrder(context.Background(), "s1")
	if err != nil {
		t.Fatalf("most recent order: %v", err)
	}
	if found {
		t.Fatal("expected no order for an empty shopper history")
	}
}

func TestCancelOrder(t *testing.T) {
	repo := newMemoryRepository()
	seedOrders(t, repo,
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1001", Status: model.OrderStatusPending, CreatedDate: "2025-08-10T10:00:00Z"},
		model.OrderItem{ShopperID: "s1", OrderID: "ORD-1002", Status: model.OrderStatusShipped, CreatedDate: "2025-08-12T10:00:00Z"},
	)
	service := NewWithRepository(repo, func() time.Time {
		return time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC)
	})

	updated, err := service.CancelOrder(context.Background(), "s1", "ORD-1001")
	if err != nil {
		t.Fatalf("cancel order: %v", err)
	}
	if updated.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", updated.Status)
	}
	if updated.CancelledDate != "2025-08-30T12:00:00Z" {
		t.Fatalf("cancelledDate = %q, want the clock's timestamp", updated.CancelledDate)
	}

	_, err = service.CancelOrder(context.Background(), "s1", "ORD-1002")
	var svcErr *Error
	if !asError(err, &svcErr) || svcErr.Code != ErrorCodeConflict {
		t.Fatalf("expected conflict cancelling a shipped order, got %v", err)
	}

	_, err = service.CancelOrder(context.Background(), "s1", "ORD-9999")
	if !asError(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
