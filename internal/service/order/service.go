package order

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/model"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeConflict   ErrorCode = "conflict"
	ErrorCodeInternal   ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func New(db *database.Database) *Service {
	return &Service{
		repo: NewDynamoRepository(db),
		now:  time.Now,
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

// ListOrders returns the shopper's orders newest first. Recency is decided
// by created date with the order id as tie-break so the ordering is stable
// for identical snapshots.
func (s *Service) ListOrders(ctx context.Context, shopperID string) ([]model.OrderItem, error) {
	shopperID = strings.TrimSpace(shopperID)
	if shopperID == "" {
		return nil, newError(ErrorCodeValidation, "shopperId is required", nil)
	}

	orders, err := s.repo.ListOrdersByShopper(ctx, shopperID)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list orders", err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedDate != orders[j].CreatedDate {
			return orders[i].CreatedDate > orders[j].CreatedDate
		}
		return orders[i].OrderID > orders[j].OrderID
	})

	return orders, nil
}

// MostRecentOrder reports the newest order for the shopper, found=false when
// none exist.
func (s *Service) MostRecentOrder(ctx context.Context, shopperID string) (model.OrderItem, bool, error) {
	orders, err := s.ListOrders(ctx, shopperID)
	if err != nil {
		return model.OrderItem{}, false, err
	}
	if len(orders) == 0 {
		return model.OrderItem{}, false, nil
	}
	return orders[0], true, nil
}

// CancelOrder flips a pending order to cancelled and stamps the cancellation
// date. Shipped and delivered orders cannot be cancelled.
func (s *Service) CancelOrder(ctx context.Context, shopperID, orderID string) (model.OrderItem, error) {
	shopperID = strings.TrimSpace(shopperID)
	orderID = strings.TrimSpace(orderID)
	if shopperID == "" || orderID == "" {
		return model.OrderItem{}, newError(ErrorCodeValidation, "shopperId and orderId are required", nil)
	}

	existing, err := s.repo.GetOrder(ctx, shopperID, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.OrderItem{}, newError(ErrorCodeNotFound, "order not found", err)
		}
		return model.OrderItem{}, newError(ErrorCodeInternal, "failed to load order", err)
	}

	if existing.Status != model.OrderStatusPending {
		return model.OrderItem{}, newError(ErrorCodeConflict, "only pending orders can be cancelled", nil)
	}

	cancelledAt := s.now().UTC().Format(time.RFC3339)
	updated, err := s.repo.MarkOrderCancelled(ctx, shopperID, orderID, cancelledAt)
	if err != nil {
		return model.OrderItem{}, newError(ErrorCodeInternal, "failed to cancel order", err)
	}
	return updated, nil
}
