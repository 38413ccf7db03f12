package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	ordersvc "nexmart-chat-backend/internal/service/order"
	shoppersvc "nexmart-chat-backend/internal/service/shopper"
)

type OrderEndpoints interface {
	Orders(http.ResponseWriter, *http.Request) error
	RecentOrder(http.ResponseWriter, *http.Request) error
	OrderOps(http.ResponseWriter, *http.Request) error
}

type OrderPaths struct {
	OrderPrefix string
}

type orderEndpoints struct {
	service *ordersvc.Service
	shopper *shoppersvc.Service
	paths   OrderPaths
}

func NewOrderEndpoints(db *database.Database, paths OrderPaths) OrderEndpoints {
	return &orderEndpoints{
		service: ordersvc.New(db),
		shopper: shoppersvc.New(db),
		paths:   paths,
	}
}

func NewOrderEndpointsWithServices(service *ordersvc.Service, shopper *shoppersvc.Service, paths OrderPaths) OrderEndpoints {
	return &orderEndpoints{
		service: service,
		shopper: shopper,
		paths:   paths,
	}
}

func (h *orderEndpoints) Orders(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListOrders,
	})
}

func (h *orderEndpoints) RecentOrder(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleRecentOrder,
	})
}

func (h *orderEndpoints) OrderOps(w http.ResponseWriter, r *http.Request) error {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, h.paths.OrderPrefix), "/")
	segments := strings.Split(rest, "/")
	if len(segments) == 2 && segments[0] != "" && segments[1] == "cancel" {
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleCancelOrder(w, r, segments[0])
			},
		})
	}
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Message:    "Not found",
		ErrorLog:   fmt.Errorf("unknown order path: %s", r.URL.Path),
	}
}

func (h *orderEndpoints) handleListOrders(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(r.Context(), identity.ShopperID)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusOK, dto.ListOrdersResponse{Orders: toOrderResponses(orders)})
}

func (h *orderEndpoints) handleRecentOrder(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	order, found, err := h.service.MostRecentOrder(r.Context(), identity.ShopperID)
	if err != nil {
		return h.serviceError(err)
	}
	if !found {
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    "No orders found",
			ErrorLog:   fmt.Errorf("no orders for shopper %s", identity.ShopperID),
		}
	}

	return WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *orderEndpoints) handleCancelOrder(w http.ResponseWriter, r *http.Request, orderID string) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	order, err := h.service.CancelOrder(r.Context(), identity.ShopperID, orderID)
	if err != nil {
		return h.serviceError(err)
	}

	return WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *orderEndpoints) identity(r *http.Request) (shoppersvc.Identity, error) {
	identity, err := h.shopper.IdentityFromAuthorizationHeader(r.Header.Get("Authorization"))
	if err != nil {
		return shoppersvc.Identity{}, &HTTPError{
			StatusCode: http.StatusUnauthorized,
			Message:    "Unauthorized",
			ErrorLog:   fmt.Errorf("order identity: %w", err),
		}
	}
	return identity, nil
}

func (h *orderEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*ordersvc.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("order service: %w", err),
		}
	}

	var errorLog error
	if svcErr.Err != nil {
		errorLog = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		errorLog = svcErr
	}

	switch svcErr.Code {
	case ordersvc.ErrorCodeValidation:
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    svcErr.Message,
			ErrorLog:   errorLog,
		}
	case ordersvc.ErrorCodeNotFound:
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    svcErr.Message,
			ErrorLog:   errorLog,
		}
	case ordersvc.ErrorCodeConflict:
		return &HTTPError{
			StatusCode: http.StatusConflict,
			Message:    svcErr.Message,
			ErrorLog:   errorLog,
		}
	default:
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   errorLog,
		}
	}
}

func toOrderResponses(orders []model.OrderItem) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	return resp
}

func toOrderResponse(order model.OrderItem) dto.OrderResponse {
	items := make([]dto.OrderLineResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderLineResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}
	return dto.OrderResponse{
		OrderID:       order.OrderID,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		Items:         items,
		CreatedDate:   order.CreatedDate,
		ShippedDate:   order.ShippedDate,
		DeliveredDate: order.DeliveredDate,
		CancelledDate: order.CancelledDate,
	}
}
