package chatbot

import (
	"context"

	"nexmart-chat-backend/internal/model"
)

type ResponseType string

const (
	ResponseTypeText        ResponseType = "text"
	ResponseTypeProductList ResponseType = "product-list"
	ResponseTypeOrderStatus ResponseType = "order-status"
	ResponseTypeHelpLinks   ResponseType = "help-links"
)

// ProductSummary is the read-only catalog projection carried in a
// product-list response. All *Key fields across these types are i18n keys the
// widget resolves; the resolver never produces localized text.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Rating   float64 `json:"rating,omitempty"`
}

type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderSummary struct {
	OrderID       string      `json:"orderId"`
	Status        string      `json:"status"`
	TotalAmount   float64     `json:"totalAmount"`
	Items         []OrderLine `json:"items"`
	CreatedDate   string      `json:"createdDate"`
	ShippedDate   string      `json:"shippedDate,omitempty"`
	DeliveredDate string      `json:"deliveredDate,omitempty"`
}

type HelpLink struct {
	LabelKey string `json:"label"`
	Href     string `json:"href"`
}

// Response is the single structured reply produced for an utterance. Type
// selects which of the remaining fields are populated.
type Response struct {
	Type       ResponseType     `json:"type"`
	MessageKey string           `json:"message,omitempty"`
	TitleKey   string           `json:"title,omitempty"`
	Products   []ProductSummary `json:"products,omitempty"`
	Order      *OrderSummary    `json:"order,omitempty"`
	Items      []HelpLink       `json:"items,omitempty"`
}

// Context is the per-utterance conversation projection supplied by the
// caller. CurrentRoute is carried for future routing-aware replies but no
// rule branches on it today.
type Context struct {
	CurrentRoute   string
	IsLoggedIn     bool
	CartItemsCount int
	Language       string
	ShopperID      string
}

// Catalog and Orders are the resolver's only collaborators. Implementations
// must preserve catalog insertion order; the resolver never re-sorts.
type Catalog interface {
	List(ctx context.Context) ([]model.ProductItem, error)
	ListByCategory(ctx context.Context, category string) ([]model.ProductItem, error)
	TopRated(ctx context.Context, minRating float64) ([]model.ProductItem, error)
}

type Orders interface {
	MostRecentOrder(ctx context.Context, shopperID string) (model.OrderItem, bool, error)
}

func toProductSummary(product model.ProductItem) ProductSummary {
	return ProductSummary{
		ID:       product.ProductID,
		Name:     product.Name,
		Price:    product.Price,
		ImageURL: product.ImageURL,
		Rating:   product.Rating,
	}
}

func toOrderSummary(order model.OrderItem) OrderSummary {
	items := make([]OrderLine, len(order.Items))
	for i, line := range order.Items {
		items[i] = OrderLine{Name: line.Name, Quantity: line.Quantity}
	}
	return OrderSummary{
		OrderID:       order.OrderID,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		Items:         items,
		CreatedDate:   order.CreatedDate,
		ShippedDate:   order.ShippedDate,
		DeliveredDate: order.DeliveredDate,
	}
}
