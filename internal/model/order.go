package model

const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

type OrderLineItem struct {
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
}

type OrderItem struct {
	PK            string          `dynamodbav:"pk"`
	ShopperID     string          `dynamodbav:"shopperId"`
	OrderID       string          `dynamodbav:"orderId"`
	Status        string          `dynamodbav:"status"`
	TotalAmount   float64         `dynamodbav:"totalAmount"`
	Items         []OrderLineItem `dynamodbav:"items"`
	CreatedDate   string          `dynamodbav:"createdDate"`
	ShippedDate   string          `dynamodbav:"shippedDate,omitempty"`
	DeliveredDate string          `dynamodbav:"deliveredDate,omitempty"`
	CancelledDate string          `dynamodbav:"cancelledDate,omitempty"`
}

func OrderPK(shopperID, orderID string) string {
	return ShopperScopedPK(shopperID, orderID)
}
