package dto

type OrderLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	OrderID       string              `json:"orderId"`
	Status        string              `json:"status"`
	TotalAmount   float64             `json:"totalAmount"`
	Items         []OrderLineResponse `json:"items"`
	CreatedDate   string              `json:"createdDate"`
	ShippedDate   string              `json:"shippedDate,omitempty"`
	DeliveredDate string              `json:"deliveredDate,omitempty"`
	CancelledDate string              `json:"cancelledDate,omitempty"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
