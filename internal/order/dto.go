package order

// PlaceOrderRequest payload of checkout.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	UserID          int64  `json:"user_id"         example:"7"`
	DeliveryAddress string `json:"deliveryAddress" example:"221B Baker St"`
	PaymentMethod   string `json:"paymentMethod"   example:"cod"`
}

// PlaceOrderResponse is returned after a successful checkout.
// swagger:model PlaceOrderResponse
type PlaceOrderResponse struct {
	Status  string `json:"status"   example:"success"`
	Message string `json:"message"  example:"Order placed successfully"`
	OrderID int64  `json:"order_id" example:"42"`
}

// ListOrdersResponse order history of a user, newest first.
// swagger:model ListOrdersResponse
type ListOrdersResponse struct {
	Status string    `json:"status" example:"success"`
	Orders []Summary `json:"orders"`
}
