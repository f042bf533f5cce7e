package entity

// Order is a placed order: a frozen snapshot of the cart at placement
// time plus lifecycle state. Items and Total never change after
// placement; only Status, Rating and Feedback do.
type Order struct {
	ID              string      `json:"id"`
	OrderID         string      `json:"orderId"`
	Items           []CartItem  `json:"items"`
	Total           int64       `json:"total"`
	Timestamp       int64       `json:"timestamp"`
	Status          OrderStatus `json:"status"`
	PlacedAt        string      `json:"placedAt"`
	EstimatedTime   int         `json:"estimatedTime,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Rating          int         `json:"rating,omitempty"`
	Feedback        string      `json:"feedback,omitempty"`
}

// Clone deep-copies the order, including its item snapshot.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]CartItem, len(o.Items))
	for i, it := range o.Items {
		out.Items[i] = it.Clone()
	}
	return out
}
