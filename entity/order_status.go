package entity

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusReady, StatusOutForDelivery,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal states accept no further transition, automatic or manual.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
