package services

import (
	"math/rand"
	"strconv"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
)

const (
	defaultDeliveryAddress = "Hostel Block A, Main Campus"
	defaultPaymentMethod   = entity.PaymentUPI
)

const orderIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateOrderID returns the human-facing code: ORD plus nine uppercase
// alphanumerics. Unique with high probability, not checked against
// existing orders.
func generateOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = orderIDCharset[rand.Intn(len(orderIDCharset))]
	}
	return "ORD" + string(b)
}

// PlaceOrderIn is the optional checkout payload.
type PlaceOrderIn struct {
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod" binding:"omitempty,oneof=cash card upi"`
}

// RateOrderIn is the rating payload.
type RateOrderIn struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}

// PlaceOrder freezes the current cart into a new order, clears the cart
// and arms the kitchen progression. Returns the human-facing order code.
func (s *CartStore) PlaceOrder(deliveryAddress, paymentMethod string) (string, error) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return "", apperr.ErrEmptyCart
	}
	if deliveryAddress == "" {
		deliveryAddress = defaultDeliveryAddress
	}
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	items := make([]entity.CartItem, len(s.items))
	for i, it := range s.items {
		items[i] = it.Clone()
	}

	now := time.Now()
	order := entity.Order{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		OrderID:         generateOrderID(),
		Items:           items,
		Total:           s.totalPriceLocked(),
		Timestamp:       now.UnixMilli(),
		Status:          entity.StatusPlaced,
		PlacedAt:        now.Format(time.RFC3339),
		EstimatedTime:   15 + rand.Intn(30),
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
	}
	// history is newest first
	s.orders = append([]entity.Order{order}, s.orders...)
	s.items = nil
	s.persist()
	s.mu.Unlock()

	s.scheduleTransitions(order.OrderID)
	return order.OrderID, nil
}

// callers hold s.mu
func (s *CartStore) findOrderLocked(orderID string) *entity.Order {
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			return &s.orders[i]
		}
	}
	return nil
}

// Orders returns the history, newest first.
func (s *CartStore) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// Order returns one order by its human-facing code.
func (s *CartStore) Order(orderID string) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return entity.Order{}, apperr.ErrOrderNotFound
	}
	return o.Clone(), nil
}

// UpdateOrderStatus sets the status directly, operator-style. Terminal
// orders stay closed.
func (s *CartStore) UpdateOrderStatus(orderID string, status entity.OrderStatus) error {
	if !status.Valid() {
		return apperr.ErrUnknownStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return apperr.ErrOrderNotFound
	}
	if o.Status.Terminal() && o.Status != status {
		return apperr.ErrOrderClosed
	}
	o.Status = status
	s.persist()
	return nil
}

// CancelOrder is idempotent; a delivered order can no longer be
// cancelled. Any timer still pending for this order discards itself.
func (s *CartStore) CancelOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return apperr.ErrOrderNotFound
	}
	if o.Status == entity.StatusCancelled {
		return nil
	}
	if o.Status == entity.StatusDelivered {
		return apperr.ErrOrderClosed
	}
	o.Status = entity.StatusCancelled
	s.persist()
	return nil
}

// MarkOrderReceived is the only way an order reaches delivered.
func (s *CartStore) MarkOrderReceived(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return apperr.ErrOrderNotFound
	}
	if o.Status == entity.StatusDelivered {
		return nil
	}
	if o.Status == entity.StatusCancelled {
		return apperr.ErrOrderClosed
	}
	o.Status = entity.StatusDelivered
	s.persist()
	return nil
}

// ReorderItems replaces the whole cart with a copy of the order's item
// snapshot; whatever was in the cart before is discarded.
func (s *CartStore) ReorderItems(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return apperr.ErrOrderNotFound
	}
	items := make([]entity.CartItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = it.Clone()
	}
	s.items = items
	s.persist()
	return nil
}

// RateOrder attaches a 1-5 rating with optional feedback. It does not
// require the order to be in a terminal state.
func (s *CartStore) RateOrder(orderID string, rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return apperr.ErrInvalidRating
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.findOrderLocked(orderID)
	if o == nil {
		return apperr.ErrOrderNotFound
	}
	o.Rating = rating
	o.Feedback = feedback
	s.persist()
	return nil
}
