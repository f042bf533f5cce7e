package entity

// Payment methods the checkout form offers.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)
