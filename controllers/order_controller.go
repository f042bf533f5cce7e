package controllers

import (
	"canteen/entity"
	"canteen/pkg/resp"
	"canteen/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Store *services.CartStore }

func NewOrderController(s *services.CartStore) *OrderController { return &OrderController{Store: s} }

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var body services.PlaceOrderIn
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	orderID, err := h.Store.PlaceOrder(body.DeliveryAddress, body.PaymentMethod)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"orderId": orderID})
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	resp.OK(c, h.Store.Orders())
}

// GET /orders/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	o, err := h.Store.Order(c.Param("orderId"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /orders/:orderId/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Store.UpdateOrderStatus(c.Param("orderId"), entity.OrderStatus(body.Status)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}

// PATCH /orders/:orderId/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	if err := h.Store.CancelOrder(c.Param("orderId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusCancelled})
}

// POST /orders/:orderId/reorder
func (h *OrderController) Reorder(c *gin.Context) {
	if err := h.Store.ReorderItems(c.Param("orderId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"totalItems": h.Store.TotalItems(),
		"totalPrice": h.Store.TotalPrice(),
	})
}

// POST /orders/:orderId/rating
func (h *OrderController) Rate(c *gin.Context) {
	var body services.RateOrderIn
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Store.RateOrder(c.Param("orderId"), body.Rating, body.Feedback); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"rating": body.Rating})
}

// PATCH /orders/:orderId/received
func (h *OrderController) Received(c *gin.Context) {
	if err := h.Store.MarkOrderReceived(c.Param("orderId")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusDelivered})
}
