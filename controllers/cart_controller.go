package controllers

import (
	"canteen/entity"
	"canteen/pkg/resp"
	"canteen/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Store *services.CartStore }

func NewCartController(s *services.CartStore) *CartController { return &CartController{Store: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, gin.H{
		"items":      h.Store.Items(),
		"totalItems": h.Store.TotalItems(),
		"totalPrice": h.Store.TotalPrice(),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if item.ID == "" {
		resp.BadRequest(c, "item id is required")
		return
	}
	h.Store.AddItem(item)
	resp.Created(c, gin.H{"totalItems": h.Store.TotalItems()})
}

// POST /cart/items/customized
func (h *CartController) AddCustomized(c *gin.Context) {
	var body struct {
		Item           entity.MenuItem       `json:"item"`
		Customizations entity.Customizations `json:"customizations"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.Item.ID == "" {
		resp.BadRequest(c, "item id is required")
		return
	}
	h.Store.AddItemWithCustomization(body.Item, body.Customizations)
	resp.Created(c, gin.H{"totalItems": h.Store.TotalItems()})
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		ID             string                `json:"id" binding:"required"`
		Quantity       int                   `json:"quantity"`
		Customizations entity.Customizations `json:"customizations"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Store.UpdateQuantity(body.ID, body.Quantity, body.Customizations)
	resp.OK(c, gin.H{"totalItems": h.Store.TotalItems()})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var body struct {
		ID             string                `json:"id" binding:"required"`
		Customizations entity.Customizations `json:"customizations"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Store.RemoveItem(body.ID, body.Customizations)
	resp.OK(c, gin.H{"totalItems": h.Store.TotalItems()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Store.ClearCart()
	resp.OK(c, gin.H{"totalItems": 0})
}
