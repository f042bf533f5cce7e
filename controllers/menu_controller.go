package controllers

import (
	"canteen/data"
	"canteen/pkg/resp"

	"github.com/gin-gonic/gin"
)

type MenuController struct{}

func NewMenuController() *MenuController { return &MenuController{} }

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	resp.OK(c, data.MenuItems)
}
