package handlers

import (
	"BistroBoss/models"
	"BistroBoss/respond"
	"BistroBoss/store"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 查詢購物車商品，未提供email時回傳空列表
func GetCartHandler(c *gin.Context, carts store.CartStore) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.CartItem{})
		return
	}

	items, err := carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// 新增商品至購物車
func AddToCartHandler(c *gin.Context, carts store.CartStore) {
	var cartItem models.CartItem
	if err := c.ShouldBindJSON(&cartItem); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	result, err := carts.Insert(c.Request.Context(), cartItem)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// 刪除購物車商品
func DeleteCartItemHandler(c *gin.Context, carts store.CartStore) {
	result, err := carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
