package handlers

import (
	"BistroBoss/models"
	"BistroBoss/respond"
	"BistroBoss/store"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 查詢菜單品項數量
func GetTotalProductsHandler(c *gin.Context, menu store.MenuStore) {
	total, err := menu.Count(c.Request.Context())
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts": total,
	})
}

// 查詢菜單
func GetMenuHandler(c *gin.Context, menu store.MenuStore) {
	items, err := menu.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// 新增菜單品項
func CreateMenuItemHandler(c *gin.Context, menu store.MenuStore) {
	var newItem models.MenuItem
	if err := c.ShouldBindJSON(&newItem); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	result, err := menu.Insert(c.Request.Context(), newItem)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// 刪除菜單品項
func DeleteMenuItemHandler(c *gin.Context, menu store.MenuStore) {
	result, err := menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// 查詢評論
func GetReviewsHandler(c *gin.Context, reviews store.ReviewStore) {
	result, err := reviews.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
