package handlers

import (
	"BistroBoss/models"
	"BistroBoss/respond"
	"BistroBoss/store"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 後台統計：營收、使用者、品項與訂單數量
func GetAdminStateHandler(c *gin.Context, st *store.Store) {
	ctx := c.Request.Context()

	users, err := st.Users.Count(ctx)
	if err != nil {
		respond.Internal(c, err)
		return
	}
	products, err := st.Menu.Count(ctx)
	if err != nil {
		respond.Internal(c, err)
		return
	}
	orders, err := st.Payments.Count(ctx)
	if err != nil {
		respond.Internal(c, err)
		return
	}
	payments, err := st.Payments.List(ctx)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	state := models.AdminState{
		Users:    users,
		Products: products,
		Orders:   orders,
	}
	for _, p := range payments {
		state.Revenue += p.Price
	}

	c.JSON(http.StatusOK, state)
}

// 依菜單分類統計訂單數量與金額
func GetOrderStatsHandler(c *gin.Context, stats store.StatsStore) {
	result, err := stats.OrderStats(c.Request.Context())
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
