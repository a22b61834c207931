package routers

import (
	"BistroBoss/handlers"
	"BistroBoss/jwt"
	"BistroBoss/middleware"
	"BistroBoss/payment"
	"BistroBoss/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
)

type route struct {
	method  string
	path    string
	guards  []middleware.Guard
	handler gin.HandlerFunc
}

func SetupRouters(st *store.Store, tokens *jwt.Service, payments payment.IntentCreator, logger *zap.Logger) *gin.Engine {
	//建立Gin路由器
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery(), middleware.CORS())
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	authenticated := middleware.Authenticated(tokens)
	admin := middleware.Admin(st.Users)

	for _, r := range routes(st, tokens, payments, authenticated, admin) {
		chain := []gin.HandlerFunc{r.handler}
		if len(r.guards) > 0 {
			chain = append([]gin.HandlerFunc{middleware.Guards(r.guards...)}, chain...)
		}
		router.Handle(r.method, r.path, chain...)
	}

	return router
}

func guards(g ...middleware.Guard) []middleware.Guard {
	return g
}

func routes(st *store.Store, tokens *jwt.Service, payments payment.IntentCreator, authenticated, admin middleware.Guard) []route {
	return []route{
		{http.MethodGet, "/", nil, func(c *gin.Context) {
			c.String(http.StatusOK, "Bistro boss server is running")
		}},

		////Token
		//簽發Token
		{http.MethodPost, "/jwt", nil, func(c *gin.Context) {
			handlers.IssueTokenHandler(c, tokens)
		}},
		//登出
		{http.MethodPost, "/logout", guards(authenticated), func(c *gin.Context) {
			handlers.LogOutHandler(c, tokens)
		}},

		////查詢
		//查詢菜單品項數量
		{http.MethodGet, "/total-products", nil, func(c *gin.Context) {
			handlers.GetTotalProductsHandler(c, st.Menu)
		}},
		//查詢使用者列表
		{http.MethodGet, "/users", guards(authenticated, admin), func(c *gin.Context) {
			handlers.GetUserListHandler(c, st.Users)
		}},
		//查詢是否為admin，只能查詢自己
		{http.MethodGet, "/user/admin/:email", guards(authenticated, middleware.OwnEmail(middleware.ParamEmail)), func(c *gin.Context) {
			handlers.CheckAdminHandler(c, st.Users)
		}},
		//查詢菜單
		{http.MethodGet, "/menu", nil, func(c *gin.Context) {
			handlers.GetMenuHandler(c, st.Menu)
		}},
		//查詢評論
		{http.MethodGet, "/review", nil, func(c *gin.Context) {
			handlers.GetReviewsHandler(c, st.Reviews)
		}},
		//查詢購物車，只能查詢自己
		{http.MethodGet, "/carts", guards(authenticated, middleware.OwnEmail(middleware.QueryEmail)), func(c *gin.Context) {
			handlers.GetCartHandler(c, st.Carts)
		}},
		//後台統計
		{http.MethodGet, "/admin-state", guards(authenticated, admin), func(c *gin.Context) {
			handlers.GetAdminStateHandler(c, st)
		}},
		//依分類統計訂單
		{http.MethodGet, "/order-stats", nil, func(c *gin.Context) {
			handlers.GetOrderStatsHandler(c, st.Stats)
		}},

		////新增
		//建立付款
		{http.MethodPost, "/create-payment-intent", guards(authenticated), func(c *gin.Context) {
			handlers.CreatePaymentIntentHandler(c, payments)
		}},
		//儲存付款紀錄並清除購物車
		{http.MethodPost, "/payments", guards(authenticated), func(c *gin.Context) {
			handlers.SavePaymentHandler(c, st)
		}},
		//新增菜單品項
		{http.MethodPost, "/menu", guards(authenticated, admin), func(c *gin.Context) {
			handlers.CreateMenuItemHandler(c, st.Menu)
		}},
		//新增商品至購物車
		{http.MethodPost, "/carts", nil, func(c *gin.Context) {
			handlers.AddToCartHandler(c, st.Carts)
		}},
		//建立使用者
		{http.MethodPost, "/users", nil, func(c *gin.Context) {
			handlers.CreateUserHandler(c, st.Users)
		}},

		////刪除
		//刪除購物車商品
		{http.MethodDelete, "/cartdelete/:id", nil, func(c *gin.Context) {
			handlers.DeleteCartItemHandler(c, st.Carts)
		}},
		//刪除菜單品項
		{http.MethodDelete, "/menu/:id", guards(authenticated, admin), func(c *gin.Context) {
			handlers.DeleteMenuItemHandler(c, st.Menu)
		}},

		////修改
		//設定使用者為admin
		{http.MethodPatch, "/users/admin/:id", nil, func(c *gin.Context) {
			handlers.MakeAdminHandler(c, st.Users)
		}},
	}
}
