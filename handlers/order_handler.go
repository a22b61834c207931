package handlers

import (
	"BistroBoss/models"
	"BistroBoss/payment"
	"BistroBoss/respond"
	"BistroBoss/store"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

// 建立付款，回傳client secret
func CreatePaymentIntentHandler(c *gin.Context, payments payment.IntentCreator) {
	var intentReq struct {
		Price float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&intentReq); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	clientSecret, err := payments.CreateIntent(c.Request.Context(), intentReq.Price)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": clientSecret,
	})
}

// 儲存付款紀錄並清除購物車內對應商品
func SavePaymentHandler(c *gin.Context, st *store.Store) {
	var newPayment models.Payment
	if err := c.ShouldBindJSON(&newPayment); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}
	newPayment.ID = ""
	if newPayment.Date.IsZero() {
		newPayment.Date = time.Now().UTC()
	}

	result, err := st.Payments.Insert(c.Request.Context(), newPayment)
	if err != nil {
		respond.StoreError(c, err)
		return
	}

	//付款已寫入，清除購物車失敗時只回報錯誤
	deleteResult, err := st.Carts.DeleteMany(c.Request.Context(), newPayment.CartItemsID)
	if err != nil {
		respond.Internal(c, fmt.Errorf("payment %s saved, clearing cart: %w", result.InsertedID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":       result,
		"deleteResult": deleteResult,
	})
}
