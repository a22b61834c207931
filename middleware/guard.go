package middleware

import (
	"BistroBoss/respond"
	"github.com/gin-gonic/gin"
)

// 請求前的檢查，通過時回傳nil
type Guard func(c *gin.Context) *respond.Failure

// 依序執行檢查，遇到第一個失敗即中止請求
func Guards(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, guard := range guards {
			if failure := guard(c); failure != nil {
				respond.Fail(c, failure)
				return
			}
		}
		c.Next()
	}
}
