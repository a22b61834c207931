package respond

import (
	"BistroBoss/store"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 回傳給前端的錯誤狀態碼與訊息
type Failure struct {
	Status  int
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

var (
	Unauthorized    = &Failure{Status: http.StatusUnauthorized, Message: "unauthorized token"}
	Forbidden       = &Failure{Status: http.StatusForbidden, Message: "Forbidden"}
	ForbiddenAccess = &Failure{Status: http.StatusForbidden, Message: "Forbidden access"}
	InternalError   = &Failure{Status: http.StatusInternalServerError, Message: "internal server error"}
)

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":   true,
		"message": message,
	})
}

func Fail(c *gin.Context, f *Failure) {
	Error(c, f.Status, f.Message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// 錯誤交給請求logger記錄，回傳500
func Internal(c *gin.Context, err error) {
	_ = c.Error(err)
	Fail(c, InternalError)
}

// 依資料庫錯誤類型回傳400或500
func StoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrInvalidID) {
		BadRequest(c, "invalid id")
		return
	}
	Internal(c, err)
}
