package middleware

import (
	"BistroBoss/respond"
	"BistroBoss/store"
	"fmt"
	"github.com/gin-gonic/gin"
)

// 以Token的email查詢使用者，不是admin則回傳403
func Admin(users store.UserStore) Guard {
	return func(c *gin.Context) *respond.Failure {
		claims := ClaimsFrom(c)
		if claims == nil {
			return respond.Unauthorized
		}

		user, err := users.FindByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			_ = c.Error(fmt.Errorf("admin check: %w", err))
			return respond.InternalError
		}
		if !user.IsAdmin() {
			return respond.Forbidden
		}
		return nil
	}
}

// 請求中的email必須與Token相同；email為空時交給handler處理
func OwnEmail(source func(c *gin.Context) string) Guard {
	return func(c *gin.Context) *respond.Failure {
		claims := ClaimsFrom(c)
		if claims == nil {
			return respond.Unauthorized
		}

		email := source(c)
		if email != "" && email != claims.Email {
			return respond.ForbiddenAccess
		}
		return nil
	}
}

func QueryEmail(c *gin.Context) string {
	return c.Query("email")
}

func ParamEmail(c *gin.Context) string {
	return c.Param("email")
}
