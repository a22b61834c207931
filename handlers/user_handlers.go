package handlers

import (
	"BistroBoss/jwt"
	"BistroBoss/middleware"
	"BistroBoss/models"
	"BistroBoss/respond"
	"BistroBoss/store"
	"github.com/gin-gonic/gin"
	"net/http"
)

// 簽發JWT Token，body內容即為claims
func IssueTokenHandler(c *gin.Context, tokens *jwt.Service) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	token, err := tokens.Issue(claims)
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}

// 登出，撤銷目前的Token
func LogOutHandler(c *gin.Context, tokens *jwt.Service) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		respond.Fail(c, respond.Unauthorized)
		return
	}

	if err := tokens.Revoke(c.Request.Context(), claims); err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logged out",
	})
}

// 查詢使用者列表
func GetUserListHandler(c *gin.Context, users store.UserStore) {
	userList, err := users.List(c.Request.Context())
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, userList)
}

// 查詢使用者是否為admin
func CheckAdminHandler(c *gin.Context, users store.UserStore) {
	user, err := users.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respond.Internal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": user.IsAdmin(),
	})
}

// 首次登入時建立使用者，信箱已存在則不重複建立
func CreateUserHandler(c *gin.Context, users store.UserStore) {
	var newUser models.User
	if err := c.ShouldBindJSON(&newUser); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	//新使用者一律為customer，只能透過設定admin的路由變更
	newUser.ID = ""
	newUser.Role = models.RoleCustomer

	result, created, err := users.InsertIfAbsent(c.Request.Context(), newUser)
	if err != nil {
		respond.Internal(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": "user already exists",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// 將使用者設為admin
func MakeAdminHandler(c *gin.Context, users store.UserStore) {
	result, err := users.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin)
	if err != nil {
		respond.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
