package middleware

import (
	"BistroBoss/jwt"
	"BistroBoss/respond"
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"strings"
)

const claimsKey = "Claims"

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*jwt.Claims, error)
}

// 檢查Authorization: Bearer <token>，通過後將Claims存入context
func Authenticated(tokens TokenVerifier) Guard {
	return func(c *gin.Context) *respond.Failure {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return respond.Unauthorized
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := tokens.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrRevoked) {
				return respond.Unauthorized
			}
			_ = c.Error(err)
			return respond.InternalError
		}

		c.Set(claimsKey, claims)
		return nil
	}
}

// 取得已驗證的Claims，未經Authenticated時回傳nil
func ClaimsFrom(c *gin.Context) *jwt.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*jwt.Claims)
	return claims
}
