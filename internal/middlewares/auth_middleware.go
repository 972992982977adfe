package middlewares

import (
	"net/http"

	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 認証ミドルウェア
// x-auth-tokenヘッダーのトークンを検証し、ユーザーIDをコンテキストに保存する
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// トークンヘッダーを取得
		token := ctx.GetHeader("x-auth-token")

		// トークンがない場合は認証エラー
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			ctx.Abort()
			return
		}

		// トークンを検証
		userID, err := authService.ValidateToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			ctx.Abort()
			return
		}

		// ユーザーIDをコンテキストに保存
		ctx.Set("userID", userID)
		ctx.Next()
	}
}

// CurrentUserID コンテキストから認証済みユーザーIDを取得する
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
