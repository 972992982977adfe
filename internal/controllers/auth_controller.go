package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/DevConnect/devconnect_backend/internal/middlewares"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register ユーザー登録
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	token, err := c.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			ctx.JSON(http.StatusBadRequest, msgErrors(err.Error()))
			return
		}
		log.Printf("ユーザー登録に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, msgErrors(err.Error()))
			return
		}
		log.Printf("ログインに失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// GetMe 現在のユーザー情報を取得
func (c *AuthController) GetMe(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	user, err := c.authService.GetUser(userID)
	if err != nil {
		log.Printf("ユーザー取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
