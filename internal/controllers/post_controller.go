package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/DevConnect/devconnect_backend/internal/middlewares"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CommentRequest コメントリクエスト
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create 新しい投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	var input services.PostInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	post, err := c.postService.Create(userID, input)
	if err != nil {
		log.Printf("投稿の作成に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// List 投稿一覧を新しい順で取得
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.postService.List()
	if err != nil {
		log.Printf("投稿一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// GetByID IDで投稿を取得
func (c *PostController) GetByID(ctx *gin.Context) {
	// 不正なIDは存在しない投稿として扱う
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	post, err := c.postService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("投稿の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete 投稿を削除
func (c *PostController) Delete(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	if err := c.postService.Delete(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
		case errors.Is(err, services.ErrPostNotOwned):
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		default:
			log.Printf("投稿の削除に失敗しました: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// Like 投稿にいいねを追加
func (c *PostController) Like(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	likes, err := c.postService.Like(uint(id), userID)
	if err != nil {
		c.respondLikeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, likes)
}

// Unlike いいねを取り消す
func (c *PostController) Unlike(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	likes, err := c.postService.Unlike(uint(id), userID)
	if err != nil {
		c.respondLikeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, likes)
}

// AddComment 投稿にコメントを追加
func (c *PostController) AddComment(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	post, err := c.postService.AddComment(uint(id), userID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("コメントの作成に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// DeleteComment コメントを削除
func (c *PostController) DeleteComment(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "No Post Found"})
		return
	}

	commentID, err := strconv.ParseUint(ctx.Param("comment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "Comment does not exist"})
		return
	}

	comments, err := c.postService.DeleteComment(uint(id), uint(commentID), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrCommentNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
		case errors.Is(err, services.ErrCommentNotOwned):
			ctx.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		default:
			log.Printf("コメントの削除に失敗しました: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// respondLikeError いいね操作のエラーをレスポンスに変換する
func (c *PostController) respondLikeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, services.ErrAlreadyLiked), errors.Is(err, services.ErrNotLiked):
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		log.Printf("いいね操作に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
	}
}
