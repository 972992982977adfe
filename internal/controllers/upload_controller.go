package controllers

import (
	"log"
	"net/http"

	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadController 画像アップロードに関するコントローラー
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController UploadControllerを作成
func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload 画像をアップロード
func (c *UploadController) Upload(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, msgErrors("file is required"))
		return
	}
	defer file.Close()

	publicID, url, err := c.uploadService.UploadImage(file)
	if err != nil {
		log.Printf("画像のアップロードに失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"public_id": publicID,
		"url":       url,
	})
}

// Delete アップロード済みの画像を削除
func (c *UploadController) Delete(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	if err := c.uploadService.DeleteImage(publicID); err != nil {
		log.Printf("画像の削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "Image removed"})
}
