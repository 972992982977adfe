package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadService アバター・カバー画像のアップロードを管理するサービス
type UploadService interface {
	UploadImage(file multipart.File) (string, string, error)
	DeleteImage(publicID string) error
}

type uploadService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewUploadService UploadServiceを作成
func NewUploadService(cfg *config.Config) (UploadService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &uploadService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadImage 画像をアップロードしてpublic IDとURLを返す
func (s *uploadService) UploadImage(file multipart.File) (string, string, error) {
	// ファイルデータを読み込み
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", "", fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	// アップロードパラメータを設定
	uploadParams := uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	}

	// アップロード
	result, err := s.cld.Upload.Upload(context.Background(), buf, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %v", err)
	}

	return result.PublicID, result.SecureURL, nil
}

// DeleteImage 画像を削除
func (s *uploadService) DeleteImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("Cloudinaryからの削除に失敗しました: %v", err)
	}

	return nil
}
