package services

import (
	"testing"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB テスト用のインメモリSQLiteデータベースを作成する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("テスト用データベースの作成に失敗しました: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		t.Fatalf("テスト用マイグレーションに失敗しました: %v", err)
	}

	return db
}

// testConfig テスト用の設定を作成する
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}
}

// createTestUser テスト用のユーザーを登録してIDを返す
func createTestUser(t *testing.T, db *gorm.DB, name, email string) uint {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "hashed-password",
		Avatar:   "https://www.gravatar.com/avatar/test",
	}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("テストユーザーの作成に失敗しました: %v", err)
	}
	return user.ID
}
