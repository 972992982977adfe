package main

import (
	"log"
	"os"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// ログ設定
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// スキーマを最新化
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	// ルーターをセットアップ
	router, err := routes.SetupRouter(cfg, db)
	if err != nil {
		log.Fatalf("ルーターの初期化に失敗しました: %v", err)
	}

	// サーバー起動
	log.Printf("サーバーを開始しています... PORT: %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
