package routes

import (
	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/controllers"
	"github.com/DevConnect/devconnect_backend/internal/middlewares"
	"github.com/DevConnect/devconnect_backend/internal/repository"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 外部サービスを初期化してルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	uploadService, err := services.NewUploadService(cfg)
	if err != nil {
		return nil, err
	}

	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	RegisterRoutes(r, cfg, db, uploadService)

	return r, nil
}

// RegisterRoutes リポジトリ・サービス・コントローラーを組み立ててルートを登録
func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB, uploadService services.UploadService) {
	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(profileRepo, userRepo, postRepo)
	postService := services.NewPostService(postRepo, userRepo)
	githubService := services.NewGithubService(cfg)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	profileController := controllers.NewProfileController(profileService, githubService)
	postController := controllers.NewPostController(postService)
	uploadController := controllers.NewUploadController(uploadService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// ユーザー登録ルート
		api.POST("/users", authController.Register)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("", authController.Login)
			auth.GET("", authMiddleware, authController.GetMe)
		}

		// プロフィールルート
		profile := api.Group("/profile")
		{
			// 認証不要
			profile.GET("", profileController.List)
			profile.GET("/user/:user_id", profileController.GetByUser)
			profile.GET("/github/:username", profileController.GetGithubRepos)

			// 認証が必要
			profile.GET("/me", authMiddleware, profileController.GetMe)
			profile.POST("", authMiddleware, profileController.Upsert)
			profile.DELETE("", authMiddleware, profileController.DeleteAccount)
			profile.PUT("/experience", authMiddleware, profileController.AddExperience)
			profile.DELETE("/experience/:exp_id", authMiddleware, profileController.DeleteExperience)
			profile.PUT("/education", authMiddleware, profileController.AddEducation)
			profile.DELETE("/education/:edu_id", authMiddleware, profileController.DeleteEducation)
		}

		// 投稿ルート（すべて認証が必要）
		posts := api.Group("/posts", authMiddleware)
		{
			posts.POST("", postController.Create)
			posts.GET("", postController.List)
			posts.GET("/:id", postController.GetByID)
			posts.DELETE("/:id", postController.Delete)
			posts.PUT("/like/:id", postController.Like)
			posts.PUT("/unlike/:id", postController.Unlike)
			posts.POST("/comment/:id", postController.AddComment)
			posts.DELETE("/comment/:id/:comment_id", postController.DeleteComment)
		}

		// アップロードルート
		uploads := api.Group("/uploads", authMiddleware)
		{
			uploads.POST("", uploadController.Upload)
			uploads.DELETE("/:public_id", uploadController.Delete)
		}
	}
}
