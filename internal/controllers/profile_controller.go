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

// ProfileController プロフィールに関するコントローラー
type ProfileController struct {
	profileService services.ProfileService
	githubService  services.GithubService
}

// NewProfileController ProfileControllerを作成
func NewProfileController(profileService services.ProfileService, githubService services.GithubService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		githubService:  githubService,
	}
}

// GetMe 自分のプロフィールを取得
func (c *ProfileController) GetMe(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	profile, err := c.profileService.GetCurrent(userID)
	if err != nil {
		if errors.Is(err, services.ErrNoProfile) {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("プロフィールの取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Upsert プロフィールを作成または更新
func (c *ProfileController) Upsert(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	var input services.ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	profile, err := c.profileService.Upsert(userID, input)
	if err != nil {
		log.Printf("プロフィールの保存に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// List 全プロフィールを取得
func (c *ProfileController) List(ctx *gin.Context) {
	profiles, err := c.profileService.List()
	if err != nil {
		log.Printf("プロフィール一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// GetByUser ユーザーIDでプロフィールを取得
func (c *ProfileController) GetByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found"})
		return
	}

	profile, err := c.profileService.GetByUserID(uint(userID))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("プロフィールの取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteAccount プロフィール・投稿・ユーザーをまとめて削除
func (c *ProfileController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	if err := c.profileService.DeleteAccount(userID); err != nil {
		log.Printf("アカウント削除に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// AddExperience 職歴エントリを追加
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	var input services.ExperienceInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	profile, err := c.profileService.AddExperience(userID, input)
	if err != nil {
		c.respondProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteExperience 職歴エントリを削除
// 該当IDがなくても更新後のプロフィールを返す
func (c *ProfileController) DeleteExperience(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	// 不正なIDはどのエントリにも一致しないものとして扱う
	expID, _ := strconv.ParseUint(ctx.Param("exp_id"), 10, 32)

	profile, err := c.profileService.DeleteExperience(userID, uint(expID))
	if err != nil {
		c.respondProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// AddEducation 学歴エントリを追加
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	var input services.EducationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	profile, err := c.profileService.AddEducation(userID, input)
	if err != nil {
		c.respondProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// DeleteEducation 学歴エントリを削除
// 該当IDがなくても更新後のプロフィールを返す
func (c *ProfileController) DeleteEducation(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	// 不正なIDはどのエントリにも一致しないものとして扱う
	eduID, _ := strconv.ParseUint(ctx.Param("edu_id"), 10, 32)

	profile, err := c.profileService.DeleteEducation(userID, uint(eduID))
	if err != nil {
		c.respondProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetGithubRepos GitHubのリポジトリ一覧を取得
func (c *ProfileController) GetGithubRepos(ctx *gin.Context) {
	username := ctx.Param("username")

	repos, err := c.githubService.GetUserRepos(username)
	if err != nil {
		if errors.Is(err, services.ErrNoGithubProfile) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		log.Printf("GitHubリポジトリの取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}

// respondProfileError プロフィール操作のエラーをレスポンスに変換する
func (c *ProfileController) respondProfileError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoProfile), errors.Is(err, services.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		log.Printf("プロフィール操作に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
	}
}
