package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testAPIConfig テスト用の設定を作成する
// Cloudinaryの資格情報はクライアント生成にのみ使われるためダミーで良い
func testAPIConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
		Cloudinary: config.CloudinaryConfig{
			CloudName: "test-cloud",
			APIKey:    "test-key",
			APISecret: "test-secret",
		},
	}
}

// setupTestDB テスト用のインメモリSQLiteデータベースを作成する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))
	return db
}

// setupTestAPI 本番と同じ配線でテスト用APIを組み立てる
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	cfg := testAPIConfig()

	uploadService, err := services.NewUploadService(cfg)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, cfg, db, uploadService)
	return r, db
}

// doJSON JSONリクエストを送信してレスポンスを返す
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser ユーザー登録してトークンを返す
func registerUser(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, err := SetupRouter(testAPIConfig(), setupTestDB(t))
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRegisterAndLoginFlow(t *testing.T) {
	r, _ := setupTestAPI(t)

	token := registerUser(t, r, "A", "a@x.com")

	// 登録時のトークンで自分の情報が取得できること
	w := doJSON(r, http.MethodGet, "/api/auth", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "A", me["name"])

	// パスワードはレスポンスに含まれないこと
	_, hasPassword := me["password"]
	assert.False(t, hasPassword)

	// ログインで発行されたトークンも同じユーザーを指すこと
	w = doJSON(r, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(r, http.MethodGet, "/api/auth", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me2 map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me2))
	assert.Equal(t, me["id"], me2["id"])

	// 誤ったパスワードでは400となること
	w = doJSON(r, http.MethodPost, "/api/auth", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := setupTestAPI(t)

	// パスワードが短い場合はフィールドごとのエラーが返ること
	w := doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "A",
		"email":    "a@x.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)

	// 重複登録は拒否されること
	registerUser(t, r, "A", "a@x.com")
	w = doJSON(r, http.MethodPost, "/api/users", "", gin.H{
		"name":     "B",
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestPostLikeFlow(t *testing.T) {
	r, _ := setupTestAPI(t)
	token := registerUser(t, r, "A", "a@x.com")

	// 投稿を作成（いいねは空配列で返ること）
	w := doJSON(r, http.MethodPost, "/api/posts", token, gin.H{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "hi", post["text"])
	likes, ok := post["likes"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, likes)

	postID := uint(post["id"].(float64))
	userID := post["user"].(float64)

	// いいねを追加
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/posts/like/%d", postID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var likesResp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likesResp))
	require.Len(t, likesResp, 1)
	assert.Equal(t, userID, likesResp[0]["user"])

	// 二重いいねは400となること
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/posts/like/%d", postID), token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "post already like")
}

func TestDeletePostAsNonOwner(t *testing.T) {
	r, _ := setupTestAPI(t)
	ownerToken := registerUser(t, r, "U1", "u1@x.com")
	otherToken := registerUser(t, r, "U2", "u2@x.com")

	w := doJSON(r, http.MethodPost, "/api/posts", ownerToken, gin.H{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	postID := uint(post["id"].(float64))

	// 所有者以外による削除は401となること
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), otherToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not auth")

	// 投稿はまだ取得できること
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 所有者による削除は成功すること
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", postID), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Post removed")

	// 削除後は404となること
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), ownerToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No Post Found")
}

func TestProfileFlow(t *testing.T) {
	r, _ := setupTestAPI(t)
	token := registerUser(t, r, "A", "a@x.com")

	// プロフィール未作成の場合は400となること
	w := doJSON(r, http.MethodGet, "/api/profile/me", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "There is no profile for this user")

	// スキルはカンマ区切り文字列でも登録できること
	w = doJSON(r, http.MethodPost, "/api/profile", token, gin.H{
		"status": "Developer",
		"skills": "Go, MySQL",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	skills, ok := profile["skills"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Go", "MySQL"}, skills)

	// ユーザー情報（名前・アバター）が埋め込まれること
	user, ok := profile["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", user["name"])
	assert.NotEmpty(t, user["avatar"])

	// 職歴を追加して同じIDで削除すると元に戻ること
	w = doJSON(r, http.MethodPut, "/api/profile/experience", token, gin.H{
		"title":   "Engineer",
		"company": "ACME",
		"from":    "2020-04-01",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	experience, ok := profile["experience"].([]interface{})
	require.True(t, ok)
	require.Len(t, experience, 1)
	expID := uint(experience[0].(map[string]interface{})["id"].(float64))

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/profile/experience/%d", expID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	experience, ok = profile["experience"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, experience)
}

func TestCommentFlow(t *testing.T) {
	r, _ := setupTestAPI(t)
	ownerToken := registerUser(t, r, "U1", "u1@x.com")
	authorToken := registerUser(t, r, "U2", "u2@x.com")

	w := doJSON(r, http.MethodPost, "/api/posts", ownerToken, gin.H{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	postID := uint(post["id"].(float64))

	// U2がコメントを追加
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/posts/comment/%d", postID), authorToken, gin.H{"text": "nice"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	comments, ok := post["comments"].([]interface{})
	require.True(t, ok)
	require.Len(t, comments, 1)
	commentID := uint(comments[0].(map[string]interface{})["id"].(float64))

	// 投稿の所有者でもコメント作成者でなければ削除できないこと
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID), ownerToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not Authorized")

	// 存在しないコメントは404となること
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID+100), authorToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Comment does not exist")

	// コメント作成者は削除できること
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID), authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
	assert.Empty(t, remaining)
}

func TestStoreFailureReturns500(t *testing.T) {
	r, db := setupTestAPI(t)
	token := registerUser(t, r, "A", "a@x.com")

	w := doJSON(r, http.MethodPost, "/api/posts", token, gin.H{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	postID := uint(post["id"].(float64))

	// 接続を切断してストア障害を再現する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// ストア障害は404や400ではなく500で返ること
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), token, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/profile/me", token, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, w.Body.String())
}
