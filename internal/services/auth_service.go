package services

import (
	"github.com/DevConnect/devconnect_backend/internal/config"
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
	"github.com/DevConnect/devconnect_backend/internal/utils"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(tokenString string) (uint, error)
	GetUser(userID uint) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// TokenUser トークンに埋め込むユーザー情報
type TokenUser struct {
	ID uint `json:"id"`
}

// Claims JWTのペイロード
type Claims struct {
	User TokenUser `json:"user"`
	jwt.StandardClaims
}

// Register ユーザー登録してトークンを返す
// メールアドレスの重複は一意制約で検出するため、同時登録でも取りこぼさない
func (s *authService) Register(name, email, password string) (string, error) {
	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 新しいユーザーを作成
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   utils.GravatarURL(email),
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", duplicatedAs(err, ErrUserExists)
	}

	return s.generateToken(user.ID)
}

// Login ログインしてトークンを返す
func (s *authService) Login(email, password string) (string, error) {
	// ユーザーを検索
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", notFoundAs(err, ErrInvalidCredentials)
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

// ValidateToken トークンを検証して埋め込まれたユーザーIDを返す
func (s *authService) ValidateToken(tokenString string) (uint, error) {
	claims := &Claims{}

	// トークンを解析
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		return 0, ErrInvalidToken
	}

	if !token.Valid || claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.User.ID, nil
}

// GetUser IDでユーザーを取得
func (s *authService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}

// generateToken JWTトークンを生成
func (s *authService) generateToken(userID uint) (string, error) {
	// トークンの有効期限を設定
	expirationTime := jwt.TimeFunc().Add(s.config.Auth.TokenExpiry)

	// クレームを作成
	claims := &Claims{
		User: TokenUser{ID: userID},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  jwt.TimeFunc().Unix(),
		},
	}

	// 署名して文字列化
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}
