package models

import (
	"time"

	"gorm.io/datatypes"
)

// User ユーザーモデル
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`

	// リレーション
	Profile *Profile `json:"-"`
	Posts   []Post   `json:"-"`
}

// Profile プロフィールモデル（ユーザーごとに1件）
type Profile struct {
	ID             uint                        `json:"id" gorm:"primaryKey"`
	UserID         uint                        `json:"-" gorm:"uniqueIndex;not null"`
	Company        string                      `json:"company"`
	Location       string                      `json:"location"`
	Website        string                      `json:"website"`
	Bio            string                      `json:"bio"`
	Status         string                      `json:"status" gorm:"not null"`
	GithubUsername string                      `json:"githubusername"`
	Skills         datatypes.JSONSlice[string] `json:"skills"`
	Social         Social                      `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time                   `json:"date"`
	UpdatedAt      time.Time                   `json:"-"`

	// リレーション
	User       *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Social SNSリンク（空文字は未設定）
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Experience 職歴エントリ
type Experience struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProfileID   uint       `json:"-" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Company     string     `json:"company" gorm:"not null"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" gorm:"not null"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current" gorm:"default:false"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"-"`
}

// Education 学歴エントリ
type Education struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ProfileID    uint       `json:"-" gorm:"not null;index"`
	School       string     `json:"school" gorm:"not null"`
	Degree       string     `json:"degree" gorm:"not null"`
	FieldOfStudy string     `json:"fieldofstudy" gorm:"not null"`
	From         time.Time  `json:"from" gorm:"not null"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current" gorm:"default:false"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"-"`
}

// Post 投稿モデル
// Name と Avatar は投稿時点のユーザー情報のスナップショット
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user" gorm:"not null;index"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	Title       string    `json:"title"`
	Text        string    `json:"text" gorm:"not null"`
	Cover       string    `json:"cover"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"date"`

	// リレーション
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Like いいねモデル（ユーザーと投稿の組み合わせで一意）
type Like struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"user" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint      `json:"-" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	CreatedAt time.Time `json:"-"`
}

// Comment コメントモデル
// Name と Avatar はコメント時点のユーザー情報のスナップショット
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"-" gorm:"not null;index"`
	UserID    uint      `json:"user" gorm:"not null"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"date"`
}
