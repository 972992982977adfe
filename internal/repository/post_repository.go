package repository

import (
	"github.com/DevConnect/devconnect_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	List() ([]models.Post, error)
	Delete(id uint) error
	DeleteByUserID(userID uint) error
	HasLiked(userID, postID uint) (bool, error)
	AddLike(userID, postID uint) error
	RemoveLike(userID, postID uint) error
	ListLikes(postID uint) ([]models.Like, error)
	AddComment(comment *models.Comment) error
	FindComment(postID, commentID uint) (*models.Comment, error)
	RemoveComment(postID, commentID uint) error
	ListComments(postID uint) ([]models.Comment, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// いいね・コメントは新しい順で返す
func likesNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

func commentsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

// Create 新しい投稿を作成
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID IDで投稿を検索
func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.
		Preload("Likes", likesNewestFirst).
		Preload("Comments", commentsNewestFirst).
		First(&post, id).Error; err != nil {
		return nil, err
	}

	// いいね・コメントがない場合もJSONで空配列になるようにする
	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	return &post, nil
}

// List 投稿一覧を新しい順で取得
func (r *postRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.
		Preload("Likes", likesNewestFirst).
		Preload("Comments", commentsNewestFirst).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].Likes == nil {
			posts[i].Likes = []models.Like{}
		}
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}

	return posts, nil
}

// Delete 投稿を削除（いいね・コメントも含む）
func (r *postRepository) Delete(id uint) error {
	if err := r.db.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Post{}, id).Error
}

// DeleteByUserID ユーザーの全投稿を削除
func (r *postRepository) DeleteByUserID(userID uint) error {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return err
	}
	for _, post := range posts {
		if err := r.Delete(post.ID); err != nil {
			return err
		}
	}
	return nil
}

// HasLiked ユーザーが投稿にいいねしているか確認
func (r *postRepository) HasLiked(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike いいねを追加
func (r *postRepository) AddLike(userID, postID uint) error {
	like := models.Like{
		UserID: userID,
		PostID: postID,
	}
	return r.db.Create(&like).Error
}

// RemoveLike いいねを削除
func (r *postRepository) RemoveLike(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
}

// ListLikes 投稿のいいね一覧を新しい順で取得
func (r *postRepository) ListLikes(postID uint) ([]models.Like, error) {
	likes := []models.Like{}
	if err := r.db.Where("post_id = ?", postID).
		Order("id DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// AddComment コメントを追加
func (r *postRepository) AddComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindComment 投稿内のコメントを検索
func (r *postRepository) FindComment(postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("post_id = ? AND id = ?", postID, commentID).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// RemoveComment コメントを削除
func (r *postRepository) RemoveComment(postID, commentID uint) error {
	return r.db.Where("post_id = ? AND id = ?", postID, commentID).
		Delete(&models.Comment{}).Error
}

// ListComments 投稿のコメント一覧を新しい順で取得
func (r *postRepository) ListComments(postID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Where("post_id = ?", postID).
		Order("id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
