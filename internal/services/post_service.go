package services

import (
	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
)

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	Create(userID uint, input PostInput) (*models.Post, error)
	List() ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Delete(id, userID uint) error
	Like(id, userID uint) ([]models.Like, error)
	Unlike(id, userID uint) ([]models.Like, error)
	AddComment(postID, userID uint, text string) (*models.Post, error)
	DeleteComment(postID, commentID, userID uint) ([]models.Comment, error)
}

// postService PostServiceの実装
type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// PostInput 投稿作成の入力
type PostInput struct {
	Text        string `json:"text" binding:"required"`
	Title       string `json:"title"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
}

// Create 新しい投稿を作成
// 投稿者の名前とアバターをスナップショットとして保存する
func (s *postService) Create(userID uint, input PostInput) (*models.Post, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	post := &models.Post{
		UserID:      userID,
		Name:        user.Name,
		Avatar:      user.Avatar,
		Title:       input.Title,
		Text:        input.Text,
		Cover:       input.Cover,
		Description: input.Description,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(post.ID)
}

// List 投稿一覧を新しい順で取得
func (s *postService) List() ([]models.Post, error) {
	return s.postRepo.List()
}

// GetByID IDで投稿を取得
func (s *postService) GetByID(id uint) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return post, nil
}

// Delete 投稿を削除
// 投稿の所有者のみ削除できる
func (s *postService) Delete(id, userID uint) error {
	// 存在確認を先に行う
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}

	// 所有者チェック
	if err := assertOwner(post.UserID, userID, ErrPostNotOwned); err != nil {
		return err
	}

	return s.postRepo.Delete(id)
}

// Like 投稿にいいねを追加していいね一覧を返す
// 二重いいねは一意制約で検出するため、同時リクエストでも取りこぼさない
func (s *postService) Like(id, userID uint) ([]models.Like, error) {
	if _, err := s.postRepo.FindByID(id); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	if err := s.postRepo.AddLike(userID, id); err != nil {
		return nil, duplicatedAs(err, ErrAlreadyLiked)
	}

	return s.postRepo.ListLikes(id)
}

// Unlike いいねを取り消していいね一覧を返す
func (s *postService) Unlike(id, userID uint) ([]models.Like, error) {
	if _, err := s.postRepo.FindByID(id); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	// いいね済みかチェック
	liked, err := s.postRepo.HasLiked(userID, id)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, ErrNotLiked
	}

	if err := s.postRepo.RemoveLike(userID, id); err != nil {
		return nil, err
	}

	return s.postRepo.ListLikes(id)
}

// AddComment 投稿にコメントを追加
// コメント者の名前とアバターをスナップショットとして保存する
func (s *postService) AddComment(postID, userID uint, text string) (*models.Post, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}

	if err := s.postRepo.AddComment(comment); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(postID)
}

// DeleteComment コメントを削除してコメント一覧を返す
// コメントの作成者のみ削除できる
func (s *postService) DeleteComment(postID, commentID, userID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	// 存在確認を先に行う
	comment, err := s.postRepo.FindComment(postID, commentID)
	if err != nil {
		return nil, notFoundAs(err, ErrCommentNotFound)
	}

	// 所有者チェック（コメントの作成者であること）
	if err := assertOwner(comment.UserID, userID, ErrCommentNotOwned); err != nil {
		return nil, err
	}

	if err := s.postRepo.RemoveComment(postID, commentID); err != nil {
		return nil, err
	}

	return s.postRepo.ListComments(postID)
}
