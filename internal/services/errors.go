package services

import (
	"errors"

	"gorm.io/gorm"
)

// サービス層のエラー
// メッセージはそのままAPIレスポンスに使われる
var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrInvalidToken       = errors.New("Token is not valid")
	ErrUserNotFound       = errors.New("User not found")
	ErrNoProfile          = errors.New("There is no profile for this user")
	ErrProfileNotFound    = errors.New("Profile not found")
	ErrPostNotFound       = errors.New("No Post Found")
	ErrPostNotOwned       = errors.New("User not auth")
	ErrAlreadyLiked       = errors.New("post already like")
	ErrNotLiked           = errors.New("post has not liked")
	ErrCommentNotFound    = errors.New("Comment does not exist")
	ErrCommentNotOwned    = errors.New("User not Authorized")
	ErrNoGithubProfile    = errors.New("No Github profile found")
	ErrInvalidDate        = errors.New("Invalid date format")
)

// notFoundAs レコード未検出を指定のドメインエラーに変換する
// 接続障害など、それ以外のエラーはそのまま呼び出し元へ返す
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// duplicatedAs 一意制約違反を指定のドメインエラーに変換する
func duplicatedAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// assertOwner 所有者チェック
// リソースの存在確認を済ませてから呼ぶこと
func assertOwner(ownerID, callerID uint, denied error) error {
	if ownerID != callerID {
		return denied
	}
	return nil
}
