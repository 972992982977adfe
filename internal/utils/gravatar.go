package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL メールアドレスからGravatarのURLを生成する
// サイズ200px、レーティングpg、未登録の場合はデフォルト画像(mm)
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
