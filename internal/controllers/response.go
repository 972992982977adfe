package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors バリデーションエラーをフィールドごとのメッセージ一覧に変換する
func bindingErrors(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, gin.H{
				"msg":   validationMessage(fe),
				"param": strings.ToLower(fe.Field()),
			})
		}
		return gin.H{"errors": msgs}
	}
	return gin.H{"errors": []gin.H{{"msg": err.Error()}}}
}

// validationMessage フィールドエラーをメッセージに変換する
func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "include valid email"
	case "min":
		return fmt.Sprintf("please enter %s with %s or more characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// msgErrors 単一メッセージのエラー一覧レスポンスを作成する
func msgErrors(msg string) gin.H {
	return gin.H{"errors": []gin.H{{"msg": msg}}}
}
