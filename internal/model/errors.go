// Package model はドメインモデルを定義する。
package model

import "fmt"

// ErrorCode はクライアントに返す機械可読なエラーコード。
type ErrorCode string

// GET /api/auth/user が返すエラーコード。この集合は閉じており、追加してはならない。
const (
	ErrCodeBadHeader           ErrorCode = "BAD_HEADER"
	ErrCodeNotAuthenticated    ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeBadToken            ErrorCode = "BAD_TOKEN"
	ErrCodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	ErrCodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrCodeRateLimited はレート制限ミドルウェアが返すエラーコード。
// エンドポイント到達前に返されるため上記の集合には含めない。
const ErrCodeRateLimited ErrorCode = "RATE_LIMITED"

// APIError はクライアントに返すエラー情報を表す。
type APIError struct {
	Message string
	Code    ErrorCode
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewBadHeaderError はAuthorizationヘッダーの形式不正エラーを生成する。
func NewBadHeaderError() *APIError {
	return &APIError{
		Message: "The 'Authorization' header is improperly formatted",
		Code:    ErrCodeBadHeader,
	}
}

// NewMissingHeaderError はAuthorizationヘッダー欠落エラーを生成する。
func NewMissingHeaderError() *APIError {
	return &APIError{
		Message: "The request is missing an 'Authorization' header",
		Code:    ErrCodeNotAuthenticated,
	}
}

// NewUnverifiableTokenError は署名検証に失敗したトークンのエラーを生成する。
func NewUnverifiableTokenError() *APIError {
	return &APIError{
		Message: "The JWT could not be verified by the server",
		Code:    ErrCodeBadToken,
	}
}

// NewExpiredTokenError は有効期限切れトークンのエラーを生成する。
// エラーコードは署名検証失敗と同じBAD_TOKENを使う。
func NewExpiredTokenError() *APIError {
	return &APIError{
		Message: "The JWT has already expired",
		Code:    ErrCodeBadToken,
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Message: "The requested user was not found",
		Code:    ErrCodeUserNotFound,
	}
}

// NewInternalServerError は内部エラーを生成する。
// 詳細はログにのみ記録し、メッセージは固定とする。
func NewInternalServerError() *APIError {
	return &APIError{
		Message: "Something went wrong",
		Code:    ErrCodeInternalServerError,
	}
}

// NewRateLimitedError はレート制限超過エラーを生成する。
func NewRateLimitedError() *APIError {
	return &APIError{
		Message: "Too many requests. Please try again later.",
		Code:    ErrCodeRateLimited,
	}
}
