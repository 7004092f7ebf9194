package handler

import (
	"net/http"
	"time"

	"github.com/hitoshi/authapi/internal/auth"
	"github.com/hitoshi/authapi/internal/middleware"
	"github.com/hitoshi/authapi/internal/model"
	"github.com/hitoshi/authapi/internal/user"
)

// Response は GET /api/auth/user が返すレスポンスボディ。
// ErrorResponse と UserResponse のいずれかで、JSONはタグなしのフラットな形式になる。
type Response interface {
	isResponse()
}

// ErrorResponse はエラー時のレスポンスボディ。
type ErrorResponse middleware.ErrorResponseBody

func (ErrorResponse) isResponse() {}

// UserResponse は認証済みユーザーのプロフィール。
type UserResponse struct {
	UID           string     `json:"uid"`
	Email         string     `json:"email"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLogin     *time.Time `json:"last_login"`
	Active        bool       `json:"active"`
	Metadata      *string    `json:"metadata"`
	EmailVerified bool       `json:"email_verified"`
}

func (UserResponse) isResponse() {}

func newErrorResponse(apiErr *model.APIError) ErrorResponse {
	return ErrorResponse{Message: apiErr.Message, ErrorCode: apiErr.Code}
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		UID:           u.UID,
		Email:         u.Email,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
		LastLogin:     u.LastLogin,
		Active:        u.Active,
		Metadata:      u.Metadata,
		EmailVerified: u.EmailVerified,
	}
}

// MapOutcome は認証失敗の結果をレスポンスとステータスに変換する。
// 認証に成功した場合はokがfalseとなり、呼び出し側はユーザー参照に進む。
func MapOutcome(outcome auth.Outcome) (resp Response, status int, ok bool) {
	switch outcome.Kind() {
	case auth.OutcomeBadFormat:
		return newErrorResponse(model.NewBadHeaderError()), http.StatusBadRequest, true
	case auth.OutcomeMissingHeader:
		return newErrorResponse(model.NewMissingHeaderError()), http.StatusUnauthorized, true
	case auth.OutcomeUnverifiable:
		return newErrorResponse(model.NewUnverifiableTokenError()), http.StatusUnauthorized, true
	case auth.OutcomeExpiredToken:
		return newErrorResponse(model.NewExpiredTokenError()), http.StatusUnauthorized, true
	case auth.OutcomeAuthenticated:
		return nil, 0, false
	default:
		// ゼロ値のOutcomeは構築経路が存在しないため、内部エラーとして扱う
		return newErrorResponse(model.NewInternalServerError()), http.StatusInternalServerError, true
	}
}

// MapLookup はユーザー参照の結果をレスポンスとステータスに変換する。
// エラーの詳細はボディに含めない。
func MapLookup(result user.LookupResult) (Response, int) {
	switch result.Status {
	case user.LookupFound:
		if result.User == nil {
			break
		}
		return newUserResponse(result.User), http.StatusOK
	case user.LookupNotFound:
		return newErrorResponse(model.NewUserNotFoundError()), http.StatusNotFound
	}
	return newErrorResponse(model.NewInternalServerError()), http.StatusInternalServerError
}
