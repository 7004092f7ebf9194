package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hitoshi/authapi/internal/auth"
	"github.com/hitoshi/authapi/internal/middleware"
	"github.com/hitoshi/authapi/internal/user"
)

// Authenticator はAuthorizationヘッダーを検証するインターフェース。
type Authenticator interface {
	Authenticate(raw string, present bool) auth.Outcome
}

// UserLookup は認証済みユーザーを参照するインターフェース。
type UserLookup interface {
	Lookup(ctx context.Context, uid string) user.LookupResult
}

// OutcomeRecorder は認証結果を記録するインターフェース。
type OutcomeRecorder interface {
	RecordOutcome(outcome string)
}

// UserHandler は認証済みユーザーのプロフィールを返すHTTPハンドラー。
type UserHandler struct {
	authenticator Authenticator
	lookup        UserLookup
	recorder      OutcomeRecorder
}

// NewUserHandler はUserHandlerを生成する。recorderはnilでもよい。
func NewUserHandler(authenticator Authenticator, lookup UserLookup, recorder OutcomeRecorder) *UserHandler {
	return &UserHandler{
		authenticator: authenticator,
		lookup:        lookup,
		recorder:      recorder,
	}
}

// GetUser は認証済みユーザーのプロフィールを返す。
// GET /api/auth/user
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	raw, present := authorizationHeader(r)

	outcome := h.authenticator.Authenticate(raw, present)
	if h.recorder != nil {
		h.recorder.RecordOutcome(outcome.Kind().String())
	}

	if resp, status, ok := MapOutcome(outcome); ok {
		middleware.WriteJSON(w, status, resp)
		return
	}

	uid, _ := outcome.UID()
	middleware.SetUserID(r.Context(), uid)

	result := h.lookup.Lookup(r.Context(), uid)
	if result.Status == user.LookupError {
		slog.Error("user lookup failed",
			slog.String("user_id", uid),
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
			slog.String("error", errorString(result.Err)),
		)
	}

	resp, status := MapLookup(result)
	middleware.WriteJSON(w, status, resp)
}

// authorizationHeader はヘッダーの欠落と空文字列を区別して取り出す。
// 複数指定された場合は先頭の値を使う。
func authorizationHeader(r *http.Request) (string, bool) {
	values, present := r.Header["Authorization"]
	if !present || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
