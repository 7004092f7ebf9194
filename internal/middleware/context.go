// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

var (
	requestInfoContextKey = contextKey("request_info")
	requestIDContextKey   = contextKey("request_id")
)

// ErrNoUserID は認証済みユーザーIDがコンテキストにないことを示す。
var ErrNoUserID = errors.New("user ID not found in context")

// requestInfo はハンドラーが設定した値を外側のミドルウェアへ渡すための入れ物。
// ロギングミドルウェアが生成し、ハンドラーが書き込む。1リクエスト内でのみ使用する。
type requestInfo struct {
	userID string
}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	if info, ok := ctx.Value(requestInfoContextKey).(*requestInfo); ok {
		return ctx, info
	}
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoContextKey, info), info
}

// SetUserID は検証済みのユーザーIDをリクエストに記録する。
// ロギングミドルウェアを通過していないコンテキストでは何もしない。
func SetUserID(ctx context.Context, userID string) {
	if info, ok := ctx.Value(requestInfoContextKey).(*requestInfo); ok {
		info.userID = userID
	}
}

// UserIDFromContext はリクエストコンテキストから認証済みユーザーIDを取得する。
func UserIDFromContext(ctx context.Context) (string, error) {
	info, ok := ctx.Value(requestInfoContextKey).(*requestInfo)
	if !ok || info.userID == "" {
		return "", ErrNoUserID
	}
	return info.userID, nil
}

// ContextWithUserID はユーザーIDを設定済みのコンテキストを返す。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	ctx, info := withRequestInfo(ctx)
	info.userID = userID
	return ctx
}

// RequestIDFromContext はリクエストIDを返す。未設定の場合は空文字。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
