// Package model はドメインモデルを定義する。
package model

import "time"

// User は認証サーバーに登録されたユーザーを表す。
// LastLogin と Metadata は未設定の場合nilとなる。
type User struct {
	UID           string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLogin     *time.Time
	Active        bool
	Metadata      *string
	EmailVerified bool
}
