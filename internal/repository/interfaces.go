// Package repository はデータ永続化のインターフェースとPostgreSQL実装を提供する。
package repository

import (
	"context"

	"github.com/hitoshi/authapi/internal/model"
)

// UserRepository はユーザーデータの参照インターフェース。
type UserRepository interface {
	// FindByUID は指定uidのユーザーを取得する。見つからない場合はnil, nilを返す。
	FindByUID(ctx context.Context, uid string) (*model.User, error)
}

// HealthChecker はデータベースの疎通確認インターフェース。
// *sql.DBがこのインターフェースを満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
