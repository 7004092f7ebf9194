package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hitoshi/authapi/internal/model"
)

const findUserByUIDQuery = `SELECT uid, email, created_at, updated_at, last_login, active, metadata, email_verified
	FROM users WHERE uid = $1`

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByUID は指定uidのユーザーを取得する。見つからない場合はnilを返す。
// users.uidはUUID型のため、UUIDとして解釈できないuidは問い合わせずに未検出とする。
func (r *PostgresUserRepo) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	id, err := uuid.Parse(uid)
	if err != nil {
		return nil, nil
	}

	var (
		user      model.User
		lastLogin sql.NullTime
		metadata  sql.NullString
	)
	err = r.db.QueryRowContext(ctx, findUserByUIDQuery, id.String()).Scan(
		&user.UID,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLogin,
		&user.Active,
		&metadata,
		&user.EmailVerified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by uid: %w", err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}
	if metadata.Valid {
		m := metadata.String
		user.Metadata = &m
	}

	return &user, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
