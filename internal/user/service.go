// Package user はユーザー参照のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/hitoshi/authapi/internal/model"
	"github.com/hitoshi/authapi/internal/repository"
)

// LookupStatus はユーザー参照の結果種別。
type LookupStatus int

const (
	// LookupFound はユーザーが見つかったことを示す。
	LookupFound LookupStatus = iota + 1
	// LookupNotFound はユーザーが存在しないことを示す。
	LookupNotFound
	// LookupError は参照中にエラーが発生したことを示す。
	LookupError
)

// String はメトリクスのラベル用の名前を返す。
func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupError:
		return "error"
	default:
		return "unknown"
	}
}

// LookupResult はユーザー参照の結果。
// StatusがLookupFoundの場合のみUserが、LookupErrorの場合のみErrが設定される。
type LookupResult struct {
	Status LookupStatus
	User   *model.User
	Err    error
}

// LookupRecorder はユーザー参照の結果を記録するインターフェース。
// metrics.Collectorがこのインターフェースを満たす。
type LookupRecorder interface {
	RecordLookup(status string, duration time.Duration)
}

// Service はユーザー参照のサービス層。
type Service struct {
	userRepo repository.UserRepository
	timeout  time.Duration
	recorder LookupRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// timeoutが0以下の場合はリクエストコンテキストの期限のみに従う。recorderはnilでもよい。
func NewService(userRepo repository.UserRepository, timeout time.Duration, recorder LookupRecorder) *Service {
	return &Service{
		userRepo: userRepo,
		timeout:  timeout,
		recorder: recorder,
	}
}

// Lookup はuidに対応するユーザーを参照する。
// リトライは行わず、リポジトリのエラーはそのままLookupErrorとして返す。
func (s *Service) Lookup(ctx context.Context, uid string) LookupResult {
	start := time.Now()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := s.lookup(ctx, uid)

	if s.recorder != nil {
		s.recorder.RecordLookup(result.Status.String(), time.Since(start))
	}
	return result
}

func (s *Service) lookup(ctx context.Context, uid string) LookupResult {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		return LookupResult{Status: LookupError, Err: fmt.Errorf("failed to look up user %s: %w", uid, err)}
	}
	if user == nil {
		return LookupResult{Status: LookupNotFound}
	}
	return LookupResult{Status: LookupFound, User: user}
}
