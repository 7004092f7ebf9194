package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hitoshi/authapi/internal/auth"
	"github.com/hitoshi/authapi/internal/model"
	"github.com/hitoshi/authapi/internal/user"
)

var (
	testKey = []byte("handler-test-secret-key")
	testNow = time.Unix(1_700_000_000, 0)
)

// --- モック定義 ---

// mockUserLookup はUserLookupのモック実装。
type mockUserLookup struct {
	lookupFn func(ctx context.Context, uid string) user.LookupResult
	calls    []string
}

func (m *mockUserLookup) Lookup(ctx context.Context, uid string) user.LookupResult {
	m.calls = append(m.calls, uid)
	if m.lookupFn != nil {
		return m.lookupFn(ctx, uid)
	}
	return user.LookupResult{Status: user.LookupNotFound}
}

// mockOutcomeRecorder はOutcomeRecorderのモック実装。
type mockOutcomeRecorder struct {
	outcomes []string
}

func (m *mockOutcomeRecorder) RecordOutcome(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

// --- ヘルパー ---

func newTestAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator(auth.NewVerifier(testKey, func() time.Time { return testNow }))
}

func signTestToken(t *testing.T, uid string, exp time.Time, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func testUser(uid string) *model.User {
	lastLogin := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	metadata := `{"plan":"free"}`
	return &model.User{
		UID:           uid,
		Email:         uid + "@example.com",
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		LastLogin:     &lastLogin,
		Active:        true,
		Metadata:      &metadata,
		EmailVerified: true,
	}
}

func foundLookup(users map[string]*model.User) *mockUserLookup {
	return &mockUserLookup{
		lookupFn: func(ctx context.Context, uid string) user.LookupResult {
			if u, ok := users[uid]; ok {
				return user.LookupResult{Status: user.LookupFound, User: u}
			}
			return user.LookupResult{Status: user.LookupNotFound}
		},
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v\nraw: %s", err, w.Body.String())
	}
	return body
}

// mockUserRepo はrepository.UserRepositoryのモック実装。
type mockUserRepo struct {
	users map[string]*model.User
}

func (m *mockUserRepo) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	return m.users[uid], nil
}

// syncBuffer はサーバーgoroutineとテストgoroutineから共有するログ出力先。
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
