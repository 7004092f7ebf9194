package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testKey = []byte("test-secret-key")
	testNow = time.Unix(1_700_000_000, 0)
)

func fixedClock() time.Time { return testNow }

// signToken はテスト用にHS256でトークンを署名する。
func signToken(t *testing.T, claims jwt.Claims, key []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func validClaims(uid string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{"uid": uid, "exp": exp.Unix()}
}

func TestVerifier_ValidToken_ReturnsAuthenticated(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, validClaims("u1", testNow.Add(time.Hour)), testKey)

	outcome := v.Verify(token)

	uid, ok := outcome.UID()
	if !ok {
		t.Fatalf("Kind = %v, want %v", outcome.Kind(), OutcomeAuthenticated)
	}
	if uid != "u1" {
		t.Errorf("uid = %q, want %q", uid, "u1")
	}
}

func TestVerifier_TypedClaims_ReturnsAuthenticated(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, Claims{
		UID: "u2",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Minute)),
		},
	}, testKey)

	outcome := v.Verify(token)

	if uid, _ := outcome.UID(); uid != "u2" {
		t.Errorf("uid = %q, want %q", uid, "u2")
	}
}

func TestVerifier_ExpiredToken_ReturnsExpired(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, validClaims("u1", testNow.Add(-10*time.Second)), testKey)

	if got := v.Verify(token).Kind(); got != OutcomeExpiredToken {
		t.Errorf("Kind = %v, want %v", got, OutcomeExpiredToken)
	}
}

// expがちょうど現在時刻の場合は期限切れとして扱う
func TestVerifier_ExpEqualsNow_ReturnsExpired(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, validClaims("u1", testNow), testKey)

	if got := v.Verify(token).Kind(); got != OutcomeExpiredToken {
		t.Errorf("Kind = %v, want %v", got, OutcomeExpiredToken)
	}
}

func TestVerifier_WrongKey_ReturnsUnverifiable(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, validClaims("u1", testNow.Add(time.Hour)), []byte("other-key"))

	if got := v.Verify(token).Kind(); got != OutcomeUnverifiable {
		t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
	}
}

// 署名が不正な期限切れトークンは期限切れではなく検証失敗として扱う
func TestVerifier_ExpiredWithBadSignature_ReturnsUnverifiable(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token := signToken(t, validClaims("u1", testNow.Add(-time.Hour)), []byte("other-key"))

	if got := v.Verify(token).Kind(); got != OutcomeUnverifiable {
		t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
	}
}

func TestVerifier_TamperedPayload_ReturnsUnverifiable(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	original := signToken(t, validClaims("u1", testNow.Add(time.Hour)), testKey)
	forged := signToken(t, validClaims("admin", testNow.Add(time.Hour)), []byte("attacker"))

	origParts := strings.Split(original, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := origParts[0] + "." + forgedParts[1] + "." + origParts[2]

	if got := v.Verify(tampered).Kind(); got != OutcomeUnverifiable {
		t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
	}
}

func TestVerifier_AlgNone_ReturnsUnverifiable(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("u1", testNow.Add(time.Hour))).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if got := v.Verify(token).Kind(); got != OutcomeUnverifiable {
		t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
	}
}

func TestVerifier_OtherHMACAlgorithm_ReturnsUnverifiable(t *testing.T) {
	v := NewVerifier(testKey, fixedClock)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims("u1", testNow.Add(time.Hour))).
		SignedString(testKey)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if got := v.Verify(token).Kind(); got != OutcomeUnverifiable {
		t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
	}
}

func TestVerifier_InvalidClaims_ReturnsUnverifiable(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"uidなし", jwt.MapClaims{"exp": testNow.Add(time.Hour).Unix()}},
		{"uidが空", jwt.MapClaims{"uid": "", "exp": testNow.Add(time.Hour).Unix()}},
		{"uidが数値", jwt.MapClaims{"uid": 123, "exp": testNow.Add(time.Hour).Unix()}},
		{"expなし", jwt.MapClaims{"uid": "u1"}},
		{"expが文字列", jwt.MapClaims{"uid": "u1", "exp": "tomorrow"}},
	}

	v := NewVerifier(testKey, fixedClock)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, tt.claims, testKey)
			if got := v.Verify(token).Kind(); got != OutcomeUnverifiable {
				t.Errorf("Kind = %v, want %v", got, OutcomeUnverifiable)
			}
		})
	}
}

func TestVerifier_MalformedStructure_ReturnsUnverifiable(t *testing.T) {
	tests := []string{
		"abc",
		"a.b",
		"a.b.c",
		"!!!.???.***",
		"eyJhbGciOiJIUzI1NiJ9..",
		"a.b.c.d",
	}

	v := NewVerifier(testKey, fixedClock)
	for _, credential := range tests {
		if got := v.Verify(credential).Kind(); got != OutcomeUnverifiable {
			t.Errorf("Verify(%q) Kind = %v, want %v", credential, got, OutcomeUnverifiable)
		}
	}
}

// 生成後に呼び出し元が鍵を書き換えても検証結果は変わらない
func TestVerifier_KeyIsCopied(t *testing.T) {
	key := []byte("mutable-key")
	v := NewVerifier(key, fixedClock)
	token := signToken(t, validClaims("u1", testNow.Add(time.Hour)), []byte("mutable-key"))

	key[0] = 'X'

	if got := v.Verify(token).Kind(); got != OutcomeAuthenticated {
		t.Errorf("Kind = %v, want %v", got, OutcomeAuthenticated)
	}
}

func TestVerifier_NilClock_UsesCurrentTime(t *testing.T) {
	v := NewVerifier(testKey, nil)
	token := signToken(t, validClaims("u1", time.Now().Add(time.Hour)), testKey)

	if got := v.Verify(token).Kind(); got != OutcomeAuthenticated {
		t.Errorf("Kind = %v, want %v", got, OutcomeAuthenticated)
	}
}
