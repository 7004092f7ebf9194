package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethod は受け付ける唯一の署名アルゴリズム。
var signingMethod = jwt.SigningMethodHS256

// Claims は検証済みトークンに含まれるクレーム。
// 署名検証が成功するまで値を読んではならない。
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// Verifier はHS256で署名されたJWTを検証する。
// 署名鍵は生成時にコピーされ、以降変更されない。
type Verifier struct {
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
}

// NewVerifier はVerifierを生成する。
// nowがnilの場合はtime.Nowを使用する。
func NewVerifier(key []byte, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	k := make([]byte, len(key))
	copy(k, key)

	return &Verifier{
		key: k,
		now: now,
		// 有効期限は署名検証の後に自前で判定するため、ライブラリのクレーム検証は無効にする
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signingMethod.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Verify はクレデンシャルを検証し、Unverifiable・ExpiredToken・Authenticatedのいずれかを返す。
//
// 判定順序:
//
//	構造のデコード → 署名検証 → クレームの検証 → 有効期限
//
// 有効期限は署名検証に成功した後にのみ判定する。
func (v *Verifier) Verify(credential string) Outcome {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(credential, claims, v.keyFunc)
	if err != nil || !token.Valid {
		return Unverifiable()
	}

	if claims.UID == "" || claims.ExpiresAt == nil {
		return Unverifiable()
	}

	if !claims.ExpiresAt.Time.After(v.now()) {
		return ExpiredToken()
	}

	return Authenticated(claims.UID)
}

func (v *Verifier) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return v.key, nil
}
