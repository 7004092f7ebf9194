// Package auth はAuthorizationヘッダーのBearerトークンを検証し、
// 検証結果を5種類のOutcomeのいずれかに分類する。
package auth

// OutcomeKind は検証結果の種別。
type OutcomeKind int

const (
	// OutcomeBadFormat はヘッダーは存在するがBearer形式として解釈できないことを示す。
	OutcomeBadFormat OutcomeKind = iota + 1
	// OutcomeMissingHeader はAuthorizationヘッダーが存在しないことを示す。
	OutcomeMissingHeader
	// OutcomeUnverifiable は署名検証またはクレームのデコードに失敗したことを示す。
	OutcomeUnverifiable
	// OutcomeExpiredToken は署名は正しいが有効期限を過ぎていることを示す。
	OutcomeExpiredToken
	// OutcomeAuthenticated は署名と有効期限がともに有効であることを示す。
	OutcomeAuthenticated
)

// String はログ・メトリクスのラベル用の名前を返す。
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeBadFormat:
		return "bad_format"
	case OutcomeMissingHeader:
		return "missing_header"
	case OutcomeUnverifiable:
		return "unverifiable"
	case OutcomeExpiredToken:
		return "expired_token"
	case OutcomeAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Outcome は1リクエストの検証結果。常にいずれか1種類のみが有効となる。
// フィールドは非公開で、下記のコンストラクタ以外では生成できない。
type Outcome struct {
	kind OutcomeKind
	uid  string
}

// BadFormat はOutcomeBadFormatを返す。
func BadFormat() Outcome { return Outcome{kind: OutcomeBadFormat} }

// MissingHeader はOutcomeMissingHeaderを返す。
func MissingHeader() Outcome { return Outcome{kind: OutcomeMissingHeader} }

// Unverifiable はOutcomeUnverifiableを返す。
func Unverifiable() Outcome { return Outcome{kind: OutcomeUnverifiable} }

// ExpiredToken はOutcomeExpiredTokenを返す。
func ExpiredToken() Outcome { return Outcome{kind: OutcomeExpiredToken} }

// Authenticated は検証済みのuidを保持するOutcomeAuthenticatedを返す。
func Authenticated(uid string) Outcome { return Outcome{kind: OutcomeAuthenticated, uid: uid} }

// Kind は検証結果の種別を返す。
func (o Outcome) Kind() OutcomeKind { return o.kind }

// UID は認証済みの場合にuidを返す。それ以外ではokがfalseとなる。
func (o Outcome) UID() (uid string, ok bool) {
	if o.kind != OutcomeAuthenticated {
		return "", false
	}
	return o.uid, true
}

// Authenticator はヘッダー解析とトークン検証をまとめて実行する。
// 状態を持たないため、複数goroutineから同時に利用できる。
type Authenticator struct {
	verifier *Verifier
}

// NewAuthenticator はAuthenticatorを生成する。
func NewAuthenticator(verifier *Verifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

// Authenticate は生のAuthorizationヘッダー値を検証結果に分類する。
// presentはヘッダーが送信されたかどうかを表し、空文字のヘッダーとヘッダー欠落を区別する。
func (a *Authenticator) Authenticate(raw string, present bool) Outcome {
	credential, outcome, ok := ParseHeader(raw, present)
	if !ok {
		return outcome
	}
	return a.verifier.Verify(credential)
}
