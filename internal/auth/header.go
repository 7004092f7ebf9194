package auth

import "strings"

// BearerScheme はAuthorizationヘッダーの固定プレフィックス（大文字小文字を区別する）。
const BearerScheme = "Bearer"

// ParseHeader はAuthorizationヘッダー値からクレデンシャルを取り出す。
// 形式は "Bearer" + 半角スペース1つ + 空でないクレデンシャル。
// okがfalseの場合、outcomeにはMissingHeaderまたはBadFormatが入る。
func ParseHeader(raw string, present bool) (credential string, outcome Outcome, ok bool) {
	if !present {
		return "", MissingHeader(), false
	}

	rest, found := strings.CutPrefix(raw, BearerScheme+" ")
	if !found || rest == "" || strings.ContainsAny(rest, " \t") {
		return "", BadFormat(), false
	}

	return rest, Outcome{}, true
}
