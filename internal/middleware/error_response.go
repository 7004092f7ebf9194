package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hitoshi/authapi/internal/model"
)

// ErrorResponseBody はAPIエラーレスポンスのJSON形式。
type ErrorResponseBody struct {
	Message   string          `json:"message"`
	ErrorCode model.ErrorCode `json:"error_code"`
}

// WriteJSON はbodyをJSONとして書き込む。
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write json response", slog.String("error", err.Error()))
	}
}

// WriteErrorResponse はエラーレスポンスを書き込む。
// ミドルウェアとハンドラーで同じ形式のエラーレスポンスを返すために使用する。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	WriteJSON(w, statusCode, ErrorResponseBody{
		Message:   apiErr.Message,
		ErrorCode: apiErr.Code,
	})
}
