package generator

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ClassifyError は外部サービスのエラーを操作者向けの固定文言へ変換します。
// 文言変換のみでリトライ等の回復処理は行いません。判定順は
// メッセージ部分文字列 → 構造化ステータスコード → そのままラップ、です。
func ClassifyError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key not valid"):
		return "Invalid API key. Check your GEMINI_API_KEY configuration."
	case strings.Contains(msg, "permission denied"):
		return "Permission denied. The configured API key cannot use this model."
	case strings.Contains(msg, "quota exceeded"):
		return "API quota exceeded. Try again later."
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400:
			return "The Gemini API rejected the request as malformed."
		case 403:
			return "Permission denied. The configured API key cannot use this model."
		case 500:
			return "The Gemini API returned an internal server error."
		}
	}

	return fmt.Sprintf("image generation failed: %v", err)
}

// isFatalAPIError は続行しても無駄なエラー（認証・権限・クォータ）かを
// 判定します。バッチやストーリーのループはこれで即座に打ち切られます。
func isFatalAPIError(err error) bool {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "api key not valid") ||
		strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "quota exceeded") {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 401 || apiErr.Code == 403 || apiErr.Code == 429
	}
	return false
}
