package generator

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/yersonargotev/nanobana/pkg/domain"

	"google.golang.org/genai"
)

// ErrNoImage はレスポンスは受け取れたが画像ペイロードが無かったことを示します。
// 通信エラーとは区別され、呼び出し側はドメイン固有の失敗文言を組み立てます。
var ErrNoImage = errors.New("no image data in response")

// base64MinLen 未満のテキストはたまたま base64 字母だけで構成された
// 短い応答文の可能性があるため、画像として扱いません。
const base64MinLen = 1000

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// ScanParts はパーツ列を先頭から走査し、最初の画像ペイロードを返します。
// 一致条件は (a) インラインデータ、または (b) base64 らしきテキスト
// （字母チェックを通過しかつ base64MinLen 文字以上）です。
// 最初の一致で打ち切り、以降のパーツは見ません。
func ScanParts(parts []*genai.Part) (*domain.ImagePayload, bool) {
	for _, part := range parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &domain.ImagePayload{
				Data:     part.InlineData.Data,
				MimeType: part.InlineData.MIMEType,
			}, true
		}
		if len(part.Text) >= base64MinLen && base64Pattern.MatchString(part.Text) {
			return &domain.ImagePayload{
				Base64:   part.Text,
				MimeType: "image/png",
			}, true
		}
	}
	return nil, false
}

// ScanResponse は先頭の候補からペイロードを抽出します。
// 画像が無く FinishReason が異常な場合は、ブロックされた生成として
// ErrNoImage ではなく理由付きのエラーを返します。
func ScanResponse(resp *genai.GenerateContentResponse) (*domain.ImagePayload, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		if payload, ok := ScanParts(candidate.Content.Parts); ok {
			return payload, nil
		}
	}

	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("generation stopped abnormally (FinishReason: %s)", candidate.FinishReason)
	}

	return nil, ErrNoImage
}
