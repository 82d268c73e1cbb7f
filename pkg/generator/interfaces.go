package generator

import (
	"context"

	"github.com/yersonargotev/nanobana/pkg/domain"

	"google.golang.org/genai"
)

// GenerativeModel は生成 API との通信を抽象化する窓口です。
type GenerativeModel interface {
	// GenerateWithParts は指定モデルにパーツ列を送信し、生のレスポンスを返します。
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error)
}

// GenerateOptions は1回の生成呼び出しのオプションです。
type GenerateOptions struct {
	Seed *int32
}

// ImageStore は生成画像の永続化を抽象化するインターフェースです。
type ImageStore interface {
	// EnsureDir は出力ディレクトリを冪等に作成してそのパスを返します。
	EnsureDir() (string, error)
	// SavePayload はペイロードをデコードして書き出し、絶対パスを返します。
	SavePayload(payload *domain.ImagePayload, filename string) (string, error)
}

// InputResolver は入力ファイル参照の解決を抽象化するインターフェースです。
type InputResolver interface {
	Find(reference string) domain.FileSearchResult
}

// PreviewLauncher は書き出し済みファイルのプレビュー起動を抽象化します。
// 失敗しても結果に影響させない、完全にベストエフォートの操作です。
type PreviewLauncher interface {
	OpenAll(ctx context.Context, paths []string)
}
