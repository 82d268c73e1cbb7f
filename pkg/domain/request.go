package domain

// OutputFormat は保存する画像のファイル形式です。
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"
)

// Extension はファイル名に付与する拡張子を返します。
func (f OutputFormat) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return "png"
}

// MimeType は対応する MIME タイプを返します。
func (f OutputFormat) MimeType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// GenerateRequest はテキストからの画像生成（バッチ展開込み）の要求です。
// Seed を *int64 にすることで「未指定＝ランダム」を表現しています。
type GenerateRequest struct {
	Prompt      string
	Count       int
	Styles      []string
	Variations  []string
	Seed        *int64
	Format      OutputFormat
	OpenPreview bool
}

// EditRequest は既存画像1枚に対する編集・修復の要求です。
type EditRequest struct {
	Prompt      string
	Image       string // 入力画像のファイル名または絶対パス
	Format      OutputFormat
	OpenPreview bool
}

// RemixRequest は複数の入力画像を合成する要求です。最低2枚が必要です。
type RemixRequest struct {
	Prompt      string
	Images      []string
	Format      OutputFormat
	OpenPreview bool
}

// StoryRequest は連続画像（物語・手順など）の生成要求です。
type StoryRequest struct {
	Prompt       string
	Steps        int
	SequenceType string // story | process | tutorial | timeline
	Seed         *int64
	Format       OutputFormat
	OpenPreview  bool
}

// IconRequest はアイコン生成の要求です。
type IconRequest struct {
	Description string
	Style       string // flat | 3d | outline | pixel
	Background  string // transparent | white | colored
	Count       int
	OpenPreview bool
}

// PatternRequest はパターン生成の要求です。
type PatternRequest struct {
	Description string
	PatternType string // seamless | geometric | organic | abstract
	Density     string // sparse | medium | dense
	Count       int
	OpenPreview bool
}

// DiagramRequest は図解生成の要求です。
type DiagramRequest struct {
	Description string
	DiagramType string // flowchart | mindmap | architecture | network | timeline
	LabelStyle  string // minimal | detailed | none
	Format      OutputFormat
	OpenPreview bool
}

// GenerationResult はツール呼び出し1回分の結果です。
// Success が true のとき Files は必ず1件以上を含みます。
type GenerationResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ImagePayload はレスポンスから抽出した画像データです。
// Data（インラインバイナリ）か Base64（テキストフォールバック）の
// どちらか一方だけが入ります。デコードは保存側の責務です。
type ImagePayload struct {
	Data     []byte
	Base64   string
	MimeType string
}

// FileSearchResult は入力ファイル探索の結果です。
// 見つからなかった場合、Searched に実際に探索したディレクトリを保持します。
type FileSearchResult struct {
	Found    bool
	Path     string
	Searched []string
}
