package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/yersonargotev/nanobana/pkg/domain"
	"github.com/yersonargotev/nanobana/pkg/imgutil"
	"github.com/yersonargotev/nanobana/pkg/prompt"
	"github.com/yersonargotev/nanobana/pkg/sl"
	"github.com/yersonargotev/nanobana/pkg/storage"

	"google.golang.org/genai"
)

const (
	// inlineBudget を超える入力画像は JPEG に再圧縮してから添付します。
	inlineBudget       = 4 << 20
	compressionQuality = 85

	defaultStorySteps = 4
	minStorySteps     = 2
	maxStorySteps     = 8
)

// Service は8つのツール操作すべてを担うオーケストレーターです。
// リクエスト間で共有する可変状態は持たず、各呼び出しは独立しています。
type Service struct {
	model     GenerativeModel
	modelName string
	store     ImageStore
	finder    InputResolver
	preview   PreviewLauncher
}

// NewService は依存関係を注入して Service を初期化します。
// preview は nil を許容します（プレビューなし動作）。
func NewService(model GenerativeModel, modelName string, store ImageStore, finder InputResolver, preview PreviewLauncher) (*Service, error) {
	if model == nil {
		return nil, fmt.Errorf("model is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("modelName is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if finder == nil {
		return nil, fmt.Errorf("finder is required")
	}
	return &Service{
		model:     model,
		modelName: modelName,
		store:     store,
		finder:    finder,
		preview:   preview,
	}, nil
}

// Generate はバッチ展開したプロンプトを1件ずつ順番に生成します。
// 途中の失敗は最初のエラーだけ控えて続行し、1枚でも保存できれば成功です。
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) *domain.GenerationResult {
	prompts := prompt.Expand(req.Prompt, req.Styles, req.Variations, req.Count)

	files, firstErr := s.generateSequence(ctx, prompts, req.Seed, req.Format)
	if len(files) == 0 {
		return s.failure("failed to generate image", firstErr)
	}

	s.maybePreview(ctx, req.OpenPreview, files)
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Generated %d image(s) from %d prompt variant(s)", len(files), len(prompts)),
		Files:   files,
	}
}

// Icon はアイコン用の定型プロンプトを組み立てて Generate 相当を行います。
func (s *Service) Icon(ctx context.Context, req domain.IconRequest) *domain.GenerationResult {
	base := prompt.Icon(req.Description, req.Style, req.Background)
	prompts := prompt.Expand(base, nil, nil, req.Count)

	files, firstErr := s.generateSequence(ctx, prompts, nil, domain.FormatPNG)
	if len(files) == 0 {
		return s.failure("failed to generate icon", firstErr)
	}

	s.maybePreview(ctx, req.OpenPreview, files)
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Generated %d icon(s)", len(files)),
		Files:   files,
	}
}

// Pattern はパターン用の定型プロンプトを組み立てて生成します。
func (s *Service) Pattern(ctx context.Context, req domain.PatternRequest) *domain.GenerationResult {
	base := prompt.Pattern(req.Description, req.PatternType, req.Density)
	prompts := prompt.Expand(base, nil, nil, req.Count)

	files, firstErr := s.generateSequence(ctx, prompts, nil, domain.FormatPNG)
	if len(files) == 0 {
		return s.failure("failed to generate pattern", firstErr)
	}

	s.maybePreview(ctx, req.OpenPreview, files)
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Generated %d pattern(s)", len(files)),
		Files:   files,
	}
}

// Diagram は図解用の定型プロンプトで1枚生成します。
func (s *Service) Diagram(ctx context.Context, req domain.DiagramRequest) *domain.GenerationResult {
	p := prompt.Diagram(req.Description, req.DiagramType, req.LabelStyle)

	path, err := s.generateOne(ctx, p, []*genai.Part{{Text: p}}, nil, req.Format, 0)
	if err != nil {
		return s.failure("failed to generate diagram", err)
	}

	s.maybePreview(ctx, req.OpenPreview, []string{path})
	return &domain.GenerationResult{
		Success: true,
		Message: "Generated diagram",
		Files:   []string{path},
	}
}

// Edit は入力画像1枚とプロンプトで編集を行います。
func (s *Service) Edit(ctx context.Context, req domain.EditRequest) *domain.GenerationResult {
	if strings.TrimSpace(req.Prompt) == "" {
		return validationFailure("edit_image requires a prompt")
	}
	return s.editInternal(ctx, req, req.Prompt, "edit")
}

// Restore は修復用の定型プロンプト（上書き可）で Edit と同じ経路を通ります。
func (s *Service) Restore(ctx context.Context, req domain.EditRequest) *domain.GenerationResult {
	p := strings.TrimSpace(req.Prompt)
	if p == "" {
		p = prompt.RestoreDefault
	}
	return s.editInternal(ctx, req, p, "restore")
}

func (s *Service) editInternal(ctx context.Context, req domain.EditRequest, promptText, verb string) *domain.GenerationResult {
	if strings.TrimSpace(req.Image) == "" {
		return validationFailure(fmt.Sprintf("%s_image requires exactly one input image", verb))
	}

	imgPart, failRes := s.loadInputPart(ctx, req.Image)
	if failRes != nil {
		return failRes
	}

	parts := []*genai.Part{{Text: promptText}, imgPart}
	path, err := s.generateOne(ctx, promptText, parts, nil, req.Format, 0)
	if err != nil {
		// 応答はあったが画像が無いケースも、ここでは成功扱いにしない
		return s.failure(fmt.Sprintf("failed to %s image", verb), err)
	}

	s.maybePreview(ctx, req.OpenPreview, []string{path})
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Image %sed successfully", verb),
		Files:   []string{path},
	}
}

// Remix は2枚以上の入力画像を1回の呼び出しで合成します。
// 枚数バリデーションに失敗した場合、外部呼び出しは一切行いません。
func (s *Service) Remix(ctx context.Context, req domain.RemixRequest) *domain.GenerationResult {
	if len(req.Images) < 2 {
		return validationFailure(fmt.Sprintf(
			"remix_image requires at least 2 input images, got %d", len(req.Images)))
	}

	parts := []*genai.Part{{Text: req.Prompt}}
	for _, ref := range req.Images {
		imgPart, failRes := s.loadInputPart(ctx, ref)
		if failRes != nil {
			return failRes
		}
		parts = append(parts, imgPart)
	}

	path, err := s.generateOne(ctx, req.Prompt, parts, nil, req.Format, 0)
	if err != nil {
		return s.failure("failed to remix images", err)
	}

	s.maybePreview(ctx, req.OpenPreview, []string{path})
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Remixed %d images into one", len(req.Images)),
		Files:   []string{path},
	}
}

// Story はN枚の連続画像を1枚ずつ順番に生成します。
// 1枚でも成功すれば部分成功として「X out of N」を報告します。
func (s *Service) Story(ctx context.Context, req domain.StoryRequest) *domain.GenerationResult {
	steps := req.Steps
	if steps == 0 {
		steps = defaultStorySteps
	}
	if steps < minStorySteps || steps > maxStorySteps {
		return validationFailure(fmt.Sprintf(
			"generate_story requires between %d and %d steps, got %d", minStorySteps, maxStorySteps, steps))
	}

	var files []string
	var firstErr error
	for i := 1; i <= steps; i++ {
		p := prompt.Story(req.Prompt, i, steps, req.SequenceType)
		path, err := s.generateOne(ctx, p, []*genai.Part{{Text: p}}, req.Seed, req.Format, i-1)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.WarnContext(ctx, "ストーリーステップの生成に失敗しました", "step", i, sl.Err(err))
			if isFatalAPIError(err) {
				break
			}
			continue
		}
		files = append(files, path)
	}

	if len(files) == 0 {
		return s.failure("failed to generate story sequence", firstErr)
	}

	s.maybePreview(ctx, req.OpenPreview, files)
	return &domain.GenerationResult{
		Success: true,
		Message: fmt.Sprintf("Generated %d out of %d story images", len(files), steps),
		Files:   files,
	}
}

// generateSequence はプロンプト列を順番に処理します。並列化はしません。
// 認証・権限・クォータ系のエラーは残りの呼び出しを無駄にしないため即打ち切りです。
func (s *Service) generateSequence(ctx context.Context, prompts []string, seed *int64, format domain.OutputFormat) ([]string, error) {
	var files []string
	var firstErr error
	for i, p := range prompts {
		path, err := s.generateOne(ctx, p, []*genai.Part{{Text: p}}, seed, format, i)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.WarnContext(ctx, "プロンプトバリアントの生成に失敗しました", "index", i, sl.Err(err))
			if isFatalAPIError(err) {
				break
			}
			continue
		}
		files = append(files, path)
	}
	return files, firstErr
}

// generateOne は1回の呼び出し・走査・保存を行い、保存先パスを返します。
func (s *Service) generateOne(ctx context.Context, promptText string, parts []*genai.Part, seed *int64, format domain.OutputFormat, index int) (string, error) {
	resp, err := s.model.GenerateWithParts(ctx, s.modelName, parts, GenerateOptions{Seed: seedToPtrInt32(seed)})
	if err != nil {
		return "", err
	}

	payload, err := ScanResponse(resp)
	if err != nil {
		return "", err
	}

	return s.store.SavePayload(payload, storage.Filename(promptText, format, index))
}

// loadInputPart は入力ファイル参照を解決して genai.Part に変換します。
// 見つからない場合は探索したディレクトリ一覧入りの失敗結果を返します。
func (s *Service) loadInputPart(ctx context.Context, reference string) (*genai.Part, *domain.GenerationResult) {
	search := s.finder.Find(reference)
	if !search.Found {
		return nil, &domain.GenerationResult{
			Success: false,
			Message: fmt.Sprintf("input image %q not found", reference),
			Error:   fmt.Sprintf("searched directories: %s", strings.Join(search.Searched, ", ")),
		}
	}

	data, err := os.ReadFile(search.Path)
	if err != nil {
		return nil, &domain.GenerationResult{
			Success: false,
			Message: fmt.Sprintf("could not read input image %q", reference),
			Error:   err.Error(),
		}
	}

	if len(data) > inlineBudget {
		if compressed, err := imgutil.CompressToJPEG(data, compressionQuality); err == nil {
			slog.DebugContext(ctx, "入力画像をJPEGに再圧縮しました",
				"path", search.Path, "before", len(data), "after", len(compressed))
			data = compressed
		}
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, &domain.GenerationResult{
			Success: false,
			Message: fmt.Sprintf("input file %q is not an image", reference),
			Error:   fmt.Sprintf("detected MIME type: %s", mimeType),
		}
	}

	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
}

// maybePreview は呼び出し側が明示した場合のみプレビューを開きます。
// 全ファイル分の起動完了（または失敗）を待ってから戻ります。
func (s *Service) maybePreview(ctx context.Context, open bool, files []string) {
	if !open || s.preview == nil || len(files) == 0 {
		return
	}
	s.preview.OpenAll(ctx, files)
}

func (s *Service) failure(message string, err error) *domain.GenerationResult {
	res := &domain.GenerationResult{Success: false, Message: message}
	switch {
	case err == nil:
		// 呼び出し自体が行われなかった場合
	case errors.Is(err, ErrNoImage):
		res.Error = "the model responded without an image payload"
	default:
		res.Error = ClassifyError(err)
	}
	return res
}

func validationFailure(message string) *domain.GenerationResult {
	return &domain.GenerationResult{Success: false, Message: message, Error: "validation error"}
}
