// Package tools は生成サービスを MCP ツールとして公開します。
// 引数のデコードと既定値の適用だけを担当し、ロジックは持ちません。
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yersonargotev/nanobana/pkg/domain"

	mcpgo "github.com/felixgeelhaar/mcp-go"
)

// Service は tools 層が利用する生成オペレーション群です。
type Service interface {
	Generate(ctx context.Context, req domain.GenerateRequest) *domain.GenerationResult
	Edit(ctx context.Context, req domain.EditRequest) *domain.GenerationResult
	Restore(ctx context.Context, req domain.EditRequest) *domain.GenerationResult
	Remix(ctx context.Context, req domain.RemixRequest) *domain.GenerationResult
	Story(ctx context.Context, req domain.StoryRequest) *domain.GenerationResult
	Icon(ctx context.Context, req domain.IconRequest) *domain.GenerationResult
	Pattern(ctx context.Context, req domain.PatternRequest) *domain.GenerationResult
	Diagram(ctx context.Context, req domain.DiagramRequest) *domain.GenerationResult
}

// Register は8つの画像ツールをサーバーへ登録します。
func Register(srv *mcpgo.Server, svc Service) {
	srv.Tool("generate_image").
		Description("Generate images from a text prompt. Supports multiple outputs, art styles and variation axes (lighting, color, mood, angle).").
		Handler(handleGenerate(svc))

	srv.Tool("edit_image").
		Description("Edit an existing image according to a text instruction. Takes a filename resolved against common directories.").
		Handler(handleEdit(svc))

	srv.Tool("restore_image").
		Description("Restore an old or damaged photo. Uses a built-in restoration instruction unless a custom prompt is given.").
		Handler(handleRestore(svc))

	srv.Tool("remix_image").
		Description("Combine two or more input images into a single new image guided by a text prompt.").
		Handler(handleRemix(svc))

	srv.Tool("generate_icon").
		Description("Generate an app icon from a description. Styles: flat, 3d, outline, pixel. Backgrounds: transparent, white, colored.").
		Handler(handleIcon(svc))

	srv.Tool("generate_pattern").
		Description("Generate a tileable pattern from a description. Types: seamless, geometric, organic, abstract. Densities: sparse, medium, dense.").
		Handler(handlePattern(svc))

	srv.Tool("generate_story").
		Description("Generate a sequence of 2-8 images depicting successive steps. Sequence types: story, process, tutorial, timeline.").
		Handler(handleStory(svc))

	srv.Tool("generate_diagram").
		Description("Generate a diagram image from a description. Types: flowchart, mindmap, architecture, network, timeline.").
		Handler(handleDiagram(svc))
}

type generateArgs struct {
	Prompt      string   `json:"prompt"`
	Count       int      `json:"count"`
	Styles      []string `json:"styles"`
	Variations  []string `json:"variations"`
	Seed        *int64   `json:"seed"`
	Format      string   `json:"format"`
	OpenPreview *bool    `json:"open_preview"`
}

func handleGenerate(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args generateArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Prompt) == "" {
			return marshalResult(missingArgument("prompt"))
		}
		return marshalResult(svc.Generate(ctx, domain.GenerateRequest{
			Prompt:      args.Prompt,
			Count:       args.Count,
			Styles:      args.Styles,
			Variations:  args.Variations,
			Seed:        args.Seed,
			Format:      parseFormat(args.Format),
			OpenPreview: boolOr(args.OpenPreview, true),
		}))
	}
}

type editArgs struct {
	Prompt      string `json:"prompt"`
	Image       string `json:"image"`
	Format      string `json:"format"`
	OpenPreview *bool  `json:"open_preview"`
}

func handleEdit(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args editArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Prompt) == "" {
			return marshalResult(missingArgument("prompt"))
		}
		if strings.TrimSpace(args.Image) == "" {
			return marshalResult(missingArgument("image"))
		}
		return marshalResult(svc.Edit(ctx, editRequest(args)))
	}
}

func handleRestore(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args editArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		// restore はプロンプト省略可（定型文で補完される）
		if strings.TrimSpace(args.Image) == "" {
			return marshalResult(missingArgument("image"))
		}
		return marshalResult(svc.Restore(ctx, editRequest(args)))
	}
}

func editRequest(args editArgs) domain.EditRequest {
	return domain.EditRequest{
		Prompt:      args.Prompt,
		Image:       args.Image,
		Format:      parseFormat(args.Format),
		OpenPreview: boolOr(args.OpenPreview, true),
	}
}

type remixArgs struct {
	Prompt      string   `json:"prompt"`
	Images      []string `json:"images"`
	Format      string   `json:"format"`
	OpenPreview *bool    `json:"open_preview"`
}

func handleRemix(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args remixArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Prompt) == "" {
			return marshalResult(missingArgument("prompt"))
		}
		return marshalResult(svc.Remix(ctx, domain.RemixRequest{
			Prompt:      args.Prompt,
			Images:      args.Images,
			Format:      parseFormat(args.Format),
			OpenPreview: boolOr(args.OpenPreview, true),
		}))
	}
}

type storyArgs struct {
	Prompt       string `json:"prompt"`
	Steps        int    `json:"steps"`
	SequenceType string `json:"sequence_type"`
	Seed         *int64 `json:"seed"`
	Format       string `json:"format"`
	OpenPreview  *bool  `json:"open_preview"`
}

func handleStory(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args storyArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Prompt) == "" {
			return marshalResult(missingArgument("prompt"))
		}
		return marshalResult(svc.Story(ctx, domain.StoryRequest{
			Prompt:       args.Prompt,
			Steps:        args.Steps,
			SequenceType: args.SequenceType,
			Seed:         args.Seed,
			Format:       parseFormat(args.Format),
			OpenPreview:  boolOr(args.OpenPreview, true),
		}))
	}
}

type iconArgs struct {
	Description string `json:"description"`
	Style       string `json:"style"`
	Background  string `json:"background"`
	Count       int    `json:"count"`
	OpenPreview *bool  `json:"open_preview"`
}

func handleIcon(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args iconArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Description) == "" {
			return marshalResult(missingArgument("description"))
		}
		style := args.Style
		if style == "" {
			style = "flat"
		}
		return marshalResult(svc.Icon(ctx, domain.IconRequest{
			Description: args.Description,
			Style:       style,
			Background:  args.Background,
			Count:       args.Count,
			OpenPreview: boolOr(args.OpenPreview, true),
		}))
	}
}

type patternArgs struct {
	Description string `json:"description"`
	PatternType string `json:"pattern_type"`
	Density     string `json:"density"`
	Count       int    `json:"count"`
	OpenPreview *bool  `json:"open_preview"`
}

func handlePattern(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args patternArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Description) == "" {
			return marshalResult(missingArgument("description"))
		}
		return marshalResult(svc.Pattern(ctx, domain.PatternRequest{
			Description: args.Description,
			PatternType: args.PatternType,
			Density:     args.Density,
			Count:       args.Count,
			OpenPreview: boolOr(args.OpenPreview, true),
		}))
	}
}

type diagramArgs struct {
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
	LabelStyle  string `json:"label_style"`
	Format      string `json:"format"`
	OpenPreview *bool  `json:"open_preview"`
}

func handleDiagram(svc Service) func(ctx context.Context, input json.RawMessage) (string, error) {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var args diagramArgs
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("decode arguments: %w", err)
		}
		if strings.TrimSpace(args.Description) == "" {
			return marshalResult(missingArgument("description"))
		}
		return marshalResult(svc.Diagram(ctx, domain.DiagramRequest{
			Description: args.Description,
			DiagramType: args.DiagramType,
			LabelStyle:  args.LabelStyle,
			Format:      parseFormat(args.Format),
			OpenPreview: boolOr(args.OpenPreview, true),
		}))
	}
}

// parseFormat は形式指定を正規化します。未知の値は png に落ちます。
func parseFormat(s string) domain.OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpeg", "jpg":
		return domain.FormatJPEG
	default:
		return domain.FormatPNG
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func missingArgument(name string) *domain.GenerationResult {
	return &domain.GenerationResult{
		Success: false,
		Message: fmt.Sprintf("required argument %q is missing", name),
		Error:   "validation error",
	}
}

func marshalResult(res *domain.GenerationResult) (string, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}
