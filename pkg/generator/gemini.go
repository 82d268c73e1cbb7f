package generator

import (
	"context"
	"fmt"

	"github.com/yersonargotev/nanobana/pkg/config"

	"google.golang.org/genai"
)

// GeminiClient は genai SDK を GenerativeModel として包む薄いアダプターです。
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient は解決済みのクレデンシャルで SDK クライアントを初期化します。
// Gemini 系・Google 系どちらのキーでも接続方法は同じ API キー認証です。
func NewGeminiClient(ctx context.Context, cred config.Credential) (*GeminiClient, error) {
	if cred.Value == "" {
		return nil, fmt.Errorf("credential is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cred.Value,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client init: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateWithParts はパーツ列を1ユーザーターンとして送信します。
// 画像を受け取るため ResponseModalities に IMAGE を明示します。
func (c *GeminiClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		Seed:               opts.Seed,
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return c.client.Models.GenerateContent(ctx, model, contents, cfg)
}
