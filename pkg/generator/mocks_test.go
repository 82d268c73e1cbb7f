package generator

import (
	"context"
	"fmt"

	"github.com/yersonargotev/nanobana/pkg/domain"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockModel struct {
	generateFunc func(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error)
	calls        int
	lastParts    []*genai.Part
}

func (m *mockModel) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastParts = parts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts, opts)
	}
	return inlineResponse([]byte("fake-image")), nil
}

type mockStore struct {
	saved   []string
	saveErr error
}

func (m *mockStore) EnsureDir() (string, error) {
	return "/out", nil
}

func (m *mockStore) SavePayload(payload *domain.ImagePayload, filename string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	path := "/out/" + filename
	m.saved = append(m.saved, path)
	return path, nil
}

type mockFinder struct {
	// found はファイル名 → 解決済みパスの対応
	found    map[string]string
	searched []string
}

func (m *mockFinder) Find(reference string) domain.FileSearchResult {
	if path, ok := m.found[reference]; ok {
		return domain.FileSearchResult{Found: true, Path: path, Searched: m.searched}
	}
	return domain.FileSearchResult{Searched: m.searched}
}

type mockPreview struct {
	opened [][]string
}

func (m *mockPreview) OpenAll(ctx context.Context, paths []string) {
	m.opened = append(m.opened, paths)
}

// --- レスポンス組み立てヘルパー ---

func inlineResponse(data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "here is your image"},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}},
				},
			},
		}},
	}
}

func textOnlyResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			FinishReason: genai.FinishReasonStop,
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func failingOn(indices map[int]error) func(context.Context, string, []*genai.Part, GenerateOptions) (*genai.GenerateContentResponse, error) {
	call := 0
	return func(ctx context.Context, model string, parts []*genai.Part, opts GenerateOptions) (*genai.GenerateContentResponse, error) {
		defer func() { call++ }()
		if err, ok := indices[call]; ok {
			return nil, err
		}
		return inlineResponse([]byte(fmt.Sprintf("image-%d", call))), nil
	}
}
