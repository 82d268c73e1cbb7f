package generator

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"無効なAPIキー", errors.New("rpc error: API key not valid. Please pass a valid API key"), "Invalid API key"},
		{"権限なし", errors.New("googleapi: Error 403: permission denied"), "Permission denied"},
		{"クォータ超過", errors.New("Quota exceeded for quota metric"), "quota exceeded"},
		{"不明なエラー", errors.New("connection reset by peer"), "image generation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if !strings.Contains(strings.ToLower(got), strings.ToLower(tt.want)) {
				t.Errorf("ClassifyError() = %q, want substring %q", got, tt.want)
			}
		})
	}

	t.Run("構造化ステータスコードでの分類", func(t *testing.T) {
		cases := map[int]string{
			400: "malformed",
			403: "Permission denied",
			500: "internal server error",
		}
		for code, want := range cases {
			err := fmt.Errorf("call failed: %w", genai.APIError{Code: code, Message: "upstream"})
			got := ClassifyError(err)
			if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
				t.Errorf("code %d: got %q, want substring %q", code, got, want)
			}
		}
	})
}

func TestIsFatalAPIError(t *testing.T) {
	fatal := []error{
		errors.New("API key not valid"),
		errors.New("PERMISSION DENIED for model"),
		errors.New("quota exceeded"),
		fmt.Errorf("wrapped: %w", genai.APIError{Code: 429}),
		fmt.Errorf("wrapped: %w", genai.APIError{Code: 401}),
	}
	for _, err := range fatal {
		if !isFatalAPIError(err) {
			t.Errorf("%v は致命的として扱うべき", err)
		}
	}

	nonFatal := []error{
		errors.New("connection reset"),
		fmt.Errorf("wrapped: %w", genai.APIError{Code: 500}),
	}
	for _, err := range nonFatal {
		if isFatalAPIError(err) {
			t.Errorf("%v は続行可能として扱うべき", err)
		}
	}
}

func TestSeedToPtrInt32(t *testing.T) {
	if seedToPtrInt32(nil) != nil {
		t.Error("nil は nil のまま")
	}

	var v int64 = 42
	got := seedToPtrInt32(&v)
	if got == nil || *got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}
