package generator

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestScanParts(t *testing.T) {
	t.Run("最初のインラインデータを返すのだ", func(t *testing.T) {
		parts := []*genai.Part{
			{Text: "some commentary"},
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("first")}},
			{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte("second")}},
		}

		payload, ok := ScanParts(parts)
		if !ok {
			t.Fatal("画像が見つかるはず")
		}
		if string(payload.Data) != "first" || payload.MimeType != "image/png" {
			t.Errorf("最初の一致を返すべき: %+v", payload)
		}
	})

	t.Run("500文字のbase64風テキストは画像として扱わないのだ", func(t *testing.T) {
		parts := []*genai.Part{{Text: strings.Repeat("A", 500)}}

		if _, ok := ScanParts(parts); ok {
			t.Error("長さの下限未満は弾くべき")
		}
	})

	t.Run("1200文字のbase64字母テキストは画像として扱うのだ", func(t *testing.T) {
		text := strings.Repeat("Ab0+/", 240) // 1200文字、字母チェックを通過
		parts := []*genai.Part{{Text: text}}

		payload, ok := ScanParts(parts)
		if !ok {
			t.Fatal("画像として扱うべき")
		}
		if payload.Base64 != text {
			t.Error("テキストはそのままBase64として保持されるべき")
		}
		if payload.Data != nil {
			t.Error("テキスト一致ではDataは空のはず")
		}
	})

	t.Run("base64字母以外が混ざる長文は弾くのだ", func(t *testing.T) {
		text := strings.Repeat("A", 1199) + "!"
		if _, ok := ScanParts([]*genai.Part{{Text: text}}); ok {
			t.Error("字母チェックで弾くべき")
		}
	})

	t.Run("空のインラインデータは読み飛ばすのだ", func(t *testing.T) {
		parts := []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: "image/png"}},
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("real")}},
		}

		payload, ok := ScanParts(parts)
		if !ok || string(payload.Data) != "real" {
			t.Errorf("空データを飛ばして次を拾うべき: %+v", payload)
		}
	})

	t.Run("何も一致しなければfalseなのだ", func(t *testing.T) {
		if _, ok := ScanParts(nil); ok {
			t.Error("空のパーツ列で一致してはいけない")
		}
	})
}

func TestScanResponse(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		payload, err := ScanResponse(inlineResponse([]byte("png-data")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(payload.Data) != "png-data" {
			t.Errorf("payload mismatch: %+v", payload)
		}
	})

	t.Run("画像なしはErrNoImageのだ", func(t *testing.T) {
		_, err := ScanResponse(textOnlyResponse("just words"))
		if !errors.Is(err, ErrNoImage) {
			t.Errorf("ErrNoImage であるべき: %v", err)
		}
	})

	t.Run("異常なFinishReasonは理由付きエラーなのだ", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
				Content:      &genai.Content{Parts: []*genai.Part{{Text: "blocked"}}},
			}},
		}

		_, err := ScanResponse(resp)
		if err == nil || errors.Is(err, ErrNoImage) {
			t.Errorf("ブロックは別エラーで報告すべき: %v", err)
		}
		if !strings.Contains(err.Error(), string(genai.FinishReasonSafety)) {
			t.Errorf("FinishReason を含むべき: %v", err)
		}
	})

	t.Run("候補なしはエラーなのだ", func(t *testing.T) {
		if _, err := ScanResponse(nil); err == nil {
			t.Error("nil レスポンスはエラーであるべき")
		}
		if _, err := ScanResponse(&genai.GenerateContentResponse{}); err == nil {
			t.Error("候補ゼロはエラーであるべき")
		}
	})
}
