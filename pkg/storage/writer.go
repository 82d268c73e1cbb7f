// Package storage は生成画像の永続化と入力ファイルの解決を担当します。
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yersonargotev/nanobana/pkg/domain"

	"github.com/google/uuid"
)

// slugMaxLen はプロンプト由来のファイル名スラッグの最大長です。
const slugMaxLen = 40

// Writer は決められた出力ディレクトリ配下へ画像を書き出します。
type Writer struct {
	dir string
}

// NewWriter は出力ディレクトリを指定して Writer を初期化します。
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	return &Writer{dir: dir}, nil
}

// EnsureDir は出力ディレクトリを冪等に作成し、絶対パスを返します。
func (w *Writer) EnsureDir() (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", w.dir, err)
	}
	abs, err := filepath.Abs(w.dir)
	if err != nil {
		return "", fmt.Errorf("resolve output directory %s: %w", w.dir, err)
	}
	return abs, nil
}

// SavePayload はペイロードを出力ディレクトリへ書き出し、絶対パスを返します。
// インラインバイナリはそのまま、テキストフォールバックは base64 デコード
// してから書きます。デコード失敗は I/O エラーとして報告します。
func (w *Writer) SavePayload(payload *domain.ImagePayload, filename string) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("payload is required")
	}

	data := payload.Data
	if data == nil {
		decoded, err := base64.StdEncoding.DecodeString(payload.Base64)
		if err != nil {
			return "", fmt.Errorf("decode base64 payload: %w", err)
		}
		data = decoded
	}

	dir, err := w.EnsureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", path, err)
	}
	return path, nil
}

// Filename はプロンプト・形式・連番からファイルシステム安全な名前を作ります。
// プロンプトから有効なスラッグが得られない場合は UUID の先頭8文字で代替します。
func Filename(promptText string, format domain.OutputFormat, index int) string {
	slug := slugify(promptText)
	if slug == "" {
		slug = uuid.NewString()[:8]
	}
	return fmt.Sprintf("%s-%d.%s", slug, index+1, format.Extension())
}

// slugify は英数字以外をハイフンに落として連結・切り詰めます。
func slugify(s string) string {
	var b strings.Builder
	lastDash := true // 先頭のハイフンを抑止
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
		if b.Len() >= slugMaxLen {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}
