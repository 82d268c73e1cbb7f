// Package preview は書き出した画像を OS 標準のビューアで開きます。
// 完全にベストエフォートであり、失敗は記録するだけで握りつぶします。
package preview

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"

	"github.com/yersonargotev/nanobana/pkg/sl"
)

// Launcher は OS の「開く」コマンドをファイルごとに並列起動します。
type Launcher struct {
	// goos はテストでコマンド選択を固定するための差し替え点です。
	goos string
}

// NewLauncher は実行中の OS 向けの Launcher を返します。
func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// OpenAll は各ファイルに対して1つずつ「開く」を並列に発行し、
// 全員の完了（成功・失敗問わず）を待ってから戻ります。
// 個々の失敗は警告ログに残すだけで、呼び出し結果には影響しません。
func (l *Launcher) OpenAll(ctx context.Context, paths []string) {
	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if err := l.open(ctx, p); err != nil {
				slog.WarnContext(ctx, "プレビューを開けませんでした", "path", p, sl.Err(err))
			}
		}(path)
	}
	wg.Wait()
}

func (l *Launcher) open(ctx context.Context, path string) error {
	name, args := l.openCommand(path)
	return exec.CommandContext(ctx, name, args...).Run()
}

// openCommand は OS ごとの「開く」コマンドを返します。
func (l *Launcher) openCommand(path string) (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
