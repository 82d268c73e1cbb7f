// Package sl は slog 用の小さな属性ヘルパー集です。
package sl

import (
	"fmt"
	"log/slog"
)

// Err はエラーを固定キー "error" の属性にします。
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Secret は API キー等の機微情報を先頭5文字だけ残してマスクします。
func Secret(some string) slog.Attr {
	r := "***"
	if len(some) > 5 {
		r = fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		r = "?"
	}
	return slog.Attr{
		Key:   "secret",
		Value: slog.StringValue(r),
	}
}
