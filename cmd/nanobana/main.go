package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/yersonargotev/nanobana/pkg/config"
	"github.com/yersonargotev/nanobana/pkg/generator"
	"github.com/yersonargotev/nanobana/pkg/preview"
	"github.com/yersonargotev/nanobana/pkg/sl"
	"github.com/yersonargotev/nanobana/pkg/storage"
	"github.com/yersonargotev/nanobana/pkg/tools"

	mcpgo "github.com/felixgeelhaar/mcp-go"
)

const (
	serverName    = "nanobana"
	serverVersion = "1.0.0"

	serverInstructions = "Image generation tools backed by Gemini. " +
		"Generated files are saved locally and returned as absolute paths."
)

func main() {
	// stdout は MCP のプロトコルチャネルなのでログは stderr 固定です
	log := setupLogger()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Error("設定の読み込みに失敗", sl.Err(err))
		os.Exit(1)
	}

	cred, err := cfg.ResolveCredential()
	if err != nil {
		log.Error("APIキーが未設定", sl.Err(err))
		os.Exit(1)
	}

	model := cfg.ResolveModel()
	outputDir := cfg.ResolveOutputDir()
	log.With(
		slog.String("model", model),
		slog.String("output_dir", outputDir),
		slog.String("key_kind", string(cred.Kind)),
	).Info("starting nanobana mcp server", sl.Secret(cred.Value))

	client, err := generator.NewGeminiClient(ctx, cred)
	if err != nil {
		log.Error("Gemini クライアントの初期化に失敗", sl.Err(err))
		os.Exit(1)
	}

	writer, err := storage.NewWriter(outputDir)
	if err != nil {
		log.Error("出力先の初期化に失敗", sl.Err(err))
		os.Exit(1)
	}

	svc, err := generator.NewService(client, model, writer, storage.NewFinder(outputDir), preview.NewLauncher())
	if err != nil {
		log.Error("サービスの初期化に失敗", sl.Err(err))
		os.Exit(1)
	}

	srv := mcpgo.NewServer(mcpgo.ServerInfo{
		Name:        serverName,
		Version:     serverVersion,
		Description: "Generate, edit and remix images with Gemini",
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}, mcpgo.WithInstructions(serverInstructions))

	tools.Register(srv, svc)

	log.Info("serving over stdio")
	if err := mcpgo.ServeStdio(ctx, srv, mcpgo.WithMiddleware(mcpgo.Recover(), mcpgo.RequestID())); err != nil {
		log.Error("サーバーが異常終了", sl.Err(err))
		os.Exit(1)
	}

	log.Info("shutdown complete")
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("NANOBANA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
