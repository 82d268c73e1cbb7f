package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultModel は NANOBANA_MODEL 未指定時に使用するモデル名です。
const DefaultModel = "gemini-2.5-flash-image"

// KeyKind は解決された API キーの種別です。Gemini 系か Google 系かで
// 起動ログの表示を変えるためだけに使い、接続方法自体は変わりません。
type KeyKind string

const (
	KindGemini KeyKind = "gemini"
	KindGoogle KeyKind = "google"
)

// Credential は優先順位に従って解決済みの API キーです。
type Credential struct {
	Value string
	Kind  KeyKind
}

// Config は環境変数から読み込むサーバー設定です。
type Config struct {
	NanobanaGeminiKey string `env:"NANOBANA_GEMINI_API_KEY" env-default:""`
	NanobanaGoogleKey string `env:"NANOBANA_GOOGLE_API_KEY" env-default:""`
	GeminiKey         string `env:"GEMINI_API_KEY" env-default:""`
	GoogleKey         string `env:"GOOGLE_API_KEY" env-default:""`
	Model             string `env:"NANOBANA_MODEL" env-default:""`
	OutputDir         string `env:"NANOBANA_OUTPUT_DIR" env-default:""`
}

// credentialNames はキー探索の優先順です。上から順に最初の非空値を採用します。
var credentialNames = []string{
	"NANOBANA_GEMINI_API_KEY",
	"NANOBANA_GOOGLE_API_KEY",
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
}

// Load は環境変数を読み込んで Config を返します。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		desc, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("config: %w; %s", err, desc)
	}
	return cfg, nil
}

// ResolveCredential は4つの設定を優先順に確認し、最初に見つかった
// キーをその種別付きで返します。どれも無ければ設定エラーです。
func (c *Config) ResolveCredential() (Credential, error) {
	candidates := []struct {
		value string
		kind  KeyKind
	}{
		{c.NanobanaGeminiKey, KindGemini},
		{c.NanobanaGoogleKey, KindGoogle},
		{c.GeminiKey, KindGemini},
		{c.GoogleKey, KindGoogle},
	}

	for _, cand := range candidates {
		if v := strings.TrimSpace(cand.value); v != "" {
			return Credential{Value: v, Kind: cand.kind}, nil
		}
	}

	return Credential{}, fmt.Errorf(
		"no API key configured: set one of %s",
		strings.Join(credentialNames, ", "),
	)
}

// ResolveModel はモデル名の上書き設定を反映した最終的なモデル名を返します。
// "models/" プレフィックスは SDK 側で不要なため剥がします。
func (c *Config) ResolveModel() string {
	m := strings.TrimSpace(c.Model)
	if m == "" {
		return DefaultModel
	}
	return strings.TrimPrefix(m, "models/")
}

// ResolveOutputDir は出力ディレクトリを決定します。
// 未指定なら ~/Downloads/nanobana、ホームが取れなければカレント配下です。
func (c *Config) ResolveOutputDir() string {
	if d := strings.TrimSpace(c.OutputDir); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "nanobana-output"
	}
	return filepath.Join(home, "Downloads", "nanobana")
}
