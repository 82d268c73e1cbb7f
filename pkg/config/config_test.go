package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ResolveCredential(t *testing.T) {
	t.Run("専用のGeminiキーが最優先で採用されるのだ", func(t *testing.T) {
		cfg := &Config{
			NanobanaGeminiKey: "nb-gemini",
			NanobanaGoogleKey: "nb-google",
			GeminiKey:         "gemini",
			GoogleKey:         "google",
		}

		cred, err := cfg.ResolveCredential()
		require.NoError(t, err)
		assert.Equal(t, "nb-gemini", cred.Value)
		assert.Equal(t, KindGemini, cred.Kind)
	})

	t.Run("汎用のGoogleキーだけでもGoogle種別として解決できるのだ", func(t *testing.T) {
		cfg := &Config{GoogleKey: "google-only"}

		cred, err := cfg.ResolveCredential()
		require.NoError(t, err)
		assert.Equal(t, "google-only", cred.Value)
		assert.Equal(t, KindGoogle, cred.Kind)
	})

	t.Run("空白だけのキーは未設定として扱うのだ", func(t *testing.T) {
		cfg := &Config{NanobanaGeminiKey: "   ", GeminiKey: "real-key"}

		cred, err := cfg.ResolveCredential()
		require.NoError(t, err)
		assert.Equal(t, "real-key", cred.Value)
	})

	t.Run("どのキーも無い場合は4つの設定名を列挙してエラーになるのだ", func(t *testing.T) {
		cfg := &Config{}

		_, err := cfg.ResolveCredential()
		require.Error(t, err)
		for _, name := range credentialNames {
			assert.Contains(t, err.Error(), name)
		}
	})
}

func TestConfig_ResolveModel(t *testing.T) {
	t.Run("未指定ならデフォルトモデルを返す", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultModel, cfg.ResolveModel())
	})

	t.Run("models/ プレフィックスは剥がす", func(t *testing.T) {
		cfg := &Config{Model: "models/gemini-2.5-flash-image-preview"}
		assert.Equal(t, "gemini-2.5-flash-image-preview", cfg.ResolveModel())
	})
}

func TestConfig_ResolveOutputDir(t *testing.T) {
	t.Run("明示指定が最優先", func(t *testing.T) {
		cfg := &Config{OutputDir: "/tmp/out"}
		assert.Equal(t, "/tmp/out", cfg.ResolveOutputDir())
	})

	t.Run("未指定ならホーム配下のパスを返す", func(t *testing.T) {
		cfg := &Config{}
		dir := cfg.ResolveOutputDir()
		assert.Contains(t, dir, "nanobana")
	})
}
