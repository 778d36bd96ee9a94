package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/srinfo/internal/config"
	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "srinfo.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))

	return configPath
}

func TestReadDefaults(t *testing.T) {
	loader := config.NewLoader(writeConfig(t, ""))
	conf, err := loader.Read()
	require.NoError(t, err)

	require.Equal(t, mihomo.DefaultBaseURL, conf.APIBaseURL)
	require.Equal(t, config.DefaultLanguage, conf.Language)
	require.Equal(t, config.DefaultHTTPTimeout, conf.HTTPTimeout)
	require.Equal(t, config.DefaultConcurrency, conf.Concurrency)
	require.Equal(t, slog.LevelInfo, conf.SlogLevel())

	lang, errLang := conf.Lang()
	require.NoError(t, errLang)
	require.Equal(t, mihomo.English, lang)
}

func TestReadFile(t *testing.T) {
	configPath := writeConfig(t, `
api_base_url: http://localhost:9000/
language: zh-TW
http_timeout: 3s
log_level: debug
concurrency: 2
`)

	loader := config.NewLoader(configPath)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, configPath, loader.Path())
	require.Equal(t, "http://localhost:9000/", conf.APIBaseURL)
	require.Equal(t, 3*time.Second, conf.HTTPTimeout)
	require.Equal(t, 2, conf.Concurrency)
	require.Equal(t, slog.LevelDebug, conf.SlogLevel())

	lang, errLang := conf.Lang()
	require.NoError(t, errLang)
	require.Equal(t, mihomo.TraditionalChinese, lang)
}

func TestReadEnv(t *testing.T) {
	t.Setenv("SRINFO_LANGUAGE", "kr")
	t.Setenv("SRINFO_CONCURRENCY", "8")

	conf, err := config.NewLoader(writeConfig(t, "language: de\n")).Read()
	require.NoError(t, err)
	require.Equal(t, "kr", conf.Language)
	require.Equal(t, 8, conf.Concurrency)
}

func TestReadInvalid(t *testing.T) {
	cases := map[string]string{
		"language":    "language: klingon\n",
		"base url":    "api_base_url: not a url\n",
		"log level":   "log_level: loud\n",
		"concurrency": "concurrency: 0\n",
		"timeout":     "http_timeout: -1s\n",
	}

	for name, body := range cases {
		_, err := config.NewLoader(writeConfig(t, body)).Read()
		require.Error(t, err, name)
	}
}

func TestReadMissingExplicitFile(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Read()
	require.Error(t, err)
}
