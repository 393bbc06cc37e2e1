package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// 固定値の検証
	if cfg.Server.Host != "" {
		t.Errorf("ホストは全インターフェースであるべきです: got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("ポート番号が一致しません: got %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if !cfg.OpenBrowser {
		t.Error("ブラウザ起動がデフォルトで有効になっていません")
	}
	if cfg.Root == "" {
		t.Error("配信ルートが設定されていません")
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "index.html")
	if err := os.WriteFile(file, []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("テスト用ファイルの作成に失敗しました: %v", err)
	}

	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name: "正常な設定",
			config: &Config{
				Server: ServerConfig{Port: 8000},
				Root:   dir,
			},
			expectErr: false,
		},
		{
			name: "空きポート",
			config: &Config{
				Server: ServerConfig{Host: "127.0.0.1", Port: 0},
				Root:   dir,
			},
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: &Config{
				Server: ServerConfig{Port: 99999},
				Root:   dir,
			},
			expectErr: true,
		},
		{
			name: "負のポート番号",
			config: &Config{
				Server: ServerConfig{Port: -1},
				Root:   dir,
			},
			expectErr: true,
		},
		{
			name: "配信ルートなし",
			config: &Config{
				Server: ServerConfig{Port: 8000},
			},
			expectErr: true,
		},
		{
			name: "存在しない配信ルート",
			config: &Config{
				Server: ServerConfig{Port: 8000},
				Root:   filepath.Join(dir, "missing"),
			},
			expectErr: true,
		},
		{
			name: "配信ルートがファイル",
			config: &Config{
				Server: ServerConfig{Port: 8000},
				Root:   file,
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	testCases := []struct {
		name     string
		host     string
		port     int
		expected string
		url      string
	}{
		{"全インターフェース", "", 8000, ":8000", "http://localhost:8000"},
		{"ループバック", "127.0.0.1", 9090, "127.0.0.1:9090", "http://localhost:9090"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{Host: tc.host, Port: tc.port}}
			if got := cfg.ServerAddress(); got != tc.expected {
				t.Errorf("サーバーアドレスが一致しません: got %s, want %s", got, tc.expected)
			}
			if got := cfg.URL(); got != tc.url {
				t.Errorf("URLが一致しません: got %s, want %s", got, tc.url)
			}
		})
	}
}

// TestResolveRoot は配信ルートの解決をテストする
func TestResolveRoot(t *testing.T) {
	installed := t.TempDir()
	cache := filepath.Join(t.TempDir(), "go-build1234", "b001", "exe")
	wd := t.TempDir()

	getwd := func() (string, error) { return wd, nil }

	testCases := []struct {
		name      string
		exe       string
		exeErr    error
		want      string
		expectErr bool
	}{
		{"インストール済みバイナリ", filepath.Join(installed, "devserver"), nil, installed, false},
		{"go run のバイナリ", filepath.Join(cache, "devserver"), nil, wd, false},
		{"実行ファイル取得失敗", "", errors.New("no executable"), "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			executable := func() (string, error) { return tc.exe, tc.exeErr }

			got, err := resolveRoot(executable, getwd)
			if tc.expectErr {
				if err == nil {
					t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
				}
				return
			}
			if err != nil {
				t.Fatalf("予期しないエラーが発生しました: %v", err)
			}
			if got != tc.want {
				t.Errorf("配信ルートが一致しません: got %s, want %s", got, tc.want)
			}
		})
	}
}
