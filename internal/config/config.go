package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPort は開発サーバーが常にリッスンする固定ポート
const DefaultPort = 8000

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig

	// Root は静的ファイルを配信するベースディレクトリ
	Root string

	// OpenBrowser が true の場合、起動時に既定のブラウザを開く
	OpenBrowser bool
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト（空文字は全インターフェース）
	Port int    // リッスンするポート番号（0 は空きポート）
}

// Load は設定を読み込む
// 環境変数や設定ファイルは参照せず、固定のデフォルト値を返す
func Load() (*Config, error) {
	root, err := ResolveRoot()
	if err != nil {
		return nil, fmt.Errorf("配信ルートの解決に失敗: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: "",
			Port: DefaultPort,
		},
		Root:        root,
		OpenBrowser: true,
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	if c.Root == "" {
		return fmt.Errorf("配信ルートが設定されていません")
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("配信ルートにアクセスできません: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("配信ルートがディレクトリではありません: %s", c.Root)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// URL はブラウザで開くサーバーのルートURLを返す
func (c *Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

// ResolveRoot は実行ファイルが置かれているディレクトリを返す
func ResolveRoot() (string, error) {
	return resolveRoot(os.Executable, os.Getwd)
}

// resolveRoot は ResolveRoot の実装
// go run で起動された場合、実行ファイルはビルドキャッシュの一時ディレクトリに
// 置かれるため、カレントディレクトリを使う
func resolveRoot(executable, getwd func() (string, error)) (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("実行ファイルのパス取得に失敗: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)

	if isGoRunDir(dir) {
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("作業ディレクトリの取得に失敗: %w", err)
		}
		return wd, nil
	}

	return dir, nil
}

// isGoRunDir は go run のビルド用一時ディレクトリかどうかを判定する
func isGoRunDir(dir string) bool {
	for _, elem := range strings.Split(filepath.ToSlash(dir), "/") {
		if strings.HasPrefix(elem, "go-build") {
			return true
		}
	}
	return false
}
