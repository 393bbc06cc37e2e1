// Package browser はシステム既定のブラウザを開きます。
package browser

import (
	"fmt"
	"io"

	pkgbrowser "github.com/pkg/browser"
)

// 起動コマンドの出力はコンソールに出さない
func init() {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// Opener はURLをブラウザで開く関数
type Opener func(url string) error

var _ Opener = Open

// Open は既定のブラウザで url を開く
func Open(url string) error {
	if err := pkgbrowser.OpenURL(url); err != nil {
		return fmt.Errorf("ブラウザの起動に失敗: %w", err)
	}
	return nil
}
