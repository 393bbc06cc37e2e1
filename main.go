// Package main はローカル開発用の静的ファイル配信サーバーです。
//
// 実行ファイルと同じディレクトリのファイルを http://localhost:8000 で配信し、
// すべてのレスポンスにCORSヘッダーを付与します。
package main

import (
	"context"
	"os"

	"devserver/internal/config"
	"devserver/internal/logger"
	"devserver/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	// ログは標準エラーに出し、標準出力は起動メッセージだけにする
	log := logger.New(os.Stderr)

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("設定の読み込みに失敗しました")
	}

	// サーバーを作成
	srv := server.New(cfg, log)

	// サーバーを起動
	if err := srv.Start(context.Background()); err != nil {
		log.WithError(err).Fatal("サーバーの起動に失敗しました")
	}
}
