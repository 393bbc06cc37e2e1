// Package logger はアプリケーション共通のロガーを提供します。
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New は out に書き込むロガーを作成する
// レベルは Info 固定で、ブラウザ起動失敗などの Debug ログは出力されない
func New(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}
