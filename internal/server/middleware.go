package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CORSヘッダーの固定値
const (
	allowOrigin  = "*"
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type"
)

// CORS はすべてのレスポンスにCORSヘッダーを付与するミドルウェア
// エラーレスポンスやリダイレクトにも付与される
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)

		c.Next()
	}
}

// RequestLogger はリクエストごとにアクセスログを出力するミドルウェア
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start),
			"client_ip":  c.ClientIP(),
		})

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("リクエスト処理")
		case status >= http.StatusBadRequest:
			entry.Warn("リクエスト処理")
		default:
			entry.Info("リクエスト処理")
		}
	}
}
