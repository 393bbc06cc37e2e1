package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaticFiles は fsys のファイルを配信するハンドラを返す
//
// ステータスコード、Content-Type の判定、ディレクトリのリダイレクトや一覧表示は
// http.FileServer に任せる。GET と HEAD 以外は 501 を返す。
func StaticFiles(fsys http.FileSystem) gin.HandlerFunc {
	fileServer := http.FileServer(fsys)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			// NoRoute では 404 が事前に設定されている
			// ディレクトリ一覧は WriteHeader を呼ばずに書き込むため 200 に戻しておく
			c.Status(http.StatusOK)
			fileServer.ServeHTTP(c.Writer, c.Request)
		default:
			http.Error(c.Writer,
				fmt.Sprintf("Unsupported method ('%s')", c.Request.Method),
				http.StatusNotImplemented)
		}
	}
}
