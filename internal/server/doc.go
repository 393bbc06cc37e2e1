// Package server は、ローカル開発用の静的ファイル配信サーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動と停止、静的ファイルの配信、
// CORSヘッダーの付与を担当します。
//
// 責務:
//   - 固定ポートでのHTTPサーバーの起動と停止
//   - 配信ルート以下の静的ファイル（HTML/CSS/JS）の配信
//   - すべてのレスポンスへのCORSヘッダーの付与
//   - 起動メッセージの表示とブラウザの起動
//
// 仕様:
//   - ルーティングとミドルウェアは gin を使用
//   - ファイルの解決は標準ライブラリの http.FileServer に任せる
//   - 配信ルートは設定で明示的に渡し、カレントディレクトリは変更しない
//   - ブラウザの起動失敗は配信に影響しない
//   - 停止時は処理中のリクエストを待たずにポートを解放する
package server
