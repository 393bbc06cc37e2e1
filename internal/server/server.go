package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"devserver/internal/browser"
	"devserver/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server は静的ファイル配信サーバーを管理する構造体
// Close 後の Server は再利用できない
type Server struct {
	config     *config.Config
	log        logrus.FieldLogger
	engine     *gin.Engine
	httpServer *http.Server
	listener   net.Listener
	closed     bool

	out    io.Writer      // 起動メッセージの出力先
	opener browser.Opener // ブラウザ起動関数
}

// Option は Server の任意設定
type Option func(*Server)

// WithOutput は起動メッセージの出力先を設定する
func WithOutput(w io.Writer) Option {
	return func(s *Server) { s.out = w }
}

// WithOpener はブラウザ起動関数を差し替える
func WithOpener(open browser.Opener) Option {
	return func(s *Server) { s.opener = open }
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config, log logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		config: cfg,
		log:    log,
		out:    os.Stdout,
		opener: browser.Open,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = s.setupEngine()
	s.httpServer = &http.Server{
		Handler: s.engine,
	}

	return s
}

// setupEngine はミドルウェアと静的ファイルハンドラを設定する
func (s *Server) setupEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(s.log), CORS())

	// ルートは登録せず、すべてのパスを静的ファイルハンドラで処理する
	engine.NoRoute(StaticFiles(http.Dir(s.config.Root)))

	return engine
}

// Handler はサーバーのHTTPハンドラを返す
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Listen は設定されたアドレスでリッスンを開始する
func (s *Server) Listen() error {
	if s.closed {
		return errors.New("停止済みのサーバーは再利用できません")
	}
	if s.listener != nil {
		return errors.New("すでにリッスンしています")
	}

	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("ポートのバインドに失敗: %w", err)
	}
	s.listener = ln

	return nil
}

// Addr はリッスン中のアドレスを返す
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// URL はブラウザで開くルートURLを返す
// 空きポートでリッスンしている場合は実際のポート番号を使う
func (s *Server) URL() string {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d", tcp.Port)
	}
	return s.config.URL()
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve は起動メッセージを表示し、ブラウザを開いてリクエストを処理する
// コンテキストのキャンセルかシグナル受信まで戻らない
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("リッスンしていません")
	}

	url := s.URL()
	s.announce(url)

	// 停止用のチャンネル
	serveCh := make(chan error, 1)

	go func() {
		s.log.WithFields(logrus.Fields{
			"addr": s.listener.Addr().String(),
			"root": s.config.Root,
		}).Info("HTTPサーバーを起動しています")
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveCh <- fmt.Errorf("リクエストの処理に失敗: %w", err)
		}
	}()

	if s.config.OpenBrowser {
		go s.openBrowser(url)
	}

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		s.log.Info("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		s.log.WithField("signal", sig.String()).Info("シグナルを受信しました")
	case err := <-serveCh:
		return err
	}

	return s.Close()
}

// Close はリスナーと接続を閉じてポートを解放する
// 処理中のリクエストは待たない
func (s *Server) Close() error {
	s.log.Info("サーバーを停止しています...")
	s.closed = true

	if err := s.httpServer.Close(); err != nil {
		return fmt.Errorf("サーバーの停止に失敗: %w", err)
	}
	// Serve 開始前に停止した場合もポートを確実に解放する
	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("リスナーのクローズに失敗: %w", err)
		}
	}

	s.log.Info("サーバーを停止しました")
	return nil
}

// announce は起動メッセージを標準出力に表示する
func (s *Server) announce(url string) {
	fmt.Fprintf(s.out, "🚀 サーバーを起動しました: %s\n", url)
	fmt.Fprintln(s.out, "📱 ブラウザでこのURLを開いてアプリを確認してください（ローカルテスト専用）")
	fmt.Fprintln(s.out, "⏹️  Ctrl+C でサーバーを停止します")
}

// openBrowser はブラウザを開く
// 失敗しても配信は続けるため、Debug ログに残すだけにする
func (s *Server) openBrowser(url string) {
	if err := s.opener(url); err != nil {
		s.log.WithError(err).WithField("url", url).Debug("ブラウザを開けませんでした")
	}
}
