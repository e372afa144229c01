package httpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/imposter-project/static-frontend/internal/adapter"
	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// HTTPServerAdapter represents the HTTP server runtime adapter
type HTTPServerAdapter struct{}

// NewAdapter creates a new HTTP server adapter instance
func NewAdapter() adapter.Adapter {
	return &HTTPServerAdapter{}
}

// Start begins the HTTP server runtime
func (a *HTTPServerAdapter) Start() {
	configDirArg := ""
	if len(os.Args) >= 2 {
		configDirArg = os.Args[1]
	}

	proxy := adapter.InitialiseProxy(configDirArg)
	defer proxy.Shutdown()

	srv := newServer(proxy.Config, proxy.Router)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	logger.Infof("server is listening on %s (%s)...", srv.Addr, proxy.Config.ServerURL)
	if err := serve(srv, sig, srv.ListenAndServe); err != nil {
		logger.Errorf("error starting server: %v", err)
		return
	}
	logger.Infoln("server stopped")
}

// serve runs listen until the server is closed. When a signal arrives the
// server is shut down, and serve returns only once in-flight requests have
// completed or the shutdown timeout has elapsed.
func serve(srv *http.Server, sig <-chan os.Signal, listen func() error) error {
	done := make(chan struct{})
	go awaitShutdown(srv, sig, done)

	if err := listen(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

// newServer creates the HTTP server for the given handler
func newServer(proxyConfig *config.ProxyConfig, handler http.Handler) *http.Server {
	if proxyConfig.EnableGzip {
		handler = gziphandler.GzipHandler(handler)
	}
	return &http.Server{
		Addr:              ":" + proxyConfig.ServerPort,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
}

// awaitShutdown stops the server when a signal is received and closes done
// once shutdown has finished
func awaitShutdown(srv *http.Server, sig <-chan os.Signal, done chan<- struct{}) {
	defer close(done)
	<-sig

	logger.Infoln("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("error shutting down server: %v", err)
	}
}
