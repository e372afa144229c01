package httpserver

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/imposter-project/static-frontend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	body := strings.Repeat("<p>privacy</p>", 200)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, body)
	})

	tests := []struct {
		name             string
		enableGzip       bool
		expectedEncoding string
	}{
		{
			name:             "plain responses",
			enableGzip:       false,
			expectedEncoding: "",
		},
		{
			name:             "gzip responses",
			enableGzip:       true,
			expectedEncoding: "gzip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(&config.ProxyConfig{ServerPort: "9000", EnableGzip: tt.enableGzip}, handler)
			assert.Equal(t, ":9000", srv.Addr)
			assert.Equal(t, readTimeout, srv.ReadTimeout)
			assert.Equal(t, writeTimeout, srv.WriteTimeout)

			req := httptest.NewRequest(http.MethodGet, "/privacy", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			w := httptest.NewRecorder()
			srv.Handler.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedEncoding, w.Header().Get("Content-Encoding"))
			if !tt.enableGzip {
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}

func TestServe_WaitsForInFlightRequests(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, "<p>terms</p>")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := newServer(&config.ProxyConfig{ServerPort: "0"}, handler)

	sig := make(chan os.Signal, 1)
	served := make(chan error, 1)
	go func() {
		served <- serve(srv, sig, func() error { return srv.Serve(ln) })
	}()

	type result struct {
		status int
		body   string
		err    error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/terms")
		if err != nil {
			responses <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		responses <- result{status: resp.StatusCode, body: string(body), err: err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not reach the handler")
	}

	sig <- syscall.SIGTERM
	assert.Never(t, func() bool { return len(served) > 0 }, 200*time.Millisecond, 10*time.Millisecond)

	close(release)
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the in-flight request completed")
	}

	res := <-responses
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "<p>terms</p>", res.body)
}

func TestServe_ListenError(t *testing.T) {
	srv := newServer(&config.ProxyConfig{ServerPort: "0"}, http.NotFoundHandler())
	err := serve(srv, make(chan os.Signal), func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}
