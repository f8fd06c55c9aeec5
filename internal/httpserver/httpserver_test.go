package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	_ "inventory-service/docs"
	"inventory-service/internal/inventory/repository/memory"
	"inventory-service/pkg/database"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
)

func newTestServer(t *testing.T, modify func(*Config)) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	photos, err := photostore.New(photostore.Config{Dir: t.TempDir()}, l)
	if err != nil {
		t.Fatalf("photostore.New: %v", err)
	}
	cfg := Config{
		Host:        "localhost",
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Repository:  memory.New(),
		PhotoStore:  photos,
		BaseURL:     "http://localhost:8080",
		EnableHello: true,
	}
	if modify != nil {
		modify(&cfg)
	}

	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewValidates(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without repository")
	}
	if _, err := New(nil, Config{}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestFallback(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method, target string
		code           int
		body           string
	}{
		{http.MethodPatch, "/inventory/1", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.MethodGet, "/register", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.MethodGet, "/search/x/y", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.MethodGet, "/hello", http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.MethodPost, "/unknown/path", http.StatusNotFound, "Page Not Found"},
		{http.MethodGet, "/", http.StatusNotFound, "Page Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(srv, tt.method, tt.target)
			if w.Code != tt.code || w.Body.String() != tt.body {
				t.Errorf("expected %d %q, got %d %q", tt.code, tt.body, w.Code, w.Body.String())
			}
		})
	}
}

func TestTrailingSlash(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, http.MethodGet, "/inventory/")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("expected 200 [], got %d %q", w.Code, w.Body.String())
	}

	w = serve(srv, http.MethodGet, "/inventory/1/")
	if w.Code != http.StatusNotFound || w.Body.String() != "Not Found" {
		t.Errorf("expected 404 Not Found, got %d %q", w.Code, w.Body.String())
	}

	w = serve(srv, http.MethodGet, "/register/")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestHelloOnlyWhenEnabled(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.EnableHello = false })

	w := serve(srv, http.MethodPost, "/hello")
	if w.Code != http.StatusNotFound || w.Body.String() != "Page Not Found" {
		t.Errorf("expected 404 Page Not Found, got %d %q", w.Code, w.Body.String())
	}

	srv = newTestServer(t, nil)
	w = serve(srv, http.MethodPost, "/hello")
	if w.Code != http.StatusOK || w.Body.String() != "Hello World via POST!" {
		t.Errorf("unexpected hello response %d %q", w.Code, w.Body.String())
	}
}

func TestForms(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, target := range []string{"/RegisterForm.html", "/SearchForm.html"} {
		w := serve(srv, http.MethodGet, target)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
			t.Errorf("%s: unexpected content type %q", target, w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), "<form") {
			t.Errorf("%s: body has no form", target)
		}
	}
}

func TestDocs(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, http.MethodGet, "/docs/")
	if w.Code != http.StatusMovedPermanently || w.Header().Get("Location") != "/docs/index.html" {
		t.Errorf("expected redirect to index, got %d %q", w.Code, w.Header().Get("Location"))
	}

	w = serve(srv, http.MethodGet, "/docs/doc.json")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Inventory API") {
		t.Errorf("unexpected doc.json response %d", w.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, target := range []string{"/health", "/ready", "/live"} {
		if w := serve(srv, http.MethodGet, target); w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", target, w.Code)
		}
	}
}

func TestReadyPingsDatabase(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	srv := newTestServer(t, func(c *Config) { c.DB = db })

	if w := serve(srv, http.MethodGet, "/ready"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	db.Close()
	if w := serve(srv, http.MethodGet, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after close, got %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, nil)

	w := serve(srv, http.MethodGet, "/inventory")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	srv := newTestServer(t, func(c *Config) {
		c.Host = "127.0.0.1"
		c.Port = port
		c.ShutdownTimeout = time.Second
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + ln.Addr().String() + "/live")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

