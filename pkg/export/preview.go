package export

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// DefaultPreviewPort is the first port tried for the preview server.
const DefaultPreviewPort = 9000

// PreviewPortRangeEnd bounds the port scan when the default is taken.
const PreviewPortRangeEnd = 9100

// PreviewServer serves an export bundle locally for review. Files are
// served with no-cache headers so a re-export shows up on refresh.
type PreviewServer struct {
	bundlePath string
	port       int
	server     *http.Server
}

// NewPreviewServer creates a preview server for the given bundle directory.
func NewPreviewServer(bundlePath string, port int) *PreviewServer {
	return &PreviewServer{
		bundlePath: bundlePath,
		port:       port,
	}
}

// Start starts the preview server and blocks until stopped.
func (p *PreviewServer) Start() error {
	if _, err := os.Stat(p.bundlePath); os.IsNotExist(err) {
		return fmt.Errorf("bundle path does not exist: %s", p.bundlePath)
	}
	indexPath := filepath.Join(p.bundlePath, "index.html")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		return fmt.Errorf("no index.html found in bundle: %s (run an export first)", p.bundlePath)
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCacheMiddleware(http.FileServer(http.Dir(p.bundlePath))))
	mux.HandleFunc("/__preview__/status", p.statusHandler)

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.port),
		Handler: mux,
	}

	fmt.Printf("Preview running at %s (serving %s)\n", p.URL(), p.bundlePath)
	fmt.Println("Press Ctrl+C to stop")

	return p.server.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and shuts it down cleanly on
// SIGINT/SIGTERM.
func (p *PreviewServer) StartWithGracefulShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := p.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(ctx)
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the preview server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

// Port returns the port the server is configured for.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the local URL of the preview server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// statusHandler reports the bundle state as JSON.
func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	var fileCount int
	filepath.Walk(p.bundlePath, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			fileCount++
		}
		return nil
	})

	fmt.Fprintf(w, `{"status":"running","port":%d,"bundle_path":%q,"file_count":%d}`,
		p.port, p.bundlePath, fileCount)
}

// noCacheMiddleware disables browser caching so re-exports are always
// picked up on refresh.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// StartPreview starts a preview server for bundlePath with automatic port
// selection, blocking until interrupted.
func StartPreview(bundlePath string) error {
	port, err := FindAvailablePort(DefaultPreviewPort, PreviewPortRangeEnd)
	if err != nil {
		return fmt.Errorf("could not find available port: %w", err)
	}
	return NewPreviewServer(bundlePath, port).StartWithGracefulShutdown()
}
