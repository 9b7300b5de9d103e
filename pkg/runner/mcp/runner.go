package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Vishwas-Chakilam/Journal-AI-Powered-Diary-App/pkg/app"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// ParseTransport accepts "http" (or empty) and "stdio".
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", s)
	}
}

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8080
	DefaultPath = "/mcp"
)

// Runner serves the journal over MCP until the context ends.
type Runner struct {
	Service *app.Service
	Name    string
	Version string
	Logger  *slog.Logger

	Transport Transport
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string

	// Ready is called with the endpoint URL once the HTTP listener is up.
	Ready func(url string)
}

// NewServer builds the MCP server with every journal tool and resource.
func NewServer(svc *app.Service, name, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read, search and write entries in a personal journal, and inspect writing history via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	wrapped := NewService(svc)
	registerResources(srv, wrapped)
	registerTools(srv, wrapped)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires the journal service")
	}
	srv := NewServer(r.Service, orDefault(r.Name, "journal"), orDefault(r.Version, "dev"))

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

// Router mounts the streamable HTTP handler at path behind request logging
// and panic recovery. GET /healthz answers liveness probes.
func Router(srv *server.MCPServer, path string, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	path = endpointPath(path)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(path, server.NewStreamableHTTPServer(srv, server.WithEndpointPath(path)))
	return r
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	tls := r.TLSCert != "" || r.TLSKey != ""
	if tls && (r.TLSCert == "" || r.TLSKey == "") {
		return errors.New("both --http-tls-cert and --http-tls-key are required for https")
	}
	if r.Port < 0 || r.Port > 65535 {
		return fmt.Errorf("invalid http port %d", r.Port)
	}
	host := orDefault(r.Host, DefaultHost)

	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(r.Port)))
	if err != nil {
		return err
	}
	if r.Ready != nil {
		r.Ready(endpointURL(ln.Addr(), host, r.Path, tls))
	}

	hs := &http.Server{
		Handler:           Router(srv, r.Path, r.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(sctx)
	})
	defer stop()

	if tls {
		err = hs.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = hs.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// endpointURL renders the address clients should connect to. Wildcard hosts
// are shown as the loopback address.
func endpointURL(addr net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + addr.String() + endpointPath(path)
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = DefaultHost
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + endpointPath(path)
}

func endpointPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
