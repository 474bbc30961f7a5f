package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/runlog/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Defaults for the HTTP transport.
const (
	DefaultAddr = "127.0.0.1:8080"
	DefaultPath = "/mcp"

	// HealthPath answers plain GETs with goal and run counts.
	HealthPath = "/healthz"

	shutdownGrace = 5 * time.Second
)

const instructions = `runlog tracks running goals and the runs logged against them.
Set a target with add_goal (kind: duration, mile, distance, sprint or custom) and call complete_goal once it is reached.
log_run records a run; runs dated on any day but today go straight to history.
Ids accept a unique prefix. Read runlog://summary for counts and the current streak.`

// Runner serves one app.Service to MCP clients.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Transport Transport
	Addr      string
	Path      string
	TLSCert   string
	TLSKey    string

	// OnListening receives the endpoint URL once the HTTP listener is bound.
	OnListening func(url string)
}

// Do validates the runner and serves until ctx is done or stdio closes.
func (r Runner) Do(ctx context.Context) error {
	if err := r.validate(); err != nil {
		return err
	}
	svc := NewService(r.Service)
	srv := newServer(svc, r.name(), r.version())

	if r.Transport == TransportStdio {
		slog.Debug("mcp serving", "transport", TransportStdio)
		return server.ServeStdio(srv)
	}
	return r.serveHTTP(ctx, r.handler(srv, svc))
}

func (r Runner) validate() error {
	if r.Service == nil {
		return errors.New("mcp: runner requires a service")
	}
	switch r.Transport {
	case "", TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("mcp: unknown transport %q", r.Transport)
	}
	if (r.TLSCert == "") != (r.TLSKey == "") {
		return errors.New("mcp: tls cert and key must be set together")
	}
	return nil
}

func (r Runner) name() string {
	if r.Name == "" {
		return "runlog"
	}
	return r.Name
}

func (r Runner) version() string {
	if r.Version == "" {
		return "dev"
	}
	return r.Version
}

func (r Runner) addr() string {
	if r.Addr == "" {
		return DefaultAddr
	}
	return r.Addr
}

func (r Runner) path() string {
	p := strings.TrimSpace(r.Path)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r Runner) tls() bool {
	return r.TLSCert != "" && r.TLSKey != ""
}

func newServer(svc *Service, name, version string) *server.MCPServer {
	srv := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(instructions),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	registerTools(srv, svc)
	registerResources(srv, svc)
	return srv
}

// handler mounts the MCP endpoint and the health check.
func (r Runner) handler(srv *server.MCPServer, svc *Service) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(r.path(), server.NewStreamableHTTPServer(srv))
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, req *http.Request) {
		sum, err := svc.Summary(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"goals":  sum.ActiveGoals,
			"runs":   sum.TotalRuns,
			"streak": sum.Streak,
		})
	})
	return mux
}

func (r Runner) serveHTTP(ctx context.Context, h http.Handler) error {
	ln, err := net.Listen("tcp", r.addr())
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", r.addr(), err)
	}

	scheme := "http"
	if r.tls() {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s%s", scheme, ln.Addr(), r.path())
	slog.Debug("mcp serving", "transport", TransportHTTP, "url", url)
	if r.OnListening != nil {
		r.OnListening(url)
	}

	httpSrv := &http.Server{Handler: h}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.tls() {
		err = httpSrv.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
