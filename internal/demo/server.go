package demo

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wayfare-dev/wayfare/pkg/history"
	"github.com/wayfare-dev/wayfare/pkg/interceptor"
	"github.com/wayfare-dev/wayfare/pkg/nav"
	"github.com/wayfare-dev/wayfare/pkg/remote"
)

// Server wires a complete Wayfare stack: route table, render engine and
// outlet, observability queues, and a WebSocket history host driving real
// browser shells.
type Server struct {
	cfg     Config
	log     *slog.Logger
	pipe    *nav.Pipeline
	host    *remote.Host
	adapter *history.Adapter
	outlet  *htmlOutlet
}

// NewServer builds a demo server from the given configuration.
func NewServer(cfg Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}

	table, err := BuildTable()
	if err != nil {
		return nil, fmt.Errorf("demo: building route table: %w", err)
	}

	outlet := &htmlOutlet{}
	host := remote.NewHost(remote.WithHostLogger(log))
	adapter := history.NewAdapter(host, history.WithAdapterLogger(log))

	queues := []nav.Queue{
		interceptor.Logging(interceptor.WithLogger(log)),
	}
	if cfg.MetricsEnabled {
		queues = append(queues, interceptor.Metrics())
	}

	pipe := nav.New(table, htmlEngine{}, outlet,
		nav.WithQueues(queues...),
		nav.WithHistory(adapter),
		nav.WithLogger(log),
	)

	if err := adapter.Connect(pipe, cfg.BaseHref, cfg.HashBased); err != nil {
		return nil, fmt.Errorf("demo: connecting history adapter: %w", err)
	}

	return &Server{
		cfg:     cfg,
		log:     log,
		pipe:    pipe,
		host:    host,
		adapter: adapter,
		outlet:  outlet,
	}, nil
}

// Pipeline exposes the navigation pipeline, mainly for tests.
func (s *Server) Pipeline() *nav.Pipeline {
	return s.pipe
}

// Close disconnects the adapter and all shells.
func (s *Server) Close() error {
	s.host.Close()
	return s.adapter.Disconnect()
}

// Handler returns the demo HTTP surface: the shell page, the history
// WebSocket, a navigation trigger, and optionally Prometheus metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/_wayfare/ws", s.host.HandleWebSocket)
	mux.HandleFunc("/_wayfare/navigate", s.handleNavigate)
	if s.cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.HandleFunc("/", s.handleShell)
	return mux
}

// handleNavigate triggers a server-side navigation; the committed entry
// fans out to every connected shell.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	target := r.URL.Query().Get("to")
	if target == "" {
		http.Error(w, "missing to parameter", http.StatusBadRequest)
		return
	}

	state, err := s.pipe.Navigate(r.Context(), target)
	if err != nil {
		if nav.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, state.Path)
}

// handleShell serves the SPA shell with the current rendered view inlined.
func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	page := strings.Replace(shellHTML, "<!--wayfare:view-->", s.outlet.HTML(), 1)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// shellHTML is the single document every path serves. The inline script
// mirrors committed navigations into the browser history and reports
// traversal back over the WebSocket.
const shellHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Wayfare Demo</title>
</head>
<body>
  <nav>
    <a href="#" data-nav="">home</a>
    <a href="#" data-nav="users">users</a>
    <a href="#" data-nav="users/7">user 7</a>
    <a href="#" data-nav="docs">docs</a>
    <a href="#" data-nav="settings">settings</a>
  </nav>
  <main id="outlet"><!--wayfare:view--></main>
  <script>
    (function() {
      var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(proto + location.host + '/_wayfare/ws');

      ws.onmessage = function(ev) {
        var msg = JSON.parse(ev.data);
        var url = msg.path + (msg.search ? '?' + msg.search : '');
        if (msg.type === 'push') {
          history.pushState({wayfare: msg.path}, '', url);
        } else if (msg.type === 'replace') {
          history.replaceState({wayfare: msg.path}, '', url);
        }
        location.reload();
      };

      window.addEventListener('popstate', function() {
        if (ws.readyState === WebSocket.OPEN) {
          ws.send(JSON.stringify({type: 'pop', path: location.pathname}));
        }
      });

      document.querySelectorAll('[data-nav]').forEach(function(a) {
        a.addEventListener('click', function(ev) {
          ev.preventDefault();
          fetch('/_wayfare/navigate?to=' + encodeURIComponent(a.dataset.nav), {method: 'POST'});
        });
      });
    })();
  </script>
</body>
</html>
`
