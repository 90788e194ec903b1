package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mlindner/patchpack/pkg/cache"
	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/pipeline"
)

// serveCommand creates the serve command, which exposes an interactive
// packing session over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		seed    uint64
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive packing session over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = c.Config.Pack.Seed
			}
			cfg := pack.Config{
				Cols:    c.Config.Grid.Cols,
				Rows:    c.Config.Grid.Rows,
				Width:   c.Config.Canvas.Width,
				Height:  c.Config.Canvas.Height,
				Padding: c.Config.Canvas.Padding,
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv, err := newServer(runner, cfg, seed)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr, "session", srv.session)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
				return cmd.Context().Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generation seed (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// server holds one interactive packing session. The pipeline is
// mutated by /advance and /reset, so every access goes through mu.
type server struct {
	mu       sync.Mutex
	pipeline *pack.Pipeline
	cfg      pack.Config
	seed     uint64
	session  uuid.UUID
	runner   *pipeline.Runner
}

func newServer(runner *pipeline.Runner, cfg pack.Config, seed uint64) (*server, error) {
	pl, err := pack.NewSeeded(cfg, seed)
	if err != nil {
		return nil, err
	}

	session := uuid.New()
	// Scope this session's artifact keys so concurrent servers sharing
	// a Redis backend don't collide.
	runner.Keyer = cache.NewScopedKeyer(runner.Keyer, "session:"+session.String()+":")

	return &server{
		pipeline: pl,
		cfg:      cfg,
		seed:     seed,
		session:  session,
		runner:   runner,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/layout.svg", s.handleLayoutSVG)
	r.Get("/layout.json", s.handleLayoutJSON)
	r.Post("/advance", s.handleAdvance)
	r.Post("/reset", s.handleReset)

	return r
}

// renderArtifact renders the current layout in one format under the
// session lock.
func (s *server) renderArtifact(ctx context.Context, format string) ([]byte, error) {
	s.mu.Lock()
	patches := s.pipeline.Patches()
	stage := s.pipeline.Stage()
	s.mu.Unlock()

	opts := pipeline.Options{
		Cols:    s.cfg.Cols,
		Rows:    s.cfg.Rows,
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
		Padding: s.cfg.Padding,
		Seed:    s.seed,
		Stage:   stage.String(),
		Formats: []string{format},
		Labels:  true,
	}
	artifacts, err := s.runner.Render(ctx, patches, opts)
	if err != nil {
		return nil, err
	}
	return artifacts[format], nil
}

func (s *server) handleLayoutSVG(w http.ResponseWriter, r *http.Request) {
	data, err := s.renderArtifact(r.Context(), pipeline.FormatSVG)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (s *server) handleLayoutJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.renderArtifact(r.Context(), pipeline.FormatJSON)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// stageState is the JSON body returned by /advance and /reset.
type stageState struct {
	Session string `json:"session"`
	Stage   string `json:"stage"`
	Done    bool   `json:"done"`
}

func (s *server) state() stageState {
	return stageState{
		Session: s.session.String(),
		Stage:   s.pipeline.StageName(),
		Done:    s.pipeline.Done(),
	}
}

func (s *server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.pipeline.Advance()
	state := s.state()
	s.mu.Unlock()

	writeJSON(w, state)
}

func (s *server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed++
	pl, err := pack.NewSeeded(s.cfg, s.seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.pipeline = pl
	writeJSON(w, s.state())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>patchpack</title>
<style>
  body { font-family: sans-serif; margin: 2rem; background: #fafafa; }
  #stage { color: #555; }
  button { margin-right: 0.5rem; }
  object { border: 1px solid #ddd; background: white; }
</style>
</head>
<body>
<h1>patchpack <span id="stage"></span></h1>
<p>
  <button onclick="advance()">Advance</button>
  <button onclick="reset()">Reset</button>
</p>
<object id="layout" data="/layout.svg" type="image/svg+xml"></object>
<script>
  function refresh(state) {
    document.getElementById('stage').textContent = '· ' + state.stage + (state.done ? ' (done)' : '');
    var obj = document.getElementById('layout');
    obj.data = '/layout.svg?t=' + Date.now();
  }
  function advance() {
    fetch('/advance', {method: 'POST'}).then(r => r.json()).then(refresh);
  }
  function reset() {
    fetch('/reset', {method: 'POST'}).then(r => r.json()).then(refresh);
  }
</script>
</body>
</html>
`

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}
