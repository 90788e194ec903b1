package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlindner/patchpack/pkg/cache"
	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/pipeline"
)

func testServer(t *testing.T) *server {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
	srv, err := newServer(runner, pack.Config{Cols: 2, Rows: 2, Width: 100, Height: 100, Padding: 4}, 1)
	if err != nil {
		t.Fatalf("newServer() error: %v", err)
	}
	return srv
}

func TestServeIndex(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET / status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("GET / content type = %q, want text/html", ct)
	}
}

func TestServeLayoutSVG(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/layout.svg")
	if err != nil {
		t.Fatalf("GET /layout.svg: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /layout.svg status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}

	var body strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		body.Write(buf[:n])
		if err != nil {
			break
		}
	}
	if !strings.Contains(body.String(), "<svg") {
		t.Error("response should contain SVG markup")
	}
}

func TestServeAdvance(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/advance", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /advance: %v", err)
	}
	defer resp.Body.Close()

	var state stageState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if state.Stage != pack.StageUprighted.String() {
		t.Errorf("stage after advance = %q, want %q", state.Stage, pack.StageUprighted)
	}
	if state.Done {
		t.Error("session should not be done after one advance")
	}
	if state.Session != srv.session.String() {
		t.Errorf("session = %q, want %q", state.Session, srv.session)
	}
}

func TestServeAdvanceToTerminal(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	var state stageState
	for range pack.Stages() {
		resp, err := http.Post(ts.URL+"/advance", "application/json", nil)
		if err != nil {
			t.Fatalf("POST /advance: %v", err)
		}
		err = json.NewDecoder(resp.Body).Decode(&state)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}

	if !state.Done {
		t.Error("session should be done after advancing past every stage")
	}
	if state.Stage != pack.StagePackedUpwards.String() {
		t.Errorf("terminal stage = %q, want %q", state.Stage, pack.StagePackedUpwards)
	}
}

func TestServeReset(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	// Advance once, then reset back to the initial stage.
	if _, err := http.Post(ts.URL+"/advance", "application/json", nil); err != nil {
		t.Fatalf("POST /advance: %v", err)
	}

	resp, err := http.Post(ts.URL+"/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /reset: %v", err)
	}
	defer resp.Body.Close()

	var state stageState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if state.Stage != pack.StageInitial.String() {
		t.Errorf("stage after reset = %q, want %q", state.Stage, pack.StageInitial)
	}
	if srv.seed != 2 {
		t.Errorf("seed after reset = %d, want 2", srv.seed)
	}
}

func TestServeLayoutJSON(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/layout.json")
	if err != nil {
		t.Fatalf("GET /layout.json: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Stage   string `json:"stage"`
		Patches []struct {
			ID int `json:"id"`
		} `json:"patches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode layout: %v", err)
	}

	if payload.Stage != pack.StageInitial.String() {
		t.Errorf("layout stage = %q, want %q", payload.Stage, pack.StageInitial)
	}
	if len(payload.Patches) != 4 {
		t.Errorf("layout has %d patches, want 4", len(payload.Patches))
	}
}
