package render

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mlindner/patchpack/pkg/pack"
	"github.com/mlindner/patchpack/pkg/patch"
)

// JSONOption configures JSON export via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID uuid.UUID
	stage string
	seed  uint64
}

// WithJSONRunID records the run identifier in the JSON output. Without
// this option a new identifier is generated per call.
func WithJSONRunID(id uuid.UUID) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithJSONStage records the stage name the layout was captured at.
func WithJSONStage(s string) JSONOption { return func(r *jsonRenderer) { r.stage = s } }

// WithJSONSeed records the generation seed, enabling reproducible
// re-runs from the exported document alone.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	RunID   string        `json:"run_id"`
	Stage   string        `json:"stage,omitempty"`
	Seed    uint64        `json:"seed,omitempty"`
	Config  pack.Config   `json:"config"`
	Patches []patch.Patch `json:"patches"`
}

// RenderJSON exports a layout and its run metadata as a pretty-printed
// JSON document. The document carries everything needed to re-render
// the layout: the configuration, the seed, and every patch's placement.
func RenderJSON(patches []patch.Patch, cfg pack.Config, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.runID == uuid.Nil {
		r.runID = uuid.New()
	}

	if patches == nil {
		patches = []patch.Patch{}
	}
	out := jsonOutput{
		RunID:   r.runID.String(),
		Stage:   r.stage,
		Seed:    r.seed,
		Config:  cfg,
		Patches: patches,
	}
	return json.MarshalIndent(out, "", "  ")
}
