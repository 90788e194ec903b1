package stagegraph

import (
	"strings"
	"testing"

	"github.com/mlindner/patchpack/pkg/pack"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(Options{})

	for _, s := range pack.Stages() {
		if !strings.Contains(dot, `"`+s.String()+`"`) {
			t.Errorf("stage %q missing from DOT output", s)
		}
	}

	edges := strings.Count(dot, "->")
	if want := len(pack.Stages()) - 1; edges != want {
		t.Errorf("edge count = %d, want %d", edges, want)
	}
	if strings.Contains(dot, "lightblue") {
		t.Error("no stage should be highlighted by default")
	}
}

func TestToDOTHighlight(t *testing.T) {
	dot := ToDOT(Options{Current: pack.StageFlowed, Highlight: true})

	if !strings.Contains(dot, `"Flowed" [fillcolor=lightblue];`) {
		t.Error("current stage should be highlighted")
	}
	if strings.Count(dot, "lightblue") != 1 {
		t.Error("exactly one stage should be highlighted")
	}
}
