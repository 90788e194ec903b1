package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mlindner/patchpack/pkg/pack"
)

func TestStagesCommandList(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.stagesCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("stages: %v", err)
	}

	for _, s := range pack.Stages() {
		if !strings.Contains(out.String(), s.String()) {
			t.Errorf("output missing stage %q", s)
		}
	}
}

func TestStagesCommandUnknownCurrent(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.stagesCommand()

	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--current", "bogus"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("stages --current bogus should error")
	}
}

func TestStagesCommandUnknownFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.stagesCommand()

	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--format", "tiff"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("stages --format tiff should error")
	}
}
