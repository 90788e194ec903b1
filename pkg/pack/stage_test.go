package pack

import "testing"

func TestStageOrder(t *testing.T) {
	want := []Stage{
		StageInitial,
		StageUprighted,
		StageSortedByHeight,
		StageFlowed,
		StagePackedUpwards,
	}

	got := Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() returned %d stages, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s != want[i] {
			t.Errorf("Stages()[%d] = %v, want %v", i, s, want[i])
		}
	}

	// Next walks the same sequence.
	s := StageInitial
	for i := 1; i < len(want); i++ {
		next, ok := s.Next()
		if !ok {
			t.Fatalf("%v.Next() reported terminal early", s)
		}
		if next != want[i] {
			t.Errorf("%v.Next() = %v, want %v", s, next, want[i])
		}
		s = next
	}

	if _, ok := s.Next(); ok {
		t.Errorf("%v.Next() should report terminal", s)
	}
	if !s.Terminal() {
		t.Errorf("%v should be terminal", s)
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
		ok   bool
	}{
		{"initial", StageInitial, true},
		{"Packed Upwards", StagePackedUpwards, true},
		{"packed", StagePackedUpwards, true},
		{"SORTED", StageSortedByHeight, true},
		{"sorted by height", StageSortedByHeight, true},
		{"sideways", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseStage(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseStage(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStageNames(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageInitial, "Initial"},
		{StageUprighted, "Uprighted"},
		{StageSortedByHeight, "Sorted by Height"},
		{StageFlowed, "Flowed"},
		{StagePackedUpwards, "Packed Upwards"},
		{Stage(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
