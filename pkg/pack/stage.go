package pack

import "strings"

// Stage identifies one step of the packing sequence. The set is closed;
// transforms dispatch over it exhaustively.
type Stage int

const (
	// StageInitial holds freshly generated patches, one per grid cell.
	StageInitial Stage = iota
	// StageUprighted holds patches rotated so height >= width.
	StageUprighted
	// StageSortedByHeight holds patches in a single row, tallest first.
	StageSortedByHeight
	// StageFlowed holds patches flowed into rows bounded by the canvas
	// width.
	StageFlowed
	// StagePackedUpwards holds the terminal, gravity-compacted layout.
	StagePackedUpwards
)

// stageNames are the human-readable labels shown by the viewers.
var stageNames = [...]string{
	StageInitial:        "Initial",
	StageUprighted:      "Uprighted",
	StageSortedByHeight: "Sorted by Height",
	StageFlowed:         "Flowed",
	StagePackedUpwards:  "Packed Upwards",
}

// String returns the stage's display label.
func (s Stage) String() string {
	if s < StageInitial || s > StagePackedUpwards {
		return "Unknown"
	}
	return stageNames[s]
}

// Next returns the stage following s. ok is false at the terminal stage.
func (s Stage) Next() (next Stage, ok bool) {
	if s.Terminal() {
		return s, false
	}
	return s + 1, true
}

// Terminal reports whether s is the last stage of the sequence.
func (s Stage) Terminal() bool {
	return s >= StagePackedUpwards
}

// stageAliases maps the short lowercase names accepted on the command
// line to stages.
var stageAliases = map[string]Stage{
	"initial":   StageInitial,
	"uprighted": StageUprighted,
	"sorted":    StageSortedByHeight,
	"flowed":    StageFlowed,
	"packed":    StagePackedUpwards,
}

// ParseStage resolves a stage from its display label or short alias
// (initial, uprighted, sorted, flowed, packed). Matching is
// case-insensitive.
func ParseStage(name string) (Stage, bool) {
	lower := strings.ToLower(name)
	if s, ok := stageAliases[lower]; ok {
		return s, true
	}
	for s, label := range stageNames {
		if strings.ToLower(label) == lower {
			return Stage(s), true
		}
	}
	return 0, false
}

// Stages returns all stages in execution order.
func Stages() []Stage {
	return []Stage{
		StageInitial,
		StageUprighted,
		StageSortedByHeight,
		StageFlowed,
		StagePackedUpwards,
	}
}
