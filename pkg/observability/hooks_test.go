package observability

import (
	"context"
	"testing"
	"time"
)

// recordingPipelineHooks counts pipeline events for assertions.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	layoutStarts    int
	layoutCompletes int
	renderStarts    int
	renderCompletes int
}

func (h *recordingPipelineHooks) OnLayoutStart(context.Context, string, int) {
	h.layoutStarts++
}

func (h *recordingPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {
	h.layoutCompletes++
}

func (h *recordingPipelineHooks) OnRenderStart(context.Context, []string) {
	h.renderStarts++
}

func (h *recordingPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.renderCompletes++
}

// recordingCacheHooks counts cache events for assertions.
type recordingCacheHooks struct {
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// No-op hooks must be callable without panicking.
	ctx := context.Background()
	Pipeline().OnLayoutStart(ctx, "Initial", 6)
	Pipeline().OnLayoutComplete(ctx, "Initial", time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, []string{"svg"})
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "layout", 128)
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	hooks := &recordingPipelineHooks{}
	SetPipelineHooks(hooks)

	ctx := context.Background()
	Pipeline().OnLayoutStart(ctx, "Packed Upwards", 6)
	Pipeline().OnLayoutComplete(ctx, "Packed Upwards", time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, []string{"svg", "json"})
	Pipeline().OnRenderComplete(ctx, []string{"svg", "json"}, time.Millisecond, nil)

	if hooks.layoutStarts != 1 || hooks.layoutCompletes != 1 {
		t.Errorf("layout events = %d/%d, want 1/1", hooks.layoutStarts, hooks.layoutCompletes)
	}
	if hooks.renderStarts != 1 || hooks.renderCompletes != 1 {
		t.Errorf("render events = %d/%d, want 1/1", hooks.renderStarts, hooks.renderCompletes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	hooks := &recordingCacheHooks{}
	SetCacheHooks(hooks)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "layout")
	Cache().OnCacheMiss(ctx, "layout")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)

	if hooks.hits != 1 || hooks.misses != 2 || hooks.sets != 1 {
		t.Errorf("cache events = %d hits, %d misses, %d sets; want 1/2/1", hooks.hits, hooks.misses, hooks.sets)
	}
}

func TestSetHooksIgnoresNil(t *testing.T) {
	t.Cleanup(Reset)

	hooks := &recordingPipelineHooks{}
	SetPipelineHooks(hooks)
	SetPipelineHooks(nil)

	Pipeline().OnLayoutStart(context.Background(), "Initial", 1)
	if hooks.layoutStarts != 1 {
		t.Error("nil registration should not replace existing hooks")
	}
}

func TestReset(t *testing.T) {
	hooks := &recordingPipelineHooks{}
	SetPipelineHooks(hooks)
	Reset()

	Pipeline().OnLayoutStart(context.Background(), "Initial", 1)
	if hooks.layoutStarts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
