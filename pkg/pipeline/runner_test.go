package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/observability"
	"github.com/matzehuels/wetland/pkg/wetland"
)

func village() wetland.Inputs {
	return wetland.Inputs{
		Population:    1000,
		PerCapitaFlow: 150,
		InfluentConc:  300,
		EffluentConc:  30,
		Regime:        wetland.Horizontal,
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks

	mu     sync.Mutex
	events []string
	errs   []error
}

func (h *recordingHooks) OnSizeStart(_ context.Context, regime string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "size_start:"+regime)
}

func (h *recordingHooks) OnSizeComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "size_complete")
	h.errs = append(h.errs, err)
}

func (h *recordingHooks) OnRenderStart(_ context.Context, vizType string, _ []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render_start:"+vizType)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, _ string, _ []string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, "render_complete")
	h.errs = append(h.errs, err)
}

func TestExecutePlan(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Inputs:  village(),
		Formats: []string{FormatSVG, FormatJSON, FormatHTML},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.Sections != 3 {
		t.Errorf("Stats.Sections = %d, want 3", result.Stats.Sections)
	}
	if len(result.Layout.Blocks) != 3 {
		t.Errorf("layout blocks = %d, want 3", len(result.Layout.Blocks))
	}
	if got := result.Layout.Blocks[0].Width; got != 15*DefaultScale {
		t.Errorf("block width = %v px, want %v", got, 15*DefaultScale)
	}

	svg := string(result.Artifacts[FormatSVG])
	if got := strings.Count(svg, `class="section"`); got != 3 {
		t.Errorf("svg sections = %d, want 3", got)
	}
	if !strings.Contains(string(result.Artifacts[FormatHTML]), "Section 2") {
		t.Error("html artifact missing section label")
	}

	var doc struct {
		Result wetland.Result `json:"result"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if doc.Result.SectionCount != result.Sizing.SectionCount {
		t.Errorf("json section count = %d, want %d", doc.Result.SectionCount, result.Sizing.SectionCount)
	}
}

func TestExecuteSchematicDOT(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		Inputs:  village(),
		VizType: VizSchematic,
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph") {
		t.Fatalf("dot artifact is not a digraph:\n%s", dot)
	}
	for i := 1; i <= 3; i++ {
		if !strings.Contains(dot, "section_"+string(rune('0'+i))) {
			t.Errorf("dot missing section %d", i)
		}
	}
}

func TestExecuteInvalidInputs(t *testing.T) {
	in := village()
	in.Population = 0
	in.PerCapitaFlow = -1

	_, err := NewRunner(nil).Execute(context.Background(), Options{Inputs: in})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	fields := errors.Fields(err)
	if len(fields) != 2 {
		t.Errorf("fields = %v, want population and per_capita_flow", fields)
	}
}

func TestExecuteDegenerate(t *testing.T) {
	in := village()
	in.EffluentConc = in.InfluentConc

	_, err := NewRunner(nil).Execute(context.Background(), Options{Inputs: in})
	if !errors.Is(err, errors.ErrCodeDegenerateResult) {
		t.Fatalf("expected DEGENERATE_RESULT, got %v", err)
	}
}

func TestExecuteRejectsBadOptionsBeforeSizing(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := NewRunner(nil).Execute(context.Background(), Options{
		Inputs: village(),
		Style:  "sketchy",
	})
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Fatalf("expected INVALID_STYLE, got %v", err)
	}
	if len(hooks.events) != 0 {
		t.Errorf("no stage should run, got events %v", hooks.events)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, Options{Inputs: village()})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(nil).Execute(context.Background(), Options{Inputs: village()}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := []string{"size_start:HF", "size_complete", "render_start:plan", "render_complete"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
	for _, err := range hooks.errs {
		if err != nil {
			t.Errorf("hook reported error: %v", err)
		}
	}
}

func TestSizeReportsErrorToHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	in := village()
	in.Regime = "XX"
	if _, err := NewRunner(nil).Size(context.Background(), in); err == nil {
		t.Fatal("expected error for unknown regime")
	}
	if len(hooks.errs) != 1 || hooks.errs[0] == nil {
		t.Errorf("hook errors = %v, want one non-nil", hooks.errs)
	}
}

func TestRunnerInjectedSizer(t *testing.T) {
	c := wetland.DefaultConstants()
	c.MaxSectionWidth = 1000
	sizer, err := wetland.NewSizer(c)
	if err != nil {
		t.Fatalf("NewSizer() error: %v", err)
	}

	runner := NewRunner(nil)
	runner.Sizer = sizer
	res, err := runner.Size(context.Background(), village())
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	if res.SectionCount != 1 {
		t.Errorf("SectionCount = %d, want 1 with a wide section limit", res.SectionCount)
	}
}
