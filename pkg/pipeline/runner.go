package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wetland/pkg/observability"
	"github.com/matzehuels/wetland/pkg/render/plan"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// Runner executes the sizing pipeline.
// Both CLI and server use this so they log and report the same way.
//
// The Runner holds no per-run state. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	// Sizer computes bed geometry. Nil uses the default constants.
	Sizer  *wetland.Sizer
	Logger *log.Logger
}

// NewRunner creates a runner that sizes with the default constants.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete size → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Size
	sizeStart := time.Now()
	sized, err := r.Size(ctx, opts.Inputs)
	if err != nil {
		return nil, err
	}
	result.Sizing = sized
	result.Stats.SizeTime = time.Since(sizeStart)
	result.Stats.Sections = sized.SectionCount

	opts.Logger.Info("sized wetland",
		"regime", sized.Inputs.Regime,
		"area", fmt.Sprintf("%.2f", sized.RequiredArea),
		"sections", sized.SectionCount,
		"duration", result.Stats.SizeTime)

	// Stage 2: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Layout = plan.Build(sized, plan.WithScale(opts.Scale))

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, sized, result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"viz", opts.VizType,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Size runs only the sizing stage.
func (r *Runner) Size(ctx context.Context, in wetland.Inputs) (wetland.Result, error) {
	if err := ctx.Err(); err != nil {
		return wetland.Result{}, err
	}

	hooks := observability.Pipeline()
	regime := in.Regime.String()
	hooks.OnSizeStart(ctx, regime)
	start := time.Now()

	var (
		res wetland.Result
		err error
	)
	if r.Sizer != nil {
		res, err = r.Sizer.Size(in)
	} else {
		res, err = wetland.Size(in)
	}

	hooks.OnSizeComplete(ctx, regime, res.SectionCount, time.Since(start), err)
	if err != nil {
		r.Logger.Debug("sizing rejected", "error", err)
		return wetland.Result{}, err
	}
	return res, nil
}

// Render generates artifacts for an already sized design.
func (r *Runner) Render(ctx context.Context, sized wetland.Result, l plan.Layout, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()

	var (
		artifacts map[string][]byte
		err       error
	)
	if opts.IsSchematic() {
		artifacts, err = renderSchematic(sized, l, opts)
	} else {
		artifacts, err = renderPlan(sized, l, opts)
	}

	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
