package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	wio "github.com/matzehuels/wetland/pkg/io"
	"github.com/matzehuels/wetland/pkg/pipeline"
	"github.com/matzehuels/wetland/pkg/render/summary"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// sizeOpts holds the command-line flags for the size command.
type sizeOpts struct {
	raw     wetland.RawInputs // sizing inputs as typed
	file    string            // design brief (toml, yaml, json)
	output  string            // output file (single format) or base path
	formats string            // comma-separated output formats
	vizType string            // plan or schematic
	style   string            // labeled or plain
	scale   float64           // plan pixels per metre
	save    string            // write the inputs back out as a design brief
	json    bool              // print the result as JSON instead of the table
}

// sizeCommand creates the size command.
func (c *CLI) sizeCommand() *cobra.Command {
	opts := sizeOpts{
		raw:     wetland.RawInputs{Regime: string(wetland.Horizontal)},
		vizType: pipeline.DefaultVizType,
		style:   pipeline.DefaultStyle,
		scale:   pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Size a constructed wetland bed",
		Long: `Size a constructed-wetland bed and print the design summary.

Inputs come from flags or from a design brief (--file). Flags given on the
command line override the brief. When --output or --format is set, the plan
(or the flow schematic with --viz schematic) is written to disk.`,
		Example: `  wetland size --population 1000 --flow 150 --ci 300 --ce 30 --type HF
  wetland size --file village.toml -f svg,pdf
  wetland size --file village.yaml --viz schematic -o village.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyDesignFile(cmd, &opts); err != nil {
				return err
			}
			// The pipeline treats a zero scale as unset, so an explicit one is checked here.
			if cmd.Flags().Changed("scale") {
				if err := pipeline.ValidateScale(opts.scale); err != nil {
					return err
				}
			}
			write := cmd.Flags().Changed("output") || cmd.Flags().Changed("format") || opts.formats != ""
			return c.runSize(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts, write)
		},
	}

	cmd.Flags().StringVar(&opts.raw.Population, "population", "", "number of people served")
	cmd.Flags().StringVar(&opts.raw.PerCapitaFlow, "flow", "", "wastewater per person (L/day)")
	cmd.Flags().StringVar(&opts.raw.InfluentConc, "ci", "", "influent BOD concentration (mg/L)")
	cmd.Flags().StringVar(&opts.raw.EffluentConc, "ce", "", "target effluent BOD concentration (mg/L)")
	cmd.Flags().StringVar(&opts.raw.Regime, "type", opts.raw.Regime, "wetland flow type: HF (horizontal) or VF (vertical)")
	cmd.Flags().StringVar(&opts.file, "file", "", "design brief (.toml, .yaml, .json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, html (plan), dot (schematic)")
	cmd.Flags().StringVar(&opts.vizType, "viz", opts.vizType, "visualization: plan (default), schematic")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "plan style: labeled (default), plain")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "plan scale in pixels per metre")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the inputs as a design brief (.toml, .yaml, .json)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the sizing result as JSON")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions([]string{"HF", "VF"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("viz", cobra.FixedCompletions([]string{pipeline.VizPlan, pipeline.VizSchematic}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions([]string{"labeled", "plain"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("file", "toml", "yaml", "yml", "json")

	return cmd
}

// applyDesignFile fills every input and render option not given as a flag
// from the design brief named by --file.
func applyDesignFile(cmd *cobra.Command, opts *sizeOpts) error {
	if opts.file == "" {
		return nil
	}
	d, err := wio.ImportDesign(opts.file)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("loaded design brief", "file", opts.file, "name", d.Name)

	flags := cmd.Flags()
	set := func(flag string, dst *string, v string) {
		if !flags.Changed(flag) && v != "" {
			*dst = v
		}
	}
	set("population", &opts.raw.Population, d.Inputs.Population)
	set("flow", &opts.raw.PerCapitaFlow, d.Inputs.PerCapitaFlow)
	set("ci", &opts.raw.InfluentConc, d.Inputs.InfluentConc)
	set("ce", &opts.raw.EffluentConc, d.Inputs.EffluentConc)
	set("type", &opts.raw.Regime, d.Inputs.Regime)
	set("viz", &opts.vizType, d.Render.VizType)
	set("style", &opts.style, d.Render.Style)
	if !flags.Changed("format") && len(d.Render.Formats) > 0 {
		opts.formats = strings.Join(d.Render.Formats, ",")
	}
	if !flags.Changed("scale") && d.Render.Scale != 0 {
		if err := pipeline.ValidateScale(d.Render.Scale); err != nil {
			return err
		}
		opts.scale = d.Render.Scale
	}
	return nil
}

// runSize sizes the design, prints the summary and, if asked, writes artifacts.
func (c *CLI) runSize(ctx context.Context, stdout, stderr io.Writer, opts *sizeOpts, write bool) error {
	logger := loggerFromContext(ctx)

	in, err := wetland.ParseInputs(opts.raw)
	if err != nil {
		return err
	}

	var formats []string
	if write {
		if formats, err = resolveFormats(opts.formats, opts.output); err != nil {
			return err
		}
	}

	runner := c.newRunner()
	var res *pipeline.Result
	if write {
		popts := pipeline.Options{
			Inputs:  in,
			VizType: opts.vizType,
			Formats: formats,
			Style:   opts.style,
			Scale:   opts.scale,
			Logger:  logger,
		}
		if err := popts.ValidateAndSetDefaults(); err != nil {
			return err
		}

		var spin *Spinner
		if needsConverter(formats) && isTerminal(stderr) {
			spin = newSpinner(ctx, stderr, "Rendering "+strings.Join(formats, ", ")+"...")
			spin.Start()
		}
		res, err = runner.Execute(ctx, popts)
		if spin != nil {
			interrupted := spin.Cancelled()
			spin.Stop()
			if interrupted && err == nil {
				return ctx.Err()
			}
		}
		if err != nil {
			return err
		}
	} else {
		sized, err := runner.Size(ctx, in)
		if err != nil {
			return err
		}
		res = &pipeline.Result{Sizing: sized}
	}

	if opts.json {
		if err := wio.WriteResult(stdout, res.Sizing); err != nil {
			return err
		}
	} else {
		renderInputs(stdout, in)
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, renderSummary(summary.Build(res.Sizing)))
		if res.Sizing.SectionCount > 1 {
			printWarning(stderr, "Bed split into %d parallel sections of %.2f m width",
				res.Sizing.SectionCount, res.Sizing.SectionWidth)
		}
	}

	if write {
		prog := newProgress(logger)
		written, err := writeArtifacts(res.Artifacts, formats, outputPaths(opts.output, opts.file, formats))
		if err != nil {
			return err
		}
		for _, p := range written {
			printFile(stderr, p)
		}
		prog.done(fmt.Sprintf("Wrote %d artifact(s)", len(written)))
	}

	if opts.save != "" {
		if err := wio.ExportDesign(opts.save, wio.DesignFromInputs("", in)); err != nil {
			return err
		}
		printSuccess(stderr, "Saved design brief to %s", opts.save)
	}
	return nil
}

func needsConverter(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
