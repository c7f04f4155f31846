package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/pipeline"
)

// defaultBase is the output base name when neither -o nor a design file names one.
const defaultBase = "wetland"

// knownExts are stripped from -o when several formats share one base path.
var knownExts = map[string]bool{
	pipeline.FormatSVG:  true,
	pipeline.FormatPNG:  true,
	pipeline.FormatPDF:  true,
	pipeline.FormatJSON: true,
	pipeline.FormatHTML: true,
	pipeline.FormatDOT:  true,
}

// basePath derives the base output path from the output flag and the design
// file. If output is empty, the design file's name without extension is used.
// A known format extension on output is stripped.
func basePath(output, design string) string {
	if output == "" {
		if design == "" {
			return defaultBase
		}
		return strings.TrimSuffix(design, filepath.Ext(design))
	}
	ext := filepath.Ext(output)
	if knownExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// resolveFormats returns the formats to write. Without -f, a known extension
// on -o selects the format. A single -f format that disagrees with a known -o
// extension is rejected.
func resolveFormats(flag, output string) ([]string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(output), "."))
	if !knownExts[ext] {
		return parseFormats(flag), nil
	}
	if strings.TrimSpace(flag) == "" {
		return []string{ext}, nil
	}
	formats := parseFormats(flag)
	if len(formats) == 1 && formats[0] != ext {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"output %s has a .%s extension but format %s was requested", output, ext, formats[0])
	}
	return formats, nil
}

// outputPaths maps each format to the file it is written to. A single format
// with an explicit -o is written exactly there; otherwise files are named
// base.format.
func outputPaths(output, design string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, design)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes each artifact to its path, in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, paths map[string]string) ([]string, error) {
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		path := paths[f]
		if err := errors.ValidateOutputPath(path); err != nil {
			return written, err
		}
		data, ok := artifacts[f]
		if !ok {
			return written, errors.New(errors.ErrCodeInternal, "no %s artifact was rendered", f)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
