// Package export writes an analyzed activity to disk as a reviewable
// bundle: the flattened report, a session summary, the generated prompt and
// the canonical per-sample table.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fitcoach/metrics"
	"fitcoach/prompt"
)

// Options controls the bundle layout.
type Options struct {
	OutDir    string
	Format    string // "parquet" (default) or "csv" for the sample table
	Overwrite bool   // allow writing into a non-empty directory
}

// Result lists the artifact paths written by Export.
type Result struct {
	OutputDir   string
	ReportPath  string
	SummaryPath string
	PromptPath  string
	SamplesPath string
	SampleCount int
}

// Export writes the full bundle. promptText may be empty, in which case no
// prompt.txt is written.
func Export(activity *metrics.Activity, report *metrics.Report, promptText string, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}

	if err := ensureOutputDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	res := &Result{OutputDir: opts.OutDir}

	res.ReportPath = filepath.Join(opts.OutDir, "report.json")
	if err := writeJSON(res.ReportPath, report.Flatten()); err != nil {
		return nil, fmt.Errorf("write report.json: %w", err)
	}

	res.SummaryPath = filepath.Join(opts.OutDir, "summary.json")
	if err := writeJSON(res.SummaryPath, prompt.ActivitySummary(activity)); err != nil {
		return nil, fmt.Errorf("write summary.json: %w", err)
	}

	if promptText != "" {
		res.PromptPath = filepath.Join(opts.OutDir, "prompt.txt")
		if err := os.WriteFile(res.PromptPath, []byte(promptText), 0o644); err != nil {
			return nil, fmt.Errorf("write prompt.txt: %w", err)
		}
	}

	rows := sampleRows(activity.Samples)
	res.SampleCount = len(rows)
	res.SamplesPath = filepath.Join(opts.OutDir, "canonical_samples."+format)
	switch format {
	case "csv":
		if err := writeSamplesCSV(res.SamplesPath, rows); err != nil {
			return nil, fmt.Errorf("write canonical csv: %w", err)
		}
	case "parquet":
		if err := writeSamplesParquet(res.SamplesPath, rows); err != nil {
			return nil, fmt.Errorf("write canonical parquet: %w", err)
		}
	}

	return res, nil
}

func ensureOutputDir(path string, overwrite bool) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 && !overwrite {
		return fmt.Errorf("output directory is not empty: %s (set overwrite to allow)", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
