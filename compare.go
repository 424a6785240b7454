package fitcoach

import (
	"fmt"

	"fitcoach/metrics"
	"fitcoach/prompt"
)

// Comparison holds the per-file results of a multi-activity analysis and the
// rendered text fed to the comparative prompt.
type Comparison struct {
	Results  []*Result
	Analyzed []string // paths analyzed successfully, in input order
	Skipped  map[string]error
	Sections string
}

// CompareFiles analyzes several FIT files for trend analysis. Files that
// fail to decode are skipped; an error is returned only when none succeed.
func CompareFiles(paths []string, profile *metrics.AthleteProfile) (*Comparison, error) {
	cmp := &Comparison{Skipped: make(map[string]error)}
	sections := make([]map[string]any, 0, len(paths))

	for _, path := range paths {
		res, err := AnalyzeFile(path, profile)
		if err != nil {
			cmp.Skipped[path] = err
			continue
		}
		cmp.Results = append(cmp.Results, res)
		cmp.Analyzed = append(cmp.Analyzed, path)
		sections = append(sections, map[string]any{
			"file_path":        path,
			"activity_summary": prompt.ActivitySummary(res.Activity),
			"key_metrics":      prompt.KeyMetrics(res.Activity, res.Report),
		})
	}

	if len(cmp.Results) == 0 {
		return nil, fmt.Errorf("no activities could be analyzed (%d failed)", len(cmp.Skipped))
	}

	cmp.Sections = prompt.ActivitySections(sections)
	return cmp, nil
}
