package fitcoach

import "fitcoach/metrics"

// Result pairs a decoded activity with its computed report.
type Result struct {
	Activity *metrics.Activity
	Report   *metrics.Report
}

// AnalyzeFile decodes a FIT activity file and runs the full metrics engine
// over it. profile may be nil.
func AnalyzeFile(path string, profile *metrics.AthleteProfile) (*Result, error) {
	activity, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Result{
		Activity: activity,
		Report:   metrics.Analyze(*activity, profile),
	}, nil
}

// AnalyzeBytes is AnalyzeFile over an in-memory FIT payload.
func AnalyzeBytes(data []byte, profile *metrics.AthleteProfile) (*Result, error) {
	activity, err := ReadBytes(data)
	if err != nil {
		return nil, err
	}
	return &Result{
		Activity: activity,
		Report:   metrics.Analyze(*activity, profile),
	}, nil
}
