package metrics

import "math"

// Default thresholds used when no athlete profile is supplied. Both are
// always passed down explicitly; nothing in the engine reads them as
// ambient state.
const (
	DefaultMaxHeartRate = 190.0 // bpm
	DefaultFTP          = 250.0 // watts
)

// ZoneBand is one training zone expressed as fractions of a threshold.
// Bounds are inclusive on BOTH ends: a value sitting exactly on a shared
// boundary counts toward both adjacent zones. That makes zone percentages
// sum to slightly over 100% when boundary values occur; callers that need
// this behavior depend on it, so do not "fix" it to half-open intervals.
type ZoneBand struct {
	Label     string
	LowerFrac float64
	UpperFrac float64 // math.Inf(1) for an unbounded top zone
}

// HeartRateZoneTable is the fixed five-zone percentage-of-max-HR banding.
var HeartRateZoneTable = []ZoneBand{
	{Label: "Zone 1 (50-60%)", LowerFrac: 0.5, UpperFrac: 0.6},
	{Label: "Zone 2 (60-70%)", LowerFrac: 0.6, UpperFrac: 0.7},
	{Label: "Zone 3 (70-80%)", LowerFrac: 0.7, UpperFrac: 0.8},
	{Label: "Zone 4 (80-90%)", LowerFrac: 0.8, UpperFrac: 0.9},
	{Label: "Zone 5 (90-100%)", LowerFrac: 0.9, UpperFrac: 1.0},
}

// PowerZoneTable is the fixed six-zone percentage-of-FTP banding.
var PowerZoneTable = []ZoneBand{
	{Label: "Zone 1 (0-55%)", LowerFrac: 0, UpperFrac: 0.55},
	{Label: "Zone 2 (55-75%)", LowerFrac: 0.55, UpperFrac: 0.75},
	{Label: "Zone 3 (75-90%)", LowerFrac: 0.75, UpperFrac: 0.90},
	{Label: "Zone 4 (90-105%)", LowerFrac: 0.90, UpperFrac: 1.05},
	{Label: "Zone 5 (105-120%)", LowerFrac: 1.05, UpperFrac: 1.20},
	{Label: "Zone 6 (120%+)", LowerFrac: 1.20, UpperFrac: math.Inf(1)},
}

// ZonePercent is the share of samples that fell inside one zone.
type ZonePercent struct {
	Label   string  `json:"zone"`
	Percent float64 `json:"percent"`
}

// TimeInZones buckets samples into percentage-of-threshold zones and returns
// the percentage of samples per zone, in table order. With no samples every
// zone reports 0 rather than dividing by zero. The returned order is for
// display only; callers may treat the result as a label->percent mapping.
func TimeInZones(samples []float64, threshold float64, table []ZoneBand) []ZonePercent {
	out := make([]ZonePercent, len(table))
	total := len(samples)
	for i, band := range table {
		lower := band.LowerFrac * threshold
		upper := band.UpperFrac * threshold
		if math.IsInf(band.UpperFrac, 1) {
			upper = math.Inf(1)
		}
		count := 0
		for _, v := range samples {
			if v >= lower && v <= upper {
				count++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		out[i] = ZonePercent{Label: band.Label, Percent: pct}
	}
	return out
}

// zonePercentFor looks a zone up by label; missing labels report 0.
func zonePercentFor(zones []ZonePercent, label string) float64 {
	for _, z := range zones {
		if z.Label == label {
			return z.Percent
		}
	}
	return 0
}
