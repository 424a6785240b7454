package metrics

// hrDriftMinSamples is the floor below which a regression slope is noise.
const hrDriftMinSamples = 10

// HeartRateAnalysis holds heart-rate channel metrics. Drift is nil when
// fewer than 10 samples exist.
type HeartRateAnalysis struct {
	AvgHR         float64       `json:"avg_hr"`
	MaxHR         float64       `json:"max_hr"`
	MinHR         float64       `json:"min_hr"`
	HRRange       float64       `json:"hr_range"`
	HRStd         float64       `json:"hr_std"`
	HRVariability float64       `json:"hr_variability"`
	Drift         *float64      `json:"hr_drift"` // bpm per sample
	Zones         []ZonePercent `json:"hr_zones"`
	MaxHREstimate float64       `json:"max_hr_estimate"`
}

// analyzeHeartRate computes the heart-rate metric group over the non-absent
// HR samples. Returns nil when the channel is empty. Session-provided
// avg/max are preferred; min and std always come from the samples.
func analyzeHeartRate(hr []float64, session SessionSummary, maxHR float64) *HeartRateAnalysis {
	if len(hr) == 0 {
		return nil
	}

	ha := &HeartRateAnalysis{
		AvgHR:         orDefault(session.AvgHeartRate, mean(hr)),
		MaxHR:         orDefault(session.MaxHeartRate, maxOf(hr)),
		MinHR:         minOf(hr),
		HRStd:         stdDev(hr),
		MaxHREstimate: maxHR,
	}
	ha.HRRange = ha.MaxHR - ha.MinHR
	if ha.AvgHR > 0 {
		ha.HRVariability = ha.HRStd / ha.AvgHR * 100
	}

	if drift, ok := HeartRateDrift(hr); ok {
		ha.Drift = &drift
	}

	ha.Zones = TimeInZones(hr, maxHR, HeartRateZoneTable)
	return ha
}

// HeartRateDrift fits heart rate against sample index by ordinary least
// squares; the slope (bpm per sample) indicates cardiovascular drift over
// the activity. Unavailable with fewer than 10 samples.
func HeartRateDrift(hr []float64) (float64, bool) {
	if len(hr) < hrDriftMinSamples {
		return 0, false
	}
	return olsSlope(hr), true
}
