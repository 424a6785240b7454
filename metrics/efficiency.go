package metrics

// EfficiencyAnalysis holds cross-channel economy ratios. Each ratio is nil
// when the two channels never overlap at a sample position.
type EfficiencyAnalysis struct {
	HREfficiency    *float64 `json:"hr_efficiency,omitempty"`    // mean speed/heart-rate
	PowerEfficiency *float64 `json:"power_efficiency,omitempty"` // mean speed/power
}

// analyzeEfficiency computes the mean per-position speed/channel ratio over
// the positions where both channels are present. The group itself is always
// produced; individual ratios are omitted when their intersection is empty.
func analyzeEfficiency(series SampleSeries) *EfficiencyAnalysis {
	ea := &EfficiencyAnalysis{}
	ea.HREfficiency = meanRatio(series, ChannelHeartRate)
	ea.PowerEfficiency = meanRatio(series, ChannelPower)
	return ea
}

func meanRatio(series SampleSeries, denominator Channel) *float64 {
	denomVals, speedVals := series.Paired(denominator, ChannelSpeed)
	ratios := make([]float64, 0, len(denomVals))
	for i := range denomVals {
		if denomVals[i] != 0 {
			ratios = append(ratios, speedVals[i]/denomVals[i])
		}
	}
	if len(ratios) == 0 {
		return nil
	}
	m := mean(ratios)
	return &m
}
