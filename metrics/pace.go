package metrics

// PaceSpeedAnalysis holds sport-dependent movement statistics: pace (min/km)
// for running and walking, speed (km/h) for everything else. Only one of the
// two field sets is populated.
type PaceSpeedAnalysis struct {
	AvgPaceMinPerKM  *float64 `json:"avg_pace_min_per_km,omitempty"`
	BestPaceMinPerKM *float64 `json:"best_pace_min_per_km,omitempty"`
	PaceVariability  *float64 `json:"pace_variability,omitempty"`

	AvgSpeedKMH      *float64 `json:"avg_speed_kmh,omitempty"`
	MaxSpeedKMH      *float64 `json:"max_speed_kmh,omitempty"`
	SpeedVariability *float64 `json:"speed_variability,omitempty"`
}

// Variability returns whichever std-dev the sport produced.
func (p *PaceSpeedAnalysis) Variability() (float64, bool) {
	if p == nil {
		return 0, false
	}
	if p.PaceVariability != nil {
		return *p.PaceVariability, true
	}
	if p.SpeedVariability != nil {
		return *p.SpeedVariability, true
	}
	return 0, false
}

// analyzePaceSpeed converts the speed channel (m/s) into pace or speed
// statistics depending on sport. An empty speed channel yields nil, not a
// zeroed group.
func analyzePaceSpeed(speed []float64, sport Sport) *PaceSpeedAnalysis {
	if len(speed) == 0 {
		return nil
	}

	pa := &PaceSpeedAnalysis{}
	if sport.usesPace() {
		// pace = 1000 / (m/s * 60) minutes per kilometer. Stationary
		// samples have no finite pace and are skipped.
		paces := make([]float64, 0, len(speed))
		for _, s := range speed {
			if s > 0 {
				paces = append(paces, 1000/(s*60))
			}
		}
		if len(paces) == 0 {
			return nil
		}
		avg := mean(paces)
		best := minOf(paces) // lowest minutes-per-km is fastest
		std := stdDev(paces)
		pa.AvgPaceMinPerKM = &avg
		pa.BestPaceMinPerKM = &best
		pa.PaceVariability = &std
		return pa
	}

	kmh := make([]float64, len(speed))
	for i, s := range speed {
		kmh[i] = s * 3.6
	}
	avg := mean(kmh)
	max := maxOf(kmh)
	std := stdDev(kmh)
	pa.AvgSpeedKMH = &avg
	pa.MaxSpeedKMH = &max
	pa.SpeedVariability = &std
	return pa
}
