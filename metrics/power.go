package metrics

import "math"

const (
	// normalizedPowerWindow is the rolling-mean width for Normalized Power.
	// Fewer samples than this make NP (and everything derived from it)
	// unavailable rather than zero.
	normalizedPowerWindow = 30

	secondsPerHour = 3600.0
)

// PowerAnalysis holds power-channel metrics. NormalizedPower,
// IntensityFactor and TrainingStressScore are nil when the data is
// insufficient for the calculation (an explicit "unavailable", distinct
// from zero).
type PowerAnalysis struct {
	AvgPower            float64      `json:"avg_power"`
	MaxPower            float64      `json:"max_power"`
	MinPower            float64      `json:"min_power"`
	PowerStd            float64      `json:"power_std"`
	NormalizedPower     *float64     `json:"normalized_power"`
	IntensityFactor     *float64     `json:"intensity_factor"`
	TrainingStressScore *float64     `json:"training_stress_score"`
	VariabilityIndex    float64      `json:"variability_index"`
	Zones               []ZonePercent `json:"power_zones"`
	FTPWatts            float64      `json:"ftp_watts"`
}

// analyzePower computes the power metric group over the non-absent power
// samples, in chronological order. Returns nil when the channel is empty.
// Session-provided avg/max are preferred over computed sample statistics.
func analyzePower(power []float64, session SessionSummary, ftp float64) *PowerAnalysis {
	if len(power) == 0 {
		return nil
	}

	pa := &PowerAnalysis{
		AvgPower: orDefault(session.AvgPower, mean(power)),
		MaxPower: orDefault(session.MaxPower, maxOf(power)),
		MinPower: minOf(power),
		PowerStd: stdDev(power),
		FTPWatts: ftp,
	}

	if np, ok := NormalizedPower(power); ok {
		pa.NormalizedPower = &np

		if intf, ok := IntensityFactor(np, ftp); ok {
			pa.IntensityFactor = &intf

			// One sample is assumed to stand for one second of riding.
			durationHours := float64(len(power)) / secondsPerHour
			if tss, ok := TrainingStressScore(intf, durationHours); ok {
				pa.TrainingStressScore = &tss
			}
		}

		if pa.AvgPower > 0 {
			pa.VariabilityIndex = np / pa.AvgPower
		}
	}

	pa.Zones = TimeInZones(power, ftp, PowerZoneTable)
	return pa
}

// NormalizedPower implements the published NP algorithm: a 30-sample
// centered rolling mean (positions without a full window contribute
// nothing), each rolling mean raised to the 4th power, the arithmetic mean
// of those, then the 4th root. The second return is false when fewer than
// 30 samples are available.
func NormalizedPower(power []float64) (float64, bool) {
	if len(power) < normalizedPowerWindow {
		return 0, false
	}

	// Centered vs trailing labeling only changes which index a rolling
	// mean is attached to, not the set of full-window means, so a sliding
	// sum over trailing windows produces the identical aggregate.
	sum := 0.0
	for i := 0; i < normalizedPowerWindow; i++ {
		sum += power[i]
	}

	fourthPowerTotal := 0.0
	count := 0
	for i := normalizedPowerWindow - 1; i < len(power); i++ {
		if i >= normalizedPowerWindow {
			sum += power[i] - power[i-normalizedPowerWindow]
		}
		rolling := sum / normalizedPowerWindow
		fourthPowerTotal += rolling * rolling * rolling * rolling
		count++
	}

	return math.Pow(fourthPowerTotal/float64(count), 0.25), true
}

// IntensityFactor is Normalized Power as a fraction of FTP. Unavailable
// when FTP is not positive.
func IntensityFactor(normalizedPower, ftp float64) (float64, bool) {
	if ftp <= 0 {
		return 0, false
	}
	return normalizedPower / ftp, true
}

// TrainingStressScore combines duration and squared Intensity Factor.
// Unavailable when the duration is not positive.
func TrainingStressScore(intensityFactor, durationHours float64) (float64, bool) {
	if durationHours <= 0 {
		return 0, false
	}
	return durationHours * intensityFactor * intensityFactor * 100, true
}
