package metrics

// EnvironmentalFactors summarizes the temperature and altitude channels.
// Either section is nil when its channel is empty.
type EnvironmentalFactors struct {
	AvgTemperature   *float64          `json:"avg_temperature,omitempty"`
	TempRange        *float64          `json:"temp_range,omitempty"`
	ElevationProfile *ElevationProfile `json:"elevation_profile,omitempty"`
}

// ElevationProfile describes the altitude channel's spread.
type ElevationProfile struct {
	MinElevation   float64 `json:"min_elevation"`
	MaxElevation   float64 `json:"max_elevation"`
	ElevationRange float64 `json:"elevation_range"`
	AvgElevation   float64 `json:"avg_elevation"`
}

func analyzeEnvironment(series SampleSeries) *EnvironmentalFactors {
	ef := &EnvironmentalFactors{}

	if temp := series.Channel(ChannelTemperature); len(temp) > 0 {
		avg := mean(temp)
		rng := maxOf(temp) - minOf(temp)
		ef.AvgTemperature = &avg
		ef.TempRange = &rng
	}

	if alt := series.Channel(ChannelAltitude); len(alt) > 0 {
		min := minOf(alt)
		max := maxOf(alt)
		ef.ElevationProfile = &ElevationProfile{
			MinElevation:   min,
			MaxElevation:   max,
			ElevationRange: max - min,
			AvgElevation:   mean(alt),
		}
	}

	return ef
}
