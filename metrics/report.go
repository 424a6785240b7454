package metrics

// Unavailable is the sentinel value the flattened report uses for metrics
// whose preconditions were not met (too few samples, zero divisor). It is
// deliberately distinct from an absent key, which means "never applicable
// to this activity".
const Unavailable = "unavailable"

// Report is the engine's sole output: one struct per metric group. Group
// pointers are nil when the group was not computed; optional metrics inside
// a group are nil pointers. A Report is never mutated after Analyze returns.
type Report struct {
	Basic         BasicMetrics          `json:"basic_metrics"`
	HeartRate     *HeartRateAnalysis    `json:"heart_rate_analysis,omitempty"`
	Power         *PowerAnalysis        `json:"power_analysis,omitempty"`
	PaceSpeed     *PaceSpeedAnalysis    `json:"pace_speed_analysis,omitempty"`
	TrainingZones *TrainingZones        `json:"training_zones,omitempty"`
	Efficiency    *EfficiencyAnalysis   `json:"efficiency_metrics,omitempty"`
	Environmental *EnvironmentalFactors `json:"environmental_factors,omitempty"`
	Insights      Insights              `json:"performance_insights"`
	Athlete       *AthleteSpecific      `json:"athlete_specific,omitempty"`
}

// GroupOrder is the canonical display order for report groups.
var GroupOrder = []string{
	"basic_metrics",
	"heart_rate_analysis",
	"power_analysis",
	"pace_speed_analysis",
	"training_zones",
	"performance_insights",
	"efficiency_metrics",
	"environmental_factors",
	"athlete_specific",
}

// Flatten renders the report as the generic group -> metric -> value
// mapping consumed by reporting layers. Every group key is present; groups
// that were not computed map to empty mappings, and unavailable metrics map
// to the Unavailable sentinel. Callers must not assume any metric key is
// always present.
func (r *Report) Flatten() map[string]map[string]any {
	out := map[string]map[string]any{
		"basic_metrics": {
			"total_duration":       r.Basic.TotalDuration,
			"moving_duration":      r.Basic.MovingDuration,
			"stopped_time":         r.Basic.StoppedTimeSeconds,
			"activity_factor":      r.Basic.ActivityFactor,
			"total_distance_km":    r.Basic.TotalDistanceKM,
			"total_ascent_m":       r.Basic.TotalAscentM,
			"total_descent_m":      r.Basic.TotalDescentM,
			"elevation_gain_ratio": r.Basic.ElevationGainRatio,
			"total_calories":       r.Basic.TotalCalories,
			"calories_per_hour":    r.Basic.CaloriesPerHour,
		},
		"heart_rate_analysis":   {},
		"power_analysis":        {},
		"pace_speed_analysis":   {},
		"training_zones":        {},
		"efficiency_metrics":    {},
		"environmental_factors": {},
		"performance_insights":  {},
		"athlete_specific":      {},
	}

	if hr := r.HeartRate; hr != nil {
		g := out["heart_rate_analysis"]
		g["avg_hr"] = hr.AvgHR
		g["max_hr"] = hr.MaxHR
		g["min_hr"] = hr.MinHR
		g["hr_range"] = hr.HRRange
		g["hr_std"] = hr.HRStd
		g["hr_variability"] = hr.HRVariability
		g["hr_drift"] = optional(hr.Drift)
		g["hr_zones"] = zoneMap(hr.Zones)
	}

	if p := r.Power; p != nil {
		g := out["power_analysis"]
		g["avg_power"] = p.AvgPower
		g["max_power"] = p.MaxPower
		g["min_power"] = p.MinPower
		g["power_std"] = p.PowerStd
		g["normalized_power"] = optional(p.NormalizedPower)
		g["intensity_factor"] = optional(p.IntensityFactor)
		g["training_stress_score"] = optional(p.TrainingStressScore)
		g["variability_index"] = p.VariabilityIndex
		g["power_zones"] = zoneMap(p.Zones)
	}

	if ps := r.PaceSpeed; ps != nil {
		g := out["pace_speed_analysis"]
		putOptional(g, "avg_pace_min_per_km", ps.AvgPaceMinPerKM)
		putOptional(g, "best_pace_min_per_km", ps.BestPaceMinPerKM)
		putOptional(g, "pace_variability", ps.PaceVariability)
		putOptional(g, "avg_speed_kmh", ps.AvgSpeedKMH)
		putOptional(g, "max_speed_kmh", ps.MaxSpeedKMH)
		putOptional(g, "speed_variability", ps.SpeedVariability)
	}

	if tz := r.TrainingZones; tz != nil {
		g := out["training_zones"]
		if len(tz.HRZones) > 0 {
			g["hr_zones_time"] = zoneMap(tz.HRZones)
		}
		if len(tz.PowerZones) > 0 {
			g["power_zones_time"] = zoneMap(tz.PowerZones)
		}
	}

	if ef := r.Efficiency; ef != nil {
		g := out["efficiency_metrics"]
		putOptional(g, "hr_efficiency", ef.HREfficiency)
		putOptional(g, "power_efficiency", ef.PowerEfficiency)
	}

	if env := r.Environmental; env != nil {
		g := out["environmental_factors"]
		putOptional(g, "avg_temperature", env.AvgTemperature)
		putOptional(g, "temp_range", env.TempRange)
		if ep := env.ElevationProfile; ep != nil {
			g["elevation_profile"] = map[string]float64{
				"min_elevation":   ep.MinElevation,
				"max_elevation":   ep.MaxElevation,
				"elevation_range": ep.ElevationRange,
				"avg_elevation":   ep.AvgElevation,
			}
		}
	}

	ig := out["performance_insights"]
	if r.Insights.PacingStrategy != "" {
		ig["pacing_strategy"] = r.Insights.PacingStrategy
	}
	if r.Insights.EffortDistribution != "" {
		ig["effort_distribution"] = r.Insights.EffortDistribution
	}
	if len(r.Insights.FatigueIndicators) > 0 {
		ig["fatigue_indicators"] = append([]string(nil), r.Insights.FatigueIndicators...)
	}
	if r.Insights.WorkoutQuality != "" {
		ig["workout_quality"] = r.Insights.WorkoutQuality
	}

	if a := r.Athlete; a != nil {
		g := out["athlete_specific"]
		if a.Age != nil {
			g["age"] = *a.Age
		}
		putOptional(g, "estimated_max_hr", a.EstimatedMaxHR)
		putOptional(g, "weight", a.WeightKG)
		putOptional(g, "power_to_weight_ratio", a.PowerToWeight)
		putOptional(g, "ftp", a.FTPWatts)
	}

	return out
}

// optional maps nil to the Unavailable sentinel for metrics whose key is
// always emitted when the group exists.
func optional(v *float64) any {
	if v == nil {
		return Unavailable
	}
	return *v
}

// putOptional sets the key only when the value exists; absent keys mean the
// metric does not apply to this activity.
func putOptional(g map[string]any, key string, v *float64) {
	if v != nil {
		g[key] = *v
	}
}

func zoneMap(zones []ZonePercent) map[string]float64 {
	m := make(map[string]float64, len(zones))
	for _, z := range zones {
		m[z.Label] = z.Percent
	}
	return m
}
