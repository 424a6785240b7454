package prompt

import "fitcoach/metrics"

// ActivitySummary assembles the session-level view embedded in prompts:
// device-reported scalars plus a few sample-derived statistics. Absent
// values are omitted rather than rendered as placeholders.
func ActivitySummary(activity *metrics.Activity) map[string]any {
	s := activity.Session
	out := map[string]any{
		"sport":     s.Sport.String(),
		"sub_sport": s.SubSport,
	}
	if !s.StartTime.IsZero() {
		out["start_time"] = s.StartTime
	}

	putFloat(out, "total_elapsed_time", s.TotalElapsedTime)
	putFloat(out, "total_timer_time", s.TotalTimerTime)
	putFloat(out, "total_distance", s.TotalDistance)
	putFloat(out, "avg_speed", s.AvgSpeed)
	putFloat(out, "max_speed", s.MaxSpeed)
	putFloat(out, "avg_heart_rate", s.AvgHeartRate)
	putFloat(out, "max_heart_rate", s.MaxHeartRate)
	putFloat(out, "avg_power", s.AvgPower)
	putFloat(out, "max_power", s.MaxPower)
	putFloat(out, "total_calories", s.TotalCalories)
	putFloat(out, "avg_cadence", s.AvgCadence)
	putFloat(out, "max_cadence", s.MaxCadence)
	putFloat(out, "total_ascent", s.TotalAscent)
	putFloat(out, "total_descent", s.TotalDescent)

	if n := len(activity.Samples); n > 0 {
		out["num_records"] = n
	}
	if np, ok := metrics.NormalizedPower(activity.Samples.Channel(metrics.ChannelPower)); ok {
		out["normalized_power"] = np
	}

	return out
}

// KeyMetrics extracts the compact per-activity view used when comparing
// several activities. Only present values are included.
func KeyMetrics(activity *metrics.Activity, report *metrics.Report) map[string]any {
	s := activity.Session
	out := map[string]any{
		"sport": s.Sport.String(),
	}
	putFloat(out, "duration", s.TotalTimerTime)
	putFloat(out, "distance", s.TotalDistance)
	putFloat(out, "avg_heart_rate", s.AvgHeartRate)
	putFloat(out, "max_heart_rate", s.MaxHeartRate)
	putFloat(out, "avg_power", s.AvgPower)
	putFloat(out, "calories", s.TotalCalories)

	if report != nil {
		if zones := report.Flatten()["training_zones"]; len(zones) > 0 {
			out["training_zones"] = zones
		}
	}
	return out
}

// ActivitySections renders a list of per-activity key-metric mappings for
// the comparative prompt.
func ActivitySections(activities []map[string]any) string {
	return FormatSection("Activities Comparison", map[string]any{
		"activities": activities,
	})
}

func putFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}
