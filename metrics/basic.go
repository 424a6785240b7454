package metrics

import "fmt"

// BasicMetrics holds session-level duration, distance, elevation and calorie
// figures. Absent session fields degrade to zero values here; the group is
// always present in a report.
type BasicMetrics struct {
	TotalDuration      string  `json:"total_duration"`
	MovingDuration     string  `json:"moving_duration"`
	StoppedTimeSeconds float64 `json:"stopped_time"`
	ActivityFactor     float64 `json:"activity_factor"` // moving/elapsed, percent

	TotalDistanceKM    float64 `json:"total_distance_km"`
	TotalAscentM       float64 `json:"total_ascent_m"`
	TotalDescentM      float64 `json:"total_descent_m"`
	ElevationGainRatio float64 `json:"elevation_gain_ratio"` // meters climbed per km

	TotalCalories   float64 `json:"total_calories"`
	CaloriesPerHour float64 `json:"calories_per_hour"`
}

func analyzeBasic(session SessionSummary) BasicMetrics {
	var elapsed, moving float64
	if session.TotalElapsedTime != nil {
		elapsed = *session.TotalElapsedTime
	}
	if session.TotalTimerTime != nil {
		moving = *session.TotalTimerTime
	}

	bm := BasicMetrics{
		TotalDuration:  FormatDuration(elapsed),
		MovingDuration: FormatDuration(moving),
	}
	if elapsed > 0 && moving > 0 {
		bm.StoppedTimeSeconds = elapsed - moving
	}
	if elapsed > 0 {
		bm.ActivityFactor = moving / elapsed * 100
	}

	if session.TotalDistance != nil {
		bm.TotalDistanceKM = *session.TotalDistance / 1000
	}
	if session.TotalAscent != nil {
		bm.TotalAscentM = *session.TotalAscent
	}
	if session.TotalDescent != nil {
		bm.TotalDescentM = *session.TotalDescent
	}
	if bm.TotalDistanceKM > 0 {
		bm.ElevationGainRatio = bm.TotalAscentM / bm.TotalDistanceKM
	}

	if session.TotalCalories != nil {
		bm.TotalCalories = *session.TotalCalories
	}
	if moving > 0 {
		bm.CaloriesPerHour = bm.TotalCalories / (moving / secondsPerHour)
	}

	return bm
}

// FormatDuration renders seconds as h:mm:ss with unpadded hours, e.g.
// 3665 -> "1:01:05". Non-positive input is "0:00:00".
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0:00:00"
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
