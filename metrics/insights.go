package metrics

// Insight threshold constants. Each rule is independent of the others and
// of evaluation order.
const (
	pacingVeryConsistentMax = 0.5
	pacingGoodMax           = 1.0

	aerobicBaseZone2Min    = 70.0 // percent of samples in zone 2
	highIntensityZone45Min = 20.0 // percent of samples in zones 4+5

	fatigueDriftThreshold = 0.1 // bpm per sample
	fatigueVIThreshold    = 1.1

	steadyStateHRVariabilityMax = 10.0
	completionRatioMin          = 0.8

	qualityExcellentMin = 0.8
	qualityGoodMin      = 0.6
)

// Canonical insight strings. The reporting layer treats these as opaque
// categorical values.
const (
	PacingVeryConsistent = "Very consistent pacing - excellent for endurance"
	PacingGood           = "Good pacing consistency"
	PacingVariable       = "Variable pacing - may indicate fatigue or tactical changes"

	EffortAerobicBase   = "Primarily aerobic base training"
	EffortHighIntensity = "High-intensity training session"
	EffortMixed         = "Mixed intensity training"

	FatigueHRDrift          = "Significant heart rate drift indicating cardiovascular fatigue"
	FatiguePowerVariability = "High power variability suggesting fatigue or pacing issues"
	FatigueNone             = "No significant fatigue indicators detected"

	QualityExcellent        = "Excellent workout quality"
	QualityGood             = "Good workout quality"
	QualityNeedsImprovement = "Room for improvement in workout quality"
	QualityInsufficientData = "Workout quality assessment requires more data"
)

// Insights holds the qualitative assessments derived from the numeric
// groups. PacingStrategy and EffortDistribution are empty strings when the
// underlying data group was not computed; FatigueIndicators is never empty
// (an explicit no-indicators marker is emitted so callers cannot mistake
// "none found" for "not evaluated").
type Insights struct {
	PacingStrategy     string   `json:"pacing_strategy,omitempty"`
	EffortDistribution string   `json:"effort_distribution,omitempty"`
	FatigueIndicators  []string `json:"fatigue_indicators"`
	WorkoutQuality     string   `json:"workout_quality"`
}

func generateInsights(r *Report, session SessionSummary) Insights {
	ins := Insights{}

	if variability, ok := r.PaceSpeed.Variability(); ok {
		ins.PacingStrategy = classifyPacing(variability)
	}

	if r.HeartRate != nil && len(r.HeartRate.Zones) > 0 {
		ins.EffortDistribution = classifyEffort(r.HeartRate.Zones)
	}

	ins.FatigueIndicators = fatigueIndicators(r.HeartRate, r.Power)
	ins.WorkoutQuality = assessWorkoutQuality(r.HeartRate, session)

	return ins
}

func classifyPacing(variability float64) string {
	switch {
	case variability < pacingVeryConsistentMax:
		return PacingVeryConsistent
	case variability < pacingGoodMax:
		return PacingGood
	default:
		return PacingVariable
	}
}

func classifyEffort(zones []ZonePercent) string {
	zone2 := zonePercentFor(zones, "Zone 2 (60-70%)")
	highIntensity := zonePercentFor(zones, "Zone 4 (80-90%)") +
		zonePercentFor(zones, "Zone 5 (90-100%)")

	switch {
	case zone2 > aerobicBaseZone2Min:
		return EffortAerobicBase
	case highIntensity > highIntensityZone45Min:
		return EffortHighIntensity
	default:
		return EffortMixed
	}
}

func fatigueIndicators(hr *HeartRateAnalysis, power *PowerAnalysis) []string {
	var indicators []string

	if hr != nil && hr.Drift != nil && *hr.Drift > fatigueDriftThreshold {
		indicators = append(indicators, FatigueHRDrift)
	}
	if power != nil && power.VariabilityIndex > fatigueVIThreshold {
		indicators = append(indicators, FatiguePowerVariability)
	}

	if len(indicators) == 0 {
		indicators = append(indicators, FatigueNone)
	}
	return indicators
}

// assessWorkoutQuality scores the session on the factors that could be
// evaluated: steady heart rate (variability under 10%) and completion
// (moving time over 80% of elapsed). The score is normalized over factors
// attempted; with nothing evaluable an explicit insufficient-data marker is
// returned instead of a misleading zero score.
func assessWorkoutQuality(hr *HeartRateAnalysis, session SessionSummary) string {
	score := 0
	factors := 0

	if hr != nil {
		factors++
		if hr.HRVariability < steadyStateHRVariabilityMax {
			score++
		}
	}

	if session.TotalElapsedTime != nil && *session.TotalElapsedTime > 0 {
		factors++
		moving := 0.0
		if session.TotalTimerTime != nil {
			moving = *session.TotalTimerTime
		}
		if moving / *session.TotalElapsedTime > completionRatioMin {
			score++
		}
	}

	if factors == 0 {
		return QualityInsufficientData
	}

	ratio := float64(score) / float64(factors)
	switch {
	case ratio > qualityExcellentMin:
		return QualityExcellent
	case ratio > qualityGoodMin:
		return QualityGood
	default:
		return QualityNeedsImprovement
	}
}
