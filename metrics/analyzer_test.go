package metrics

import (
	"math"
	"testing"
)

// steadyRide builds a low-variance cycling activity long enough for every
// derived metric to be computable.
func steadyRide() Activity {
	samples := make(SampleSeries, 360)
	for i := range samples {
		power := 220.0
		if i%2 == 1 {
			power = 222.0
		}
		hr := 148.0 + float64(i%3)
		speed := 12.5
		samples[i] = Sample{
			HeartRate: Float(hr),
			Power:     Float(power),
			Speed:     Float(speed),
			Altitude:  Float(100 + float64(i%5)),
		}
	}
	return Activity{
		Session: SessionSummary{
			Sport:            SportCycling,
			TotalElapsedTime: Float(3660),
			TotalTimerTime:   Float(3600),
			TotalDistance:    Float(45000),
			TotalCalories:    Float(850),
		},
		Samples: samples,
	}
}

func TestAnalyzeSteadyRide(t *testing.T) {
	r := Analyze(steadyRide(), nil)

	if math.Abs(r.Basic.ActivityFactor-98.36) > 0.01 {
		t.Errorf("activity factor = %v, want ~98.36", r.Basic.ActivityFactor)
	}

	if r.Power == nil {
		t.Fatal("expected a power group")
	}
	if r.Power.NormalizedPower == nil {
		t.Fatal("expected normalized power for a 360-sample ride")
	}
	if math.Abs(r.Power.VariabilityIndex-1.0) > 0.01 {
		t.Errorf("variability index = %v, want ~1.0 for a steady ride", r.Power.VariabilityIndex)
	}
	if r.Power.IntensityFactor == nil || r.Power.TrainingStressScore == nil {
		t.Fatal("expected IF and TSS at the default FTP")
	}
	// 360 samples is 0.1 hours.
	ifVal := *r.Power.IntensityFactor
	wantTSS := 0.1 * ifVal * ifVal * 100
	if math.Abs(*r.Power.TrainingStressScore-wantTSS) > 1e-9 {
		t.Errorf("TSS = %v, want %v", *r.Power.TrainingStressScore, wantTSS)
	}

	if r.HeartRate == nil {
		t.Fatal("expected a heart rate group")
	}
	if r.HeartRate.Drift == nil {
		t.Error("expected drift for a 360-sample ride")
	}
	if r.HeartRate.MaxHREstimate != DefaultMaxHeartRate {
		t.Errorf("max hr estimate = %v, want default %v", r.HeartRate.MaxHREstimate, DefaultMaxHeartRate)
	}

	if r.PaceSpeed == nil || r.PaceSpeed.AvgSpeedKMH == nil {
		t.Fatal("expected speed stats for cycling")
	}
	if math.Abs(*r.PaceSpeed.AvgSpeedKMH-45.0) > 1e-9 {
		t.Errorf("avg speed = %v, want 45", *r.PaceSpeed.AvgSpeedKMH)
	}

	if r.TrainingZones == nil || len(r.TrainingZones.HRZones) == 0 || len(r.TrainingZones.PowerZones) == 0 {
		t.Fatal("expected both zone distributions")
	}
	if r.Efficiency == nil || r.Efficiency.HREfficiency == nil || r.Efficiency.PowerEfficiency == nil {
		t.Fatal("expected both efficiency ratios")
	}
	if r.Environmental == nil || r.Environmental.ElevationProfile == nil {
		t.Fatal("expected an elevation profile")
	}
	if r.Insights.WorkoutQuality != QualityExcellent {
		t.Errorf("workout quality = %q, want %q", r.Insights.WorkoutQuality, QualityExcellent)
	}
	if r.Athlete != nil {
		t.Error("athlete group should be absent without a profile")
	}
}

func TestAnalyzeAthleteProfileOverrides(t *testing.T) {
	profile := &AthleteProfile{AgeYears: 30, WeightKG: 70, FTPWatts: 300}
	r := Analyze(steadyRide(), profile)

	if r.HeartRate.MaxHREstimate != 190 {
		t.Errorf("max hr estimate = %v, want 220-30", r.HeartRate.MaxHREstimate)
	}
	if r.Power.FTPWatts != 300 {
		t.Errorf("ftp = %v, want profile override 300", r.Power.FTPWatts)
	}
	if r.Power.IntensityFactor == nil {
		t.Fatal("expected IF at the profile FTP")
	}
	if math.Abs(*r.Power.IntensityFactor-*r.Power.NormalizedPower/300) > 1e-12 {
		t.Errorf("IF = %v inconsistent with NP %v at FTP 300", *r.Power.IntensityFactor, *r.Power.NormalizedPower)
	}

	if r.Athlete == nil {
		t.Fatal("expected an athlete group")
	}
	if r.Athlete.Age == nil || *r.Athlete.Age != 30 {
		t.Error("athlete age missing")
	}
	if r.Athlete.EstimatedMaxHR == nil || *r.Athlete.EstimatedMaxHR != 190 {
		t.Error("estimated max hr missing")
	}
	if r.Athlete.PowerToWeight == nil {
		t.Fatal("expected power-to-weight with weight and power present")
	}
	if math.Abs(*r.Athlete.PowerToWeight-r.Power.AvgPower/70) > 1e-12 {
		t.Errorf("power-to-weight = %v, want avg power / 70", *r.Athlete.PowerToWeight)
	}
}

func TestAnalyzeEmptyActivity(t *testing.T) {
	r := Analyze(Activity{}, nil)

	if r.HeartRate != nil || r.Power != nil || r.PaceSpeed != nil {
		t.Error("channel groups should be nil without samples")
	}
	if r.TrainingZones == nil {
		t.Fatal("training zones group must always exist")
	}
	if r.Basic.TotalDuration != "0:00:00" {
		t.Errorf("total duration = %q", r.Basic.TotalDuration)
	}
	if r.Insights.WorkoutQuality != QualityInsufficientData {
		t.Errorf("workout quality = %q, want %q", r.Insights.WorkoutQuality, QualityInsufficientData)
	}
}

func TestFlattenShape(t *testing.T) {
	flat := Analyze(Activity{}, nil).Flatten()

	for _, group := range GroupOrder {
		if _, ok := flat[group]; !ok {
			t.Errorf("flattened report missing group %q", group)
		}
	}
	if len(flat["heart_rate_analysis"]) != 0 {
		t.Error("uncomputed group should flatten to an empty mapping")
	}
	if len(flat["basic_metrics"]) == 0 {
		t.Error("basic metrics are always populated")
	}
	if flat["performance_insights"]["workout_quality"] != QualityInsufficientData {
		t.Errorf("workout_quality = %v", flat["performance_insights"]["workout_quality"])
	}
}

func TestFlattenUnavailableSentinel(t *testing.T) {
	// Ten power samples: enough for a group, too few for normalized power.
	samples := make(SampleSeries, 10)
	for i := range samples {
		samples[i] = Sample{Power: Float(200)}
	}
	flat := Analyze(Activity{Samples: samples}, nil).Flatten()

	pg := flat["power_analysis"]
	if pg["normalized_power"] != Unavailable {
		t.Errorf("normalized_power = %v, want %q", pg["normalized_power"], Unavailable)
	}
	if pg["intensity_factor"] != Unavailable || pg["training_stress_score"] != Unavailable {
		t.Error("IF and TSS should carry the unavailable sentinel")
	}
	if pg["avg_power"] != 200.0 {
		t.Errorf("avg_power = %v, want 200", pg["avg_power"])
	}
}
