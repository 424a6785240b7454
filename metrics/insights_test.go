package metrics

import "testing"

func TestClassifyPacing(t *testing.T) {
	cases := []struct {
		variability float64
		want        string
	}{
		{0.3, PacingVeryConsistent},
		{0.7, PacingGood},
		{1.5, PacingVariable},
	}
	for _, c := range cases {
		if got := classifyPacing(c.variability); got != c.want {
			t.Errorf("classifyPacing(%v) = %q, want %q", c.variability, got, c.want)
		}
	}
}

func TestClassifyEffort(t *testing.T) {
	aerobic := []ZonePercent{
		{Label: "Zone 1 (50-60%)", Percent: 10},
		{Label: "Zone 2 (60-70%)", Percent: 80},
		{Label: "Zone 3 (70-80%)", Percent: 10},
		{Label: "Zone 4 (80-90%)", Percent: 0},
		{Label: "Zone 5 (90-100%)", Percent: 0},
	}
	if got := classifyEffort(aerobic); got != EffortAerobicBase {
		t.Errorf("aerobic distribution = %q, want %q", got, EffortAerobicBase)
	}

	intense := []ZonePercent{
		{Label: "Zone 1 (50-60%)", Percent: 20},
		{Label: "Zone 2 (60-70%)", Percent: 30},
		{Label: "Zone 3 (70-80%)", Percent: 25},
		{Label: "Zone 4 (80-90%)", Percent: 15},
		{Label: "Zone 5 (90-100%)", Percent: 10},
	}
	if got := classifyEffort(intense); got != EffortHighIntensity {
		t.Errorf("intense distribution = %q, want %q", got, EffortHighIntensity)
	}

	mixed := []ZonePercent{
		{Label: "Zone 1 (50-60%)", Percent: 30},
		{Label: "Zone 2 (60-70%)", Percent: 50},
		{Label: "Zone 3 (70-80%)", Percent: 10},
		{Label: "Zone 4 (80-90%)", Percent: 5},
		{Label: "Zone 5 (90-100%)", Percent: 5},
	}
	if got := classifyEffort(mixed); got != EffortMixed {
		t.Errorf("mixed distribution = %q, want %q", got, EffortMixed)
	}
}

func TestFatigueIndicators(t *testing.T) {
	drift := 0.25
	hr := &HeartRateAnalysis{Drift: &drift}
	power := &PowerAnalysis{VariabilityIndex: 1.3}

	got := fatigueIndicators(hr, power)
	if len(got) != 2 {
		t.Fatalf("indicators = %v, want both drift and variability", got)
	}
	if got[0] != FatigueHRDrift || got[1] != FatiguePowerVariability {
		t.Errorf("indicators = %v", got)
	}
}

func TestFatigueIndicatorsNeverEmpty(t *testing.T) {
	got := fatigueIndicators(nil, nil)
	if len(got) != 1 || got[0] != FatigueNone {
		t.Errorf("indicators = %v, want the explicit no-indicators marker", got)
	}

	smallDrift := 0.05
	got = fatigueIndicators(&HeartRateAnalysis{Drift: &smallDrift}, &PowerAnalysis{VariabilityIndex: 1.0})
	if len(got) != 1 || got[0] != FatigueNone {
		t.Errorf("indicators = %v, want the explicit no-indicators marker", got)
	}
}

func TestAssessWorkoutQuality(t *testing.T) {
	steady := &HeartRateAnalysis{HRVariability: 5}
	erratic := &HeartRateAnalysis{HRVariability: 25}
	completed := SessionSummary{
		TotalElapsedTime: Float(3600),
		TotalTimerTime:   Float(3500),
	}
	interrupted := SessionSummary{
		TotalElapsedTime: Float(3600),
		TotalTimerTime:   Float(1800),
	}

	if got := assessWorkoutQuality(steady, completed); got != QualityExcellent {
		t.Errorf("steady+completed = %q, want %q", got, QualityExcellent)
	}
	// One of two factors passing is exactly 0.5, below the good cutoff.
	if got := assessWorkoutQuality(steady, interrupted); got != QualityNeedsImprovement {
		t.Errorf("steady+interrupted = %q, want %q", got, QualityNeedsImprovement)
	}
	if got := assessWorkoutQuality(erratic, interrupted); got != QualityNeedsImprovement {
		t.Errorf("erratic+interrupted = %q, want %q", got, QualityNeedsImprovement)
	}
	// A single passing factor out of one attempted scores 1.0.
	if got := assessWorkoutQuality(steady, SessionSummary{}); got != QualityExcellent {
		t.Errorf("steady only = %q, want %q", got, QualityExcellent)
	}
	if got := assessWorkoutQuality(nil, SessionSummary{}); got != QualityInsufficientData {
		t.Errorf("no factors = %q, want %q", got, QualityInsufficientData)
	}
}

func TestGenerateInsightsUsesAvailableGroups(t *testing.T) {
	r := &Report{}
	ins := generateInsights(r, SessionSummary{})
	if ins.PacingStrategy != "" {
		t.Error("pacing strategy should be empty without a pace group")
	}
	if ins.EffortDistribution != "" {
		t.Error("effort distribution should be empty without heart rate zones")
	}
	if len(ins.FatigueIndicators) != 1 || ins.FatigueIndicators[0] != FatigueNone {
		t.Errorf("fatigue indicators = %v", ins.FatigueIndicators)
	}
	if ins.WorkoutQuality != QualityInsufficientData {
		t.Errorf("workout quality = %q, want %q", ins.WorkoutQuality, QualityInsufficientData)
	}
}
