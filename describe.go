package fitcoach

import (
	"fmt"
	"strings"

	"fitcoach/metrics"
)

// Describe renders a compact human-readable header for an analyzed activity,
// one line per metric group that carried data.
func Describe(res *Result) string {
	if res == nil || res.Report == nil {
		return ""
	}
	session := res.Activity.Session
	r := res.Report

	var b strings.Builder

	fmt.Fprintf(&b, "Session: %s (%s)\n", session.Sport, session.SubSport)
	if !session.StartTime.IsZero() {
		fmt.Fprintf(&b, "Start: %s\n", session.StartTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "Duration %s moving / %s elapsed | Distance %.1f km | Elevation +%.0f/-%.0f m\n",
		r.Basic.MovingDuration,
		r.Basic.TotalDuration,
		r.Basic.TotalDistanceKM,
		r.Basic.TotalAscentM,
		r.Basic.TotalDescentM,
	)

	if p := r.Power; p != nil {
		fmt.Fprintf(&b, "Power %.0f avg / %s NP / %.0f max W | VI %.2f\n",
			p.AvgPower, optionalWatts(p.NormalizedPower), p.MaxPower, p.VariabilityIndex)
		if p.IntensityFactor != nil && p.TrainingStressScore != nil {
			fmt.Fprintf(&b, "Load IF %.2f | TSS %.0f | FTP %.0f W\n",
				*p.IntensityFactor, *p.TrainingStressScore, p.FTPWatts)
		}
	}

	if hr := r.HeartRate; hr != nil {
		fmt.Fprintf(&b, "HR %.0f avg / %.0f max bpm", hr.AvgHR, hr.MaxHR)
		if hr.Drift != nil {
			fmt.Fprintf(&b, " | drift %+.3f bpm/sample", *hr.Drift)
		}
		b.WriteString("\n")
	}

	if ps := r.PaceSpeed; ps != nil {
		if ps.AvgPaceMinPerKM != nil {
			fmt.Fprintf(&b, "Pace %s avg / %s best min/km\n",
				formatPace(*ps.AvgPaceMinPerKM), formatPace(*ps.BestPaceMinPerKM))
		} else if ps.AvgSpeedKMH != nil {
			fmt.Fprintf(&b, "Speed %.1f avg / %.1f max km/h\n", *ps.AvgSpeedKMH, *ps.MaxSpeedKMH)
		}
	}

	ins := r.Insights
	if ins.PacingStrategy != "" {
		fmt.Fprintf(&b, "Pacing: %s\n", ins.PacingStrategy)
	}
	if ins.EffortDistribution != "" {
		fmt.Fprintf(&b, "Effort: %s\n", ins.EffortDistribution)
	}
	fmt.Fprintf(&b, "Quality: %s\n", ins.WorkoutQuality)

	return b.String()
}

func optionalWatts(v *float64) string {
	if v == nil {
		return metrics.Unavailable
	}
	return fmt.Sprintf("%.0f", *v)
}

// formatPace renders decimal minutes per km as m:ss.
func formatPace(minPerKM float64) string {
	mins := int(minPerKM)
	secs := int((minPerKM - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d", mins, secs)
}
