package metrics

// TrainingZones is the zone-distribution group: time-in-zone percentages for
// whichever of the heart-rate and power channels carried data.
type TrainingZones struct {
	HRZones    []ZonePercent `json:"hr_zones_time,omitempty"`
	PowerZones []ZonePercent `json:"power_zones_time,omitempty"`
}

// AthleteSpecific holds metrics that only exist once a profile is supplied.
type AthleteSpecific struct {
	Age             *int     `json:"age,omitempty"`
	EstimatedMaxHR  *float64 `json:"estimated_max_hr,omitempty"`
	WeightKG        *float64 `json:"weight,omitempty"`
	PowerToWeight   *float64 `json:"power_to_weight_ratio,omitempty"` // W/kg from avg power
	FTPWatts        *float64 `json:"ftp,omitempty"`
}

// Analyze runs every applicable metric group against one activity and
// assembles the report. Groups whose channel has no data stay nil; the
// report shape itself is always complete. The call is side-effect-free and
// safe to run concurrently over different activities.
//
// profile may be nil. When supplied it overrides the default max heart rate
// (220-age), the default FTP, and enables power-to-weight.
func Analyze(activity Activity, profile *AthleteProfile) *Report {
	session := activity.Session
	series := activity.Samples

	maxHR := DefaultMaxHeartRate
	ftp := DefaultFTP
	if profile != nil {
		if profile.AgeYears > 0 {
			maxHR = float64(220 - profile.AgeYears)
		}
		if profile.FTPWatts > 0 {
			ftp = profile.FTPWatts
		}
	}

	r := &Report{
		Basic: analyzeBasic(session),
	}

	hr := series.Channel(ChannelHeartRate)
	if len(hr) > 0 {
		r.HeartRate = analyzeHeartRate(hr, session, maxHR)
	}

	power := series.Channel(ChannelPower)
	if len(power) > 0 {
		r.Power = analyzePower(power, session, ftp)
	}

	speed := series.Channel(ChannelSpeed)
	if len(speed) > 0 {
		r.PaceSpeed = analyzePaceSpeed(speed, session.Sport)
	}

	r.TrainingZones = &TrainingZones{}
	if len(hr) > 0 {
		r.TrainingZones.HRZones = TimeInZones(hr, maxHR, HeartRateZoneTable)
	}
	if len(power) > 0 {
		r.TrainingZones.PowerZones = TimeInZones(power, ftp, PowerZoneTable)
	}

	r.Efficiency = analyzeEfficiency(series)
	r.Environmental = analyzeEnvironment(series)
	r.Insights = generateInsights(r, session)

	if profile != nil {
		r.Athlete = athleteSpecific(r, *profile)
	}

	return r
}

func athleteSpecific(r *Report, profile AthleteProfile) *AthleteSpecific {
	as := &AthleteSpecific{}
	populated := false

	if profile.AgeYears > 0 {
		age := profile.AgeYears
		estMax := float64(220 - age)
		as.Age = &age
		as.EstimatedMaxHR = &estMax
		populated = true
	}

	if profile.WeightKG > 0 {
		weight := profile.WeightKG
		as.WeightKG = &weight
		populated = true
		if r.Power != nil && r.Power.AvgPower > 0 {
			ptw := r.Power.AvgPower / weight
			as.PowerToWeight = &ptw
		}
	}

	if profile.FTPWatts > 0 {
		ftp := profile.FTPWatts
		as.FTPWatts = &ftp
		populated = true
	}

	if !populated {
		return nil
	}
	return as
}
