// Package metrics computes derived training metrics from an activity's
// time-ordered samples and session summary: zone distributions, Normalized
// Power, Intensity Factor, Training Stress Score, heart-rate drift,
// pace/speed statistics, efficiency ratios, and qualitative insights.
//
// The engine is pure: it performs no I/O, keeps no state between calls, and
// never returns an error for missing data. Channels that are absent or too
// short for a computation degrade to nil group pointers or nil metric values.
// A single Activity may be analyzed concurrently with others.
package metrics

import (
	"strings"
	"time"
)

// Channel identifies one per-sample data stream.
type Channel int

const (
	ChannelHeartRate Channel = iota
	ChannelPower
	ChannelSpeed
	ChannelCadence
	ChannelAltitude
	ChannelTemperature
)

// Sample is one record-level measurement. Every channel is optional; a nil
// pointer means the device did not report that channel at this position.
type Sample struct {
	HeartRate   *float64 // bpm
	Power       *float64 // watts
	Speed       *float64 // m/s
	Cadence     *float64 // rpm
	Altitude    *float64 // meters
	Temperature *float64 // degrees C
}

func (s Sample) channel(ch Channel) *float64 {
	switch ch {
	case ChannelHeartRate:
		return s.HeartRate
	case ChannelPower:
		return s.Power
	case ChannelSpeed:
		return s.Speed
	case ChannelCadence:
		return s.Cadence
	case ChannelAltitude:
		return s.Altitude
	case ChannelTemperature:
		return s.Temperature
	}
	return nil
}

// SampleSeries is a time-ordered sequence of samples. Ordering follows the
// source recording; sequential computations (rolling windows, drift) rely on
// it. Samples are not required to be evenly spaced.
type SampleSeries []Sample

// Channel returns the non-absent values of one channel in series order.
func (ss SampleSeries) Channel(ch Channel) []float64 {
	out := make([]float64, 0, len(ss))
	for _, s := range ss {
		if v := s.channel(ch); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Paired returns the values of two channels restricted to sample positions
// where both are present, preserving series order.
func (ss SampleSeries) Paired(a, b Channel) (av, bv []float64) {
	for _, s := range ss {
		va := s.channel(a)
		vb := s.channel(b)
		if va != nil && vb != nil {
			av = append(av, *va)
			bv = append(bv, *vb)
		}
	}
	return av, bv
}

// HasChannel reports whether any sample carries the channel.
func (ss SampleSeries) HasChannel(ch Channel) bool {
	for _, s := range ss {
		if s.channel(ch) != nil {
			return true
		}
	}
	return false
}

// Sport is the activity category, resolved once at ingestion so the engine
// never re-compares sport strings.
type Sport int

const (
	SportOther Sport = iota
	SportRunning
	SportWalking
	SportCycling
)

// ParseSport maps a session sport string (any casing) to a Sport.
func ParseSport(s string) Sport {
	switch strings.ToLower(s) {
	case "running":
		return SportRunning
	case "walking":
		return SportWalking
	case "cycling":
		return SportCycling
	default:
		return SportOther
	}
}

func (s Sport) String() string {
	switch s {
	case SportRunning:
		return "running"
	case SportWalking:
		return "walking"
	case SportCycling:
		return "cycling"
	default:
		return "other"
	}
}

// usesPace reports whether the sport reports pace (min/km) rather than speed.
func (s Sport) usesPace() bool {
	return s == SportRunning || s == SportWalking
}

// SessionSummary holds the one-per-activity scalar values reported by the
// device. Any field may be absent (nil). When both are present,
// TotalTimerTime is assumed to be <= TotalElapsedTime.
type SessionSummary struct {
	Sport     Sport
	SubSport  string
	StartTime time.Time

	TotalElapsedTime *float64 // seconds, wall clock
	TotalTimerTime   *float64 // seconds, moving time
	TotalDistance    *float64 // meters

	AvgHeartRate *float64
	MaxHeartRate *float64
	AvgPower     *float64
	MaxPower     *float64
	AvgSpeed     *float64
	MaxSpeed     *float64
	AvgCadence   *float64
	MaxCadence   *float64

	TotalCalories *float64
	TotalAscent   *float64
	TotalDescent  *float64
}

// Activity is the engine's sole input: one session summary plus its samples.
type Activity struct {
	Session SessionSummary
	Samples SampleSeries
}

// AthleteProfile optionally overrides the engine's default thresholds.
// Zero values mean "not supplied".
type AthleteProfile struct {
	AgeYears int     // overrides the 190 bpm max-HR default with 220-age
	WeightKG float64 // enables power-to-weight
	FTPWatts float64 // overrides the 250 W power-zone denominator
}

// Float returns a pointer to v, for building optional fields in tests and
// ingestion code.
func Float(v float64) *float64 { return &v }
