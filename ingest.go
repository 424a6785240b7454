// Package fitcoach decodes Garmin FIT activity files into the canonical
// sample representation consumed by the metrics engine.
package fitcoach

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tormoder/fit"

	"fitcoach/metrics"
)

// ReadFile decodes the FIT activity file at path into an Activity.
func ReadFile(path string) (*metrics.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadBytes decodes a FIT activity held in memory.
func ReadBytes(data []byte) (*metrics.Activity, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a FIT activity stream. The file must contain an activity with
// at least one session message.
func Read(r io.Reader) (*metrics.Activity, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}

	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("activity file has no session message")
	}

	return &metrics.Activity{
		Session: buildSession(activity.Sessions[0]),
		Samples: buildSamples(activity.Records),
	}, nil
}

func buildSession(s *fit.SessionMsg) metrics.SessionSummary {
	session := metrics.SessionSummary{
		Sport:     metrics.ParseSport(fmt.Sprint(s.Sport)),
		SubSport:  subSportName(s.SubSport),
		StartTime: validTimeOrZero(s.StartTime),
	}

	session.TotalElapsedTime = scaledField(s.GetTotalElapsedTimeScaled())
	session.TotalTimerTime = scaledField(s.GetTotalTimerTimeScaled())
	session.TotalDistance = scaledField(s.GetTotalDistanceScaled())

	session.AvgHeartRate = uint8Field(s.AvgHeartRate)
	session.MaxHeartRate = uint8Field(s.MaxHeartRate)
	session.AvgPower = uint16Field(s.AvgPower)
	session.MaxPower = uint16Field(s.MaxPower)

	session.AvgSpeed = scaledField(s.GetEnhancedAvgSpeedScaled())
	if session.AvgSpeed == nil {
		session.AvgSpeed = scaledField(s.GetAvgSpeedScaled())
	}
	session.MaxSpeed = scaledField(s.GetEnhancedMaxSpeedScaled())
	if session.MaxSpeed == nil {
		session.MaxSpeed = scaledField(s.GetMaxSpeedScaled())
	}

	session.AvgCadence = cadenceField(s.GetAvgCadence())
	session.MaxCadence = cadenceField(s.GetMaxCadence())

	session.TotalCalories = uint16Field(s.TotalCalories)
	session.TotalAscent = uint16Field(s.TotalAscent)
	session.TotalDescent = uint16Field(s.TotalDescent)

	return session
}

// buildSamples converts record messages into the sample series, sorted by
// timestamp. Invalid-sentinel channel values become absent channels rather
// than zeros.
func buildSamples(records []*fit.RecordMsg) metrics.SampleSeries {
	rows := make([]*fit.RecordMsg, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			rows = append(rows, rec)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	samples := make(metrics.SampleSeries, 0, len(rows))
	for _, rec := range rows {
		samples = append(samples, metrics.Sample{
			HeartRate:   uint8Field(rec.HeartRate),
			Power:       uint16Field(rec.Power),
			Speed:       recordSpeed(rec),
			Cadence:     recordCadence(rec),
			Altitude:    recordAltitude(rec),
			Temperature: int8Field(rec.Temperature),
		})
	}
	return samples
}

func recordSpeed(rec *fit.RecordMsg) *float64 {
	speed := rec.GetEnhancedSpeedScaled()
	if isFinite(speed) && speed >= 0 {
		return &speed
	}
	speed = rec.GetSpeedScaled()
	if isFinite(speed) && speed >= 0 {
		return &speed
	}
	return nil
}

func recordAltitude(rec *fit.RecordMsg) *float64 {
	alt := rec.GetEnhancedAltitudeScaled()
	if isFinite(alt) {
		return &alt
	}
	alt = rec.GetAltitudeScaled()
	if isFinite(alt) {
		return &alt
	}
	return nil
}

func recordCadence(rec *fit.RecordMsg) *float64 {
	cad256 := rec.GetCadence256Scaled()
	if isFinite(cad256) && cad256 > 0 {
		return &cad256
	}
	return uint8Field(rec.Cadence)
}

func subSportName(ss fit.SubSport) string {
	if ss == fit.SubSportInvalid {
		return ""
	}
	return strings.ToLower(fmt.Sprint(ss))
}

func validTimeOrZero(t time.Time) time.Time {
	if t.IsZero() || fit.IsBaseTime(t) {
		return time.Time{}
	}
	return t
}

func uint8Field(v uint8) *float64 {
	if v == math.MaxUint8 {
		return nil
	}
	return metrics.Float(float64(v))
}

func uint16Field(v uint16) *float64 {
	if v == math.MaxUint16 {
		return nil
	}
	return metrics.Float(float64(v))
}

func int8Field(v int8) *float64 {
	if v == math.MaxInt8 {
		return nil
	}
	return metrics.Float(float64(v))
}

// scaledField filters the NaN that scaled getters return for the invalid
// sentinel, and non-positive values, which the summary treats as absent.
func scaledField(v float64) *float64 {
	if !isFinite(v) || v <= 0 {
		return nil
	}
	return &v
}

// cadenceField normalizes the any-typed cadence getters, which return uint8
// for most sports and fractional values for others.
func cadenceField(v any) *float64 {
	switch x := v.(type) {
	case uint8:
		return uint8Field(x)
	case uint16:
		return uint16Field(x)
	case float64:
		return scaledField(x)
	case int:
		if x < 0 {
			return nil
		}
		return metrics.Float(float64(x))
	default:
		return nil
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
