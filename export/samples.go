package export

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"fitcoach/metrics"
)

// sampleRow is the on-disk layout of one canonical sample. Absent channels
// are NaN in parquet and empty cells in CSV; the valid_* columns distinguish
// absent from genuinely zero readings.
type sampleRow struct {
	SampleIndex  int64   `parquet:"name=sample_index, type=INT64"`
	HRBPM        float64 `parquet:"name=hr_bpm, type=DOUBLE"`
	PowerW       float64 `parquet:"name=power_w, type=DOUBLE"`
	SpeedMPS     float64 `parquet:"name=speed_mps, type=DOUBLE"`
	CadenceRPM   float64 `parquet:"name=cadence_rpm, type=DOUBLE"`
	AltitudeM    float64 `parquet:"name=altitude_m, type=DOUBLE"`
	TemperatureC float64 `parquet:"name=temperature_c, type=DOUBLE"`
	ValidHR      bool    `parquet:"name=valid_hr, type=BOOLEAN"`
	ValidPower   bool    `parquet:"name=valid_power, type=BOOLEAN"`
	ValidSpeed   bool    `parquet:"name=valid_speed, type=BOOLEAN"`
}

func sampleRows(samples metrics.SampleSeries) []sampleRow {
	rows := make([]sampleRow, len(samples))
	for i, s := range samples {
		rows[i] = sampleRow{
			SampleIndex:  int64(i),
			HRBPM:        valueOrNaN(s.HeartRate),
			PowerW:       valueOrNaN(s.Power),
			SpeedMPS:     valueOrNaN(s.Speed),
			CadenceRPM:   valueOrNaN(s.Cadence),
			AltitudeM:    valueOrNaN(s.Altitude),
			TemperatureC: valueOrNaN(s.Temperature),
			ValidHR:      s.HeartRate != nil,
			ValidPower:   s.Power != nil,
			ValidSpeed:   s.Speed != nil,
		}
	}
	return rows
}

func writeSamplesParquet(path string, rows []sampleRow) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(sampleRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func writeSamplesCSV(path string, rows []sampleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"sample_index", "hr_bpm", "power_w", "speed_mps", "cadence_rpm",
		"altitude_m", "temperature_c", "valid_hr", "valid_power", "valid_speed",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			strconv.FormatInt(row.SampleIndex, 10),
			csvFloat(row.HRBPM),
			csvFloat(row.PowerW),
			csvFloat(row.SpeedMPS),
			csvFloat(row.CadenceRPM),
			csvFloat(row.AltitudeM),
			csvFloat(row.TemperatureC),
			strconv.FormatBool(row.ValidHR),
			strconv.FormatBool(row.ValidPower),
			strconv.FormatBool(row.ValidSpeed),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func csvFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
