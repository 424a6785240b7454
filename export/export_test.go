package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fitcoach/metrics"
)

func testActivity() *metrics.Activity {
	samples := make(metrics.SampleSeries, 50)
	for i := range samples {
		samples[i] = metrics.Sample{
			HeartRate: metrics.Float(140 + float64(i%5)),
			Power:     metrics.Float(200),
			Speed:     metrics.Float(10),
		}
	}
	return &metrics.Activity{
		Session: metrics.SessionSummary{
			Sport:            metrics.SportCycling,
			TotalElapsedTime: metrics.Float(50),
			TotalTimerTime:   metrics.Float(50),
		},
		Samples: samples,
	}
}

func TestExportWritesBundle(t *testing.T) {
	activity := testActivity()
	report := metrics.Analyze(*activity, nil)

	outDir := filepath.Join(t.TempDir(), "bundle")
	res, err := Export(activity, report, "prompt body", Options{
		OutDir: outDir,
		Format: "csv",
	})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if res.SampleCount != 50 {
		t.Errorf("sample count = %d, want 50", res.SampleCount)
	}
	for _, path := range []string{res.ReportPath, res.SummaryPath, res.PromptPath, res.SamplesPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing artifact %s: %v", path, err)
		}
	}

	reportData, err := os.ReadFile(res.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var flat map[string]map[string]any
	if err := json.Unmarshal(reportData, &flat); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	for _, group := range metrics.GroupOrder {
		if _, ok := flat[group]; !ok {
			t.Errorf("report.json missing group %q", group)
		}
	}

	promptData, err := os.ReadFile(res.PromptPath)
	if err != nil {
		t.Fatalf("read prompt: %v", err)
	}
	if string(promptData) != "prompt body" {
		t.Errorf("prompt.txt = %q", promptData)
	}

	csvData, err := os.ReadFile(res.SamplesPath)
	if err != nil {
		t.Fatalf("read samples: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 51 { // header + 50 rows
		t.Errorf("csv lines = %d, want 51", len(lines))
	}
	if !strings.HasPrefix(lines[0], "sample_index,hr_bpm,power_w") {
		t.Errorf("unexpected csv header: %s", lines[0])
	}
}

func TestExportSkipsPromptWhenEmpty(t *testing.T) {
	activity := testActivity()
	report := metrics.Analyze(*activity, nil)

	res, err := Export(activity, report, "", Options{
		OutDir: filepath.Join(t.TempDir(), "bundle"),
		Format: "csv",
	})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if res.PromptPath != "" {
		t.Errorf("prompt path = %q, want empty", res.PromptPath)
	}
	if _, err := os.Stat(filepath.Join(res.OutputDir, "prompt.txt")); !os.IsNotExist(err) {
		t.Error("prompt.txt should not exist")
	}
}

func TestExportRefusesNonEmptyDir(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	activity := testActivity()
	report := metrics.Analyze(*activity, nil)

	if _, err := Export(activity, report, "", Options{OutDir: outDir, Format: "csv"}); err == nil {
		t.Fatal("expected an error for a non-empty directory")
	}
	if _, err := Export(activity, report, "", Options{OutDir: outDir, Format: "csv", Overwrite: true}); err != nil {
		t.Fatalf("overwrite should allow reuse: %v", err)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	activity := testActivity()
	report := metrics.Analyze(*activity, nil)

	if _, err := Export(activity, report, "", Options{OutDir: t.TempDir(), Format: "xlsx", Overwrite: true}); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestSampleRowsMarkAbsentChannels(t *testing.T) {
	rows := sampleRows(metrics.SampleSeries{
		{HeartRate: metrics.Float(150)},
		{Power: metrics.Float(210), Speed: metrics.Float(9.5)},
	})
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if !rows[0].ValidHR || rows[0].ValidPower {
		t.Errorf("row 0 validity flags wrong: %+v", rows[0])
	}
	if rows[1].ValidHR || !rows[1].ValidPower || !rows[1].ValidSpeed {
		t.Errorf("row 1 validity flags wrong: %+v", rows[1])
	}
	if csvFloat(rows[0].PowerW) != "" {
		t.Error("absent power should render as an empty CSV cell")
	}
}
