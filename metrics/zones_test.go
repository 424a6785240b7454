package metrics

import (
	"math"
	"testing"
)

func TestTimeInZonesEmptyChannel(t *testing.T) {
	zones := TimeInZones(nil, DefaultMaxHeartRate, HeartRateZoneTable)
	if len(zones) != len(HeartRateZoneTable) {
		t.Fatalf("expected %d zones, got %d", len(HeartRateZoneTable), len(zones))
	}
	for _, z := range zones {
		if z.Percent != 0 {
			t.Fatalf("zone %q should be 0 with no samples, got %v", z.Label, z.Percent)
		}
	}
}

func TestTimeInZonesBoundaryDoubleCount(t *testing.T) {
	// 60% of 190 = 114 sits exactly on the zone 1 / zone 2 boundary and
	// counts toward both.
	zones := TimeInZones([]float64{114}, 190, HeartRateZoneTable)

	if got := zonePercentFor(zones, "Zone 1 (50-60%)"); got != 100 {
		t.Errorf("zone 1 = %v, want 100", got)
	}
	if got := zonePercentFor(zones, "Zone 2 (60-70%)"); got != 100 {
		t.Errorf("zone 2 = %v, want 100", got)
	}

	total := 0.0
	for _, z := range zones {
		total += z.Percent
	}
	if total < 100 {
		t.Errorf("boundary sample should push total to >= 100%%, got %v", total)
	}
}

func TestTimeInZonesNoBoundarySumsTo100(t *testing.T) {
	// Values strictly inside zones: percentages sum to exactly 100.
	samples := []float64{100, 105, 125, 145, 165} // 52.6%, 55.3%, 65.8%, 76.3%, 86.8% of 190
	zones := TimeInZones(samples, 190, HeartRateZoneTable)

	total := 0.0
	for _, z := range zones {
		total += z.Percent
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("total = %v, want 100", total)
	}
}

func TestTimeInZonesUnboundedTopZone(t *testing.T) {
	// 400 W at FTP 250 is 160%, beyond every bounded band.
	zones := TimeInZones([]float64{400}, DefaultFTP, PowerZoneTable)
	if got := zonePercentFor(zones, "Zone 6 (120%+)"); got != 100 {
		t.Errorf("zone 6 = %v, want 100", got)
	}
}

func TestTimeInZonesPowerDistribution(t *testing.T) {
	// FTP 200: 100 W -> zone 1, 300 W -> zone 6, spread evenly.
	zones := TimeInZones([]float64{100, 100, 300, 300}, 200, PowerZoneTable)
	if got := zonePercentFor(zones, "Zone 1 (0-55%)"); got != 50 {
		t.Errorf("zone 1 = %v, want 50", got)
	}
	if got := zonePercentFor(zones, "Zone 6 (120%+)"); got != 50 {
		t.Errorf("zone 6 = %v, want 50", got)
	}
}
