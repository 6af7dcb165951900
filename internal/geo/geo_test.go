package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 28.6139, 77.2090, 28.6139, 77.2090, 0, 0.001},
		{"delhi to mumbai", 28.6139, 77.2090, 19.0760, 72.8777, 1153, 10},
		{"delhi to noida", 28.6139, 77.2090, 28.5355, 77.3910, 18.5, 2},
		{"one degree of latitude", 20, 77, 21, 77, 111.2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineKm = %.3f, want %.3f ± %.3f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestPolylineLengthKm(t *testing.T) {
	line := [][]float64{
		{77.2090, 28.6139},
		{77.3000, 28.5700},
		{77.3910, 28.5355},
	}

	got := PolylineLengthKm(line)
	direct := HaversineKm(28.6139, 77.2090, 28.5355, 77.3910)

	if got < direct {
		t.Errorf("polyline length %.3f shorter than great-circle %.3f between endpoints", got, direct)
	}
	if got > 2*direct {
		t.Errorf("polyline length %.3f implausibly long for a near-straight path", got)
	}

	if l := PolylineLengthKm(line[:1]); l != 0 {
		t.Errorf("single-point polyline length = %.3f, want 0", l)
	}
}

func TestPointToSegmentKm(t *testing.T) {
	// Horizontal segment along lat 28.6; point 0.1 degrees north of its middle.
	d := PointToSegmentKm(28.7, 77.25, 28.6, 77.2, 28.6, 77.3)
	if math.Abs(d-11.12) > 0.5 {
		t.Errorf("perpendicular distance = %.3f, want ~11.12", d)
	}

	// Point beyond endpoint B clamps to the endpoint.
	d = PointToSegmentKm(28.6, 77.4, 28.6, 77.2, 28.6, 77.3)
	endpoint := HaversineKm(28.6, 77.4, 28.6, 77.3)
	if math.Abs(d-endpoint) > 0.5 {
		t.Errorf("clamped distance = %.3f, want ~%.3f", d, endpoint)
	}

	// Degenerate segment: both endpoints equal.
	d = PointToSegmentKm(28.7, 77.2, 28.6, 77.2, 28.6, 77.2)
	if math.Abs(d-11.12) > 0.5 {
		t.Errorf("degenerate segment distance = %.3f, want ~11.12", d)
	}
}

func TestPolylineIntersectsDisk(t *testing.T) {
	// Route passing just west of a zone center.
	route := [][]float64{
		{77.20, 28.40},
		{77.20, 28.60},
		{77.20, 28.80},
	}

	if !PolylineIntersectsDisk(route, 28.60, 77.25, 8.0) {
		t.Error("route ~5km from center should intersect an 8km disk")
	}
	if PolylineIntersectsDisk(route, 28.60, 77.40, 8.0) {
		t.Error("route ~20km from center should not intersect an 8km disk")
	}

	// A segment whose endpoints are both outside the disk but whose middle
	// passes through it must still count.
	long := [][]float64{
		{77.25, 28.00},
		{77.25, 29.00},
	}
	if !PolylineIntersectsDisk(long, 28.50, 77.25, 8.0) {
		t.Error("segment crossing the disk interior should intersect")
	}

	single := [][]float64{{77.25, 28.60}}
	if !PolylineIntersectsDisk(single, 28.60, 77.25, 8.0) {
		t.Error("single point at the center should intersect")
	}
}

func TestDegreesPerKm(t *testing.T) {
	if math.Abs(DegreesPerKmLat*110.574-1) > 1e-9 {
		t.Error("DegreesPerKmLat inverse mismatch")
	}

	// One km of longitude spans more degrees at higher latitude.
	if DegreesPerKmLon(35) <= DegreesPerKmLon(10) {
		t.Error("longitude degrees per km should grow with latitude")
	}
	got := DegreesPerKmLon(0)
	if math.Abs(got-1/111.320) > 1e-9 {
		t.Errorf("DegreesPerKmLon(0) = %v, want 1/111.320", got)
	}
}
