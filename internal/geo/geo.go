// Package geo provides the spherical and planar geometry shared by the
// feed generator and the route evaluator.
package geo

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// PolylineLengthKm sums the great-circle lengths of a [lon, lat] polyline.
func PolylineLengthKm(coords [][]float64) float64 {
	total := 0.0
	for i := 1; i < len(coords); i++ {
		total += HaversineKm(coords[i-1][1], coords[i-1][0], coords[i][1], coords[i][0])
	}
	return total
}

// PointToSegmentKm computes the distance in kilometers from point P to
// segment AB. All arguments are (lat, lon). Works in an equirectangular
// projection, which is accurate enough at the few-kilometer scale the
// intersection tests operate on.
func PointToSegmentKm(pLat, pLon, aLat, aLon, bLat, bLon float64) float64 {
	cosLat := math.Cos((aLat + bLat) / 2 * math.Pi / 180)

	ax := aLon * cosLat
	ay := aLat
	bx := bLon * cosLat
	by := bLat
	px := pLon * cosLat
	py := pLat

	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy

	var t float64
	if lenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	ex := px - (ax + t*dx)
	ey := py - (ay + t*dy)
	return math.Sqrt(ex*ex+ey*ey) * math.Pi / 180 * earthRadiusKm
}

// PolylineIntersectsDisk reports whether any segment of a [lon, lat]
// polyline passes within radiusKm of the center point.
func PolylineIntersectsDisk(coords [][]float64, centerLat, centerLon, radiusKm float64) bool {
	if len(coords) == 1 {
		return HaversineKm(coords[0][1], coords[0][0], centerLat, centerLon) <= radiusKm
	}
	for i := 1; i < len(coords); i++ {
		d := PointToSegmentKm(centerLat, centerLon,
			coords[i-1][1], coords[i-1][0],
			coords[i][1], coords[i][0])
		if d <= radiusKm {
			return true
		}
	}
	return false
}

// DegreesPerKmLat is the latitude span of one kilometer.
const DegreesPerKmLat = 1 / 110.574

// DegreesPerKmLon returns the longitude span of one kilometer at the given
// latitude.
func DegreesPerKmLon(lat float64) float64 {
	return 1 / (111.320 * math.Cos(lat*math.Pi/180))
}
