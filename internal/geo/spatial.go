package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// minRingPoints is the smallest closed ring: three vertices plus the
// repeated first point.
const minRingPoints = 4

// ValidateRegion checks that a subscription area of interest is a usable
// polygon: Polygon or MultiPolygon geometry, closed rings with enough points,
// and non-zero area. Violations are ParseErrors so callers can surface them
// through the same channel as malformed event geometry.
func ValidateRegion(f *Feature) error {
	if f == nil || f.Geometry == nil {
		return newParseError("region has no geometry", nil)
	}

	switch geom := f.Geometry.(type) {
	case orb.Polygon:
		return validatePolygon(geom)
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return newParseError("region multipolygon is empty", nil)
		}
		for _, polygon := range geom {
			if err := validatePolygon(polygon); err != nil {
				return err
			}
		}

		return nil
	default:
		return newParseError("region must be a polygon", nil)
	}
}

func validatePolygon(polygon orb.Polygon) error {
	if len(polygon) == 0 {
		return newParseError("region polygon has no rings", nil)
	}

	for _, ring := range polygon {
		if len(ring) < minRingPoints {
			return newParseError("region ring has too few points", nil)
		}
		if !ring.Closed() {
			return newParseError("region ring is not closed", nil)
		}
		if ringSelfIntersects(ring) {
			return newParseError("region ring is self-intersecting", nil)
		}
	}

	if planar.Area(polygon) == 0 {
		return newParseError("region polygon has zero area", nil)
	}

	return nil
}

// ringSelfIntersects tests every pair of non-adjacent ring segments.
// Adjacent segments share a vertex and always touch, so they are skipped;
// any other crossing makes the ring a bow tie.
func ringSelfIntersects(ring orb.Ring) bool {
	segments := len(ring) - 1
	for i := 0; i < segments; i++ {
		for j := i + 1; j < segments; j++ {
			if j == i+1 || (i == 0 && j == segments-1) {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return true
			}
		}
	}

	return false
}

// Intersects reports whether the event geometry spatially intersects the
// subscription region. The region must be a Polygon or MultiPolygon; any
// geometry type is accepted on the event side.
func Intersects(region *Feature, geom orb.Geometry) bool {
	if region == nil || region.Geometry == nil || geom == nil {
		return false
	}

	// Cheap reject before any ring walking.
	if !region.Geometry.Bound().Intersects(geom.Bound()) {
		return false
	}

	switch area := region.Geometry.(type) {
	case orb.Polygon:
		return polygonIntersects(area, geom)
	case orb.MultiPolygon:
		for _, polygon := range area {
			if polygonIntersects(polygon, geom) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func polygonIntersects(area orb.Polygon, geom orb.Geometry) bool {
	switch g := geom.(type) {
	case orb.Point:
		return planar.PolygonContains(area, g)
	case orb.MultiPoint:
		for _, point := range g {
			if planar.PolygonContains(area, point) {
				return true
			}
		}

		return false
	case orb.LineString:
		return lineIntersectsPolygon(area, g)
	case orb.MultiLineString:
		for _, line := range g {
			if lineIntersectsPolygon(area, line) {
				return true
			}
		}

		return false
	case orb.Polygon:
		return polygonsIntersect(area, g)
	case orb.MultiPolygon:
		for _, polygon := range g {
			if polygonsIntersect(area, polygon) {
				return true
			}
		}

		return false
	case orb.Collection:
		for _, member := range g {
			if polygonIntersects(area, member) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func lineIntersectsPolygon(area orb.Polygon, line orb.LineString) bool {
	for _, point := range line {
		if planar.PolygonContains(area, point) {
			return true
		}
	}

	for idx := 0; idx+1 < len(line); idx++ {
		if segmentCrossesRings(area, line[idx], line[idx+1]) {
			return true
		}
	}

	return false
}

func polygonsIntersect(a, b orb.Polygon) bool {
	// Vertex containment in either direction covers full containment; edge
	// crossings cover partial overlap without contained vertices.
	for _, ring := range b {
		for _, point := range ring {
			if planar.PolygonContains(a, point) {
				return true
			}
		}
	}
	for _, ring := range a {
		for _, point := range ring {
			if planar.PolygonContains(b, point) {
				return true
			}
		}
	}

	for _, ring := range b {
		for idx := 0; idx+1 < len(ring); idx++ {
			if segmentCrossesRings(a, ring[idx], ring[idx+1]) {
				return true
			}
		}
	}

	return false
}

func segmentCrossesRings(area orb.Polygon, p1, p2 orb.Point) bool {
	for _, ring := range area {
		for idx := 0; idx+1 < len(ring); idx++ {
			if segmentsIntersect(p1, p2, ring[idx], ring[idx+1]) {
				return true
			}
		}
	}

	return false
}

// segmentsIntersect reports whether segments (p1,p2) and (q1,q2) cross,
// using the standard orientation test with collinear overlap handling.
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}

	return false
}

func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, c orb.Point) bool {
	return min(a[0], b[0]) <= c[0] && c[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= c[1] && c[1] <= max(a[1], b[1])
}
