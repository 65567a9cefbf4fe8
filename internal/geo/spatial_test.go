package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareRegion(minX, minY, maxX, maxY float64) *Feature {
	return &Feature{
		Geometry: orb.Polygon{
			{
				{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
			},
		},
	}
}

func TestValidateRegion_Polygon(t *testing.T) {
	require.NoError(t, ValidateRegion(squareRegion(0, 0, 10, 10)))
}

func TestValidateRegion_MultiPolygon(t *testing.T) {
	region := &Feature{
		Geometry: orb.MultiPolygon{
			{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
			{{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}},
		},
	}
	require.NoError(t, ValidateRegion(region))
}

func TestValidateRegion_RejectsNonPolygon(t *testing.T) {
	err := ValidateRegion(&Feature{Geometry: orb.Point{1, 2}})
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestValidateRegion_RejectsNil(t *testing.T) {
	err := ValidateRegion(nil)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestValidateRegion_RejectsOpenRing(t *testing.T) {
	region := &Feature{
		Geometry: orb.Polygon{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		},
	}
	err := ValidateRegion(region)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestValidateRegion_RejectsTooFewPoints(t *testing.T) {
	region := &Feature{
		Geometry: orb.Polygon{
			{{0, 0}, {4, 0}, {0, 0}},
		},
	}
	err := ValidateRegion(region)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestValidateRegion_RejectsZeroArea(t *testing.T) {
	region := &Feature{
		Geometry: orb.Polygon{
			{{0, 0}, {4, 0}, {4, 0}, {0, 0}, {0, 0}},
		},
	}
	err := ValidateRegion(region)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestValidateRegion_RejectsSelfIntersectingRing(t *testing.T) {
	// Bow tie: edges (2,0)->(0,2) and (3,3)->(0,0) cross at (1,1) even though
	// the signed area is non-zero.
	region := &Feature{
		Geometry: orb.Polygon{
			{{0, 0}, {2, 0}, {0, 2}, {3, 3}, {0, 0}},
		},
	}
	err := ValidateRegion(region)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "self-intersecting")
}

func TestValidateRegion_RejectsSelfIntersectingMultiPolygonMember(t *testing.T) {
	region := &Feature{
		Geometry: orb.MultiPolygon{
			{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
			{{{5, 5}, {7, 5}, {5, 7}, {8, 8}, {5, 5}}},
		},
	}
	err := ValidateRegion(region)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestIntersects_PointInside(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)
	assert.True(t, Intersects(region, orb.Point{5, 5}))
}

func TestIntersects_PointOutside(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)
	assert.False(t, Intersects(region, orb.Point{15, 5}))
}

func TestIntersects_PolygonOverlap(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)
	other := orb.Polygon{
		{{8, 8}, {12, 8}, {12, 12}, {8, 12}, {8, 8}},
	}
	assert.True(t, Intersects(region, other))
}

func TestIntersects_PolygonDisjoint(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)
	other := orb.Polygon{
		{{20, 20}, {25, 20}, {25, 25}, {20, 25}, {20, 20}},
	}
	assert.False(t, Intersects(region, other))
}

func TestIntersects_PolygonContained(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)
	inner := orb.Polygon{
		{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}
	assert.True(t, Intersects(region, inner))
}

func TestIntersects_RegionContainedInGeometry(t *testing.T) {
	region := squareRegion(4, 4, 6, 6)
	outer := orb.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
	}
	assert.True(t, Intersects(region, outer))
}

func TestIntersects_EdgeCrossingWithoutContainedVertices(t *testing.T) {
	// A tall thin rectangle crossing a wide flat one: they overlap but
	// neither holds a vertex of the other.
	region := squareRegion(0, 4, 10, 6)
	cross := orb.Polygon{
		{{4, 0}, {6, 0}, {6, 10}, {4, 10}, {4, 0}},
	}
	assert.True(t, Intersects(region, cross))
}

func TestIntersects_LineString(t *testing.T) {
	region := squareRegion(0, 0, 10, 10)

	crossing := orb.LineString{{-5, 5}, {15, 5}}
	assert.True(t, Intersects(region, crossing))

	outside := orb.LineString{{-5, 20}, {15, 20}}
	assert.False(t, Intersects(region, outside))
}

func TestIntersects_MultiPolygonRegion(t *testing.T) {
	region := &Feature{
		Geometry: orb.MultiPolygon{
			{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}},
			{{{10, 10}, {12, 10}, {12, 12}, {10, 12}, {10, 10}}},
		},
	}
	assert.True(t, Intersects(region, orb.Point{11, 11}))
	assert.False(t, Intersects(region, orb.Point{5, 5}))
}

func TestIntersects_NilInputs(t *testing.T) {
	assert.False(t, Intersects(nil, orb.Point{1, 1}))
	assert.False(t, Intersects(squareRegion(0, 0, 1, 1), nil))
}
