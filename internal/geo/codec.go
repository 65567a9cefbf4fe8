// Package geo converts between GeoJSON Feature interchange documents and the
// internal orb geometry representation, and evaluates the spatial predicates
// used by the matching engine.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature is the canonical internal form of a GeoJSON Feature: the decoded
// geometry plus the Feature-level properties. The Feature properties are not
// the event's own properties attribute; they travel with the geometry.
type Feature struct {
	Geometry   orb.Geometry
	Properties geojson.Properties
}

// ParseError reports a structurally invalid interchange geometry. Stores
// convert it to a validation failure at their boundary; it is never fatal.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid geometry: %s: %v", e.Reason, e.Err)
	}

	return "invalid geometry: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(reason string, err error) *ParseError {
	return &ParseError{Reason: reason, Err: err}
}

// IsParseError reports whether err is a geometry parse failure.
func IsParseError(err error) bool {
	var pe *ParseError

	return errors.As(err, &pe)
}

// DecodeFeature parses a single GeoJSON Feature document. FeatureCollections,
// bare geometries, missing geometry members and malformed coordinates are all
// rejected with a ParseError.
func DecodeFeature(data []byte) (*Feature, error) {
	if len(data) == 0 {
		return nil, newParseError("empty document", nil)
	}

	// Peek at the type member first so a FeatureCollection or bare geometry
	// is reported as a wrong type rather than a generic unmarshal failure.
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, newParseError("malformed json", err)
	}
	if head.Type != "Feature" {
		return nil, newParseError(fmt.Sprintf("expected a Feature, got %q", head.Type), nil)
	}

	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, newParseError("malformed feature", err)
	}
	if feature.Geometry == nil {
		return nil, newParseError("feature has no geometry", nil)
	}

	return &Feature{
		Geometry:   feature.Geometry,
		Properties: feature.Properties,
	}, nil
}

// EncodeFeature renders the internal representation back to a GeoJSON Feature
// document. DecodeFeature(EncodeFeature(f)) yields a Feature equal to f.
func EncodeFeature(f *Feature) ([]byte, error) {
	if f == nil || f.Geometry == nil {
		return nil, newParseError("feature has no geometry", nil)
	}

	out := geojson.NewFeature(f.Geometry)
	if f.Properties != nil {
		out.Properties = f.Properties
	}

	data, err := out.MarshalJSON()
	if err != nil {
		return nil, newParseError("marshal feature", err)
	}

	return data, nil
}

// Equal reports whether two decoded features carry the same geometry.
func Equal(a, b *Feature) bool {
	if a == nil || b == nil {
		return a == b
	}

	return orb.Equal(a.Geometry, b.Geometry)
}
