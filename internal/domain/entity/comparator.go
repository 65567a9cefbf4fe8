package entity

import "reflect"

// ContentComparator reports whether two events differ in user-visible
// content. The comparison is pure; it never mutates either event.
type ContentComparator func(existing, incoming *Event) bool

// CompareFields builds a comparator over a configurable set of content
// fields. Unknown field names are ignored; an empty set compares the title.
//
// Recognized fields: title, description, properties, geometry.
func CompareFields(fields ...string) ContentComparator {
	if len(fields) == 0 {
		fields = []string{"title"}
	}

	return func(existing, incoming *Event) bool {
		for _, field := range fields {
			switch field {
			case "title":
				if existing.Title != incoming.Title {
					return true
				}
			case "description":
				if existing.Description != incoming.Description {
					return true
				}
			case "properties":
				if !reflect.DeepEqual(existing.Properties, incoming.Properties) {
					return true
				}
			case "geometry":
				if !geomEqual(existing, incoming) {
					return true
				}
			}
		}

		return false
	}
}

func geomEqual(a, b *Event) bool {
	if a.Geom == nil || b.Geom == nil {
		return a.Geom == b.Geom
	}

	return reflect.DeepEqual(a.Geom.Geometry, b.Geom.Geometry)
}
