package model

import (
	"homequery/internal/utils"
)

// PropertyRecord is a normalized property listing returned by the query
// service. Identifier is the only required field; everything else degrades
// to nil/empty when the upstream metadata is missing or malformed.
type PropertyRecord struct {
	ID              string   `json:"id"`
	Price           *float64 `json:"price,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty"`
	Bathrooms       *int     `json:"bathrooms,omitempty"`
	FloorArea       *float64 `json:"floor_area,omitempty"`
	LandSize        *float64 `json:"land_size,omitempty"`
	PropertyType    *string  `json:"property_type,omitempty"`
	StreetAddress   *string  `json:"street_address,omitempty"`
	Suburb          *string  `json:"suburb,omitempty"`
	Region          *string  `json:"region,omitempty"`
	Postcode        *string  `json:"postcode,omitempty"`
	YearBuilt       *int     `json:"year_built,omitempty"`
	Description     *string  `json:"description,omitempty"`
	URL             *string  `json:"url,omitempty"`
	Score           *float64 `json:"score,omitempty"`
	Images          []string `json:"images,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	NearbyAmenities []string `json:"nearby_amenities,omitempty"`
}

// SearchResult is the normalized outcome of one successful query: the
// natural-language answer plus the ranked records, in upstream order.
// Built atomically from a single response, never partially populated.
type SearchResult struct {
	AnswerText string           `json:"answer_text"`
	Records    []PropertyRecord `json:"records"`
}

// PropertyPayload is one raw property entry as the query service sends it.
// The service forwards vector-store metadata verbatim, so field types are
// not reliable (prices arrive as strings, counts as floats).
type PropertyPayload map[string]any

// NormalizeProperty maps a raw payload to a PropertyRecord. It returns
// ok=false when the payload carries no usable identifier; such entries are
// malformed and must be excluded, since consumers key on ID uniqueness.
func NormalizeProperty(p PropertyPayload) (PropertyRecord, bool) {
	id, ok := utils.AsString(p["id"])
	if !ok {
		return PropertyRecord{}, false
	}

	rec := PropertyRecord{ID: id}
	if v, ok := utils.AsFloat(p["price"]); ok {
		rec.Price = &v
	}
	if v, ok := utils.AsInt(p["bedrooms"]); ok {
		rec.Bedrooms = &v
	}
	if v, ok := utils.AsInt(p["bathrooms"]); ok {
		rec.Bathrooms = &v
	}
	if v, ok := utils.AsFloat(p["floor_area"]); ok {
		rec.FloorArea = &v
	}
	if v, ok := utils.AsFloat(p["land_size"]); ok {
		rec.LandSize = &v
	}
	if v, ok := utils.AsString(p["property_type"]); ok {
		rec.PropertyType = &v
	}
	if v, ok := utils.AsString(p["street_address"]); ok {
		rec.StreetAddress = &v
	}
	if v, ok := utils.AsString(p["suburb"]); ok {
		rec.Suburb = &v
	}
	// Upstream calls the region field "state".
	if v, ok := utils.AsString(p["state"]); ok {
		rec.Region = &v
	}
	if v, ok := utils.AsString(p["postcode"]); ok {
		rec.Postcode = &v
	}
	if v, ok := utils.AsInt(p["year_built"]); ok {
		rec.YearBuilt = &v
	}
	if v, ok := utils.AsString(p["description"]); ok {
		rec.Description = &v
	}
	if v, ok := utils.AsString(p["url"]); ok {
		rec.URL = &v
	}
	if v, ok := utils.AsFloat(p["score"]); ok {
		rec.Score = &v
	}
	if v, ok := utils.AsStringSlice(p["images"]); ok {
		rec.Images = v
	}
	if v, ok := utils.AsStringSlice(p["amenities"]); ok {
		rec.Amenities = v
	}
	if v, ok := utils.AsStringSlice(p["nearby_amenities"]); ok {
		rec.NearbyAmenities = v
	}

	return rec, true
}

// NormalizeProperties normalizes a raw property list, preserving order.
// Entries without an identifier are dropped; a duplicate identifier keeps
// the first occurrence so IDs stay unique within one result set.
func NormalizeProperties(payloads []PropertyPayload) []PropertyRecord {
	records := make([]PropertyRecord, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))
	for _, p := range payloads {
		rec, ok := NormalizeProperty(p)
		if !ok || seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records
}
