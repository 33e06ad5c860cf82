package utils

import (
	"strings"
)

// AmenityFacet is one entry of the amenity filter
type AmenityFacet struct {
	ID    string
	Label string
}

// AmenityFacets lists the amenities offered as filters, in panel order
var AmenityFacets = []AmenityFacet{
	{ID: "wifi", Label: "WiFi gratuit"},
	{ID: "parking", Label: "Parking"},
	{ID: "terrace", Label: "Terrasse"},
	{ID: "ac", Label: "Climatisation"},
}

// Common aliases for amenity facet ids
var amenityAliases = map[string][]string{
	"wifi":    {"wifi", "wi-fi", "wifi gratuit", "internet"},
	"parking": {"parking", "car park", "stationnement"},
	"terrace": {"terrace", "terrasse"},
	"ac":      {"ac", "a/c", "aircon", "air conditioning", "climatisation", "clim"},
}

var amenityLookup = buildAmenityLookup()

func buildAmenityLookup() map[string]string {
	lookup := make(map[string]string)
	for _, f := range AmenityFacets {
		lookup[f.ID] = f.Label
		lookup[strings.ToLower(f.Label)] = f.Label
		for _, alias := range amenityAliases[f.ID] {
			lookup[alias] = f.Label
		}
	}
	return lookup
}

// ResolveAmenity maps a facet id or a known alias to the amenity label
// stored on locations. Unknown values come back trimmed but otherwise verbatim.
func ResolveAmenity(value string) string {
	trimmed := strings.TrimSpace(value)
	if label, ok := amenityLookup[strings.ToLower(trimmed)]; ok {
		return label
	}
	return trimmed
}

// ResolveAmenities resolves every value, dropping blanks and duplicates
func ResolveAmenities(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		label := ResolveAmenity(v)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}
