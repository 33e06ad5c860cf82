package service

import (
	"strings"

	"tunisiaclean/internal/model"
)

// Match reason constants
const (
	ReasonNameMatch       = "Nom correspondant"
	ReasonCityMatch       = "Ville correspondante"
	ReasonRegionMatch     = "Région correspondante"
	ReasonTagMatch        = "Mot-clé correspondant"
	ReasonTypeMatch       = "Type sélectionné"
	ReasonScoreMatch      = "Propreté au-dessus du seuil"
	ReasonAmenitiesMatch  = "Équipements disponibles"
	ReasonExcellentScore  = "Propreté excellente"
	ReasonFeatured        = "Lieu recommandé"
	ReasonGeneralMatch    = "Correspondance générale"
	excellentScoreMinimum = 4.5
)

// annotate attaches matched reasons to each location. Order is kept as is.
func annotate(locations []model.Location, query string, filters *model.FilterState) []model.LocationResult {
	q := strings.ToLower(query)
	results := make([]model.LocationResult, 0, len(locations))
	for i := range locations {
		results = append(results, model.LocationResult{
			Location:       locations[i],
			MatchedReasons: generateMatchedReasons(&locations[i], q, filters),
		})
	}
	return results
}

// generateMatchedReasons generates human-readable reasons for why this location matched
func generateMatchedReasons(l *model.Location, q string, filters *model.FilterState) []string {
	reasons := []string{}

	if q != "" {
		reasons = append(reasons, matchedFields(l, q)...)
	}

	if filters != nil {
		if len(filters.Types) > 0 {
			reasons = append(reasons, ReasonTypeMatch)
		}
		if filters.CleanlinessScore != nil {
			reasons = append(reasons, ReasonScoreMatch)
		}
		if len(filters.Amenities) > 0 {
			reasons = append(reasons, ReasonAmenitiesMatch)
		}
	}

	if l.CleanlinessScore >= excellentScoreMinimum {
		reasons = append(reasons, ReasonExcellentScore)
	}
	if l.Featured {
		reasons = append(reasons, ReasonFeatured)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}

	return reasons
}
