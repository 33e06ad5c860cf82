package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"tunisiaclean/internal/model"
	"tunisiaclean/internal/utils"
)

// ErrInvalidFilter is returned when a filter state names an unknown type or an
// out-of-range or non-finite number
var ErrInvalidFilter = errors.New("invalid filter")

// LocationSource is the read-only catalog queried by the services
type LocationSource interface {
	All() []model.Location
	Get(id string) (model.Location, bool)
	Featured() []model.Location
	ByType(t model.LocationType) []model.Location
	ByRegion(region string) []model.Location
	ByMinScore(minScore float64) []model.Location
}

// Search returns, in input order, the locations whose name, city, region or
// one of whose tags contains query. Matching is case-insensitive substring
// containment; amenities, address and description are not searched.
func Search(query string, locations []model.Location) []model.Location {
	q := strings.ToLower(query)
	out := make([]model.Location, 0, len(locations))
	for i := range locations {
		if len(matchedFields(&locations[i], q)) > 0 {
			out = append(out, locations[i])
		}
	}
	return out
}

// Filter keeps, in input order, the locations that satisfy every active facet
// of state. A nil state keeps everything. Distance is never applied.
func Filter(locations []model.Location, state *model.FilterState) []model.Location {
	out := make([]model.Location, 0, len(locations))
	for i := range locations {
		if matchesFilter(&locations[i], state) {
			out = append(out, locations[i])
		}
	}
	return out
}

// matchedFields returns the searchable fields of l containing q (already lower-cased)
func matchedFields(l *model.Location, q string) []string {
	var fields []string
	if strings.Contains(strings.ToLower(l.Name), q) {
		fields = append(fields, ReasonNameMatch)
	}
	if strings.Contains(strings.ToLower(l.City), q) {
		fields = append(fields, ReasonCityMatch)
	}
	if strings.Contains(strings.ToLower(l.Region), q) {
		fields = append(fields, ReasonRegionMatch)
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			fields = append(fields, ReasonTagMatch)
			break
		}
	}
	return fields
}

func matchesFilter(l *model.Location, state *model.FilterState) bool {
	if state == nil {
		return true
	}
	if len(state.Types) > 0 && !containsType(state.Types, l.Type) {
		return false
	}
	if state.CleanlinessScore != nil && l.CleanlinessScore < *state.CleanlinessScore {
		return false
	}
	for _, amenity := range state.Amenities {
		if !l.HasAmenity(amenity) {
			return false
		}
	}
	return true
}

func containsType(types []model.LocationType, t model.LocationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// SearchService composes text search, filtering and catalog lookups
type SearchService struct {
	catalog       LocationSource
	suggestMinLen int
	suggestLimit  int
	logger        *utils.Logger
}

// NewSearchService creates a new search service
func NewSearchService(catalog LocationSource, suggestMinLen, suggestLimit int, logger *utils.Logger) *SearchService {
	return &SearchService{
		catalog:       catalog,
		suggestMinLen: suggestMinLen,
		suggestLimit:  suggestLimit,
		logger:        logger,
	}
}

// Search runs the results page pipeline: text search when the query is
// non-empty, then the filter when a facet is active.
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()

	filters, err := NormalizeFilters(req.Filters)
	if err != nil {
		return nil, err
	}

	locations := s.catalog.All()
	if req.Query != "" {
		locations = Search(req.Query, locations)
	}
	if filters.Distance != nil {
		s.logger.Debug("distance facet %.1f km is not applied", *filters.Distance)
	}
	if !filters.IsEmpty() {
		locations = Filter(locations, filters)
	}

	results := annotate(locations, req.Query, filters)
	took := time.Since(startTime).Milliseconds()

	s.logger.Debug("search q=%q facets=%d -> %d results in %dms",
		req.Query, filters.ActiveCount(), len(results), took)

	return &model.SearchResponse{
		Results:      results,
		Total:        len(results),
		Title:        resultTitle(req.Query),
		Label:        resultLabel(len(results)),
		Query:        req.Query,
		Filters:      filters,
		ActiveFilter: filters.ActiveCount(),
		Took:         took,
	}, nil
}

// Suggest returns the first search hits for the live suggestion list.
// Queries shorter than the minimum length yield nothing.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]model.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	suggestions := []model.Suggestion{}
	if utf8.RuneCountInString(query) < s.suggestMinLen {
		return suggestions, nil
	}

	for _, l := range Search(query, s.catalog.All()) {
		if len(suggestions) >= s.suggestLimit {
			break
		}
		suggestions = append(suggestions, model.Suggestion{
			ID:     l.ID,
			Name:   l.Name,
			Type:   l.Type,
			City:   l.City,
			Region: l.Region,
		})
	}
	return suggestions, nil
}

// GetLocation looks a location up by id. It returns nil, nil when the id is unknown.
func (s *SearchService) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc, ok := s.catalog.Get(id)
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

// GetLocationDetail returns the detail page payload, or nil, nil when the id is unknown
func (s *SearchService) GetLocationDetail(ctx context.Context, id string) (*model.LocationDetail, error) {
	loc, err := s.GetLocation(ctx, id)
	if err != nil || loc == nil {
		return nil, err
	}
	detail := BuildDetail(*loc)
	return &detail, nil
}

// Featured returns the featured locations
func (s *SearchService) Featured() []model.Location {
	return s.catalog.Featured()
}

// Browse lists the catalog narrowed by an optional type, region and minimum score
func (s *SearchService) Browse(t model.LocationType, region string, minScore *float64) ([]model.Location, error) {
	if minScore != nil && !validScore(*minScore) {
		return nil, fmt.Errorf("%w: cleanliness score %v out of [0,5]", ErrInvalidFilter, *minScore)
	}

	var locations []model.Location
	switch {
	case t != "":
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, t)
		}
		locations = s.catalog.ByType(t)
	case region != "":
		locations = s.catalog.ByRegion(region)
	case minScore != nil:
		locations = s.catalog.ByMinScore(*minScore)
	default:
		return s.catalog.All(), nil
	}

	// Remaining criteria narrow the first one
	out := locations[:0]
	for _, l := range locations {
		if t != "" && l.Type != t {
			continue
		}
		if region != "" && l.Region != region {
			continue
		}
		if minScore != nil && l.CleanlinessScore < *minScore {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// FilterOptions describes the facets offered by the filter panel
func (s *SearchService) FilterOptions() model.FilterOptions {
	opts := model.FilterOptions{}
	for _, t := range model.LocationTypes {
		opts.Types = append(opts.Types, model.FacetOption{ID: string(t), Label: t.PluralLabel()})
	}
	for _, score := range ScoreThresholds {
		opts.CleanlinessScores = append(opts.CleanlinessScores, model.FacetOption{
			ID:    fmt.Sprintf("%g", score),
			Label: fmt.Sprintf("%g+", score),
			Value: score,
		})
	}
	for _, a := range utils.AmenityFacets {
		opts.Amenities = append(opts.Amenities, model.FacetOption{ID: a.ID, Label: a.Label})
	}
	return opts
}

// NormalizeFilters validates state and resolves amenity facet ids to labels.
// The input is not modified; a nil input yields an empty state.
func NormalizeFilters(state *model.FilterState) (*model.FilterState, error) {
	out := model.NewFilterState()
	if state == nil {
		return out, nil
	}
	for _, t := range state.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, t)
		}
		if !containsType(out.Types, t) {
			out.Types = append(out.Types, t)
		}
	}
	if state.CleanlinessScore != nil {
		score := *state.CleanlinessScore
		if !validScore(score) {
			return nil, fmt.Errorf("%w: cleanliness score %v out of [0,5]", ErrInvalidFilter, score)
		}
		out.CleanlinessScore = &score
	}
	out.Amenities = utils.ResolveAmenities(state.Amenities)
	if state.Distance != nil {
		if d := *state.Distance; math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return nil, fmt.Errorf("%w: distance %v must be a finite value >= 0", ErrInvalidFilter, d)
		}
		d := *state.Distance
		out.Distance = &d
	}
	return out, nil
}

// validScore reports whether v is a usable threshold; NaN fails every comparison
func validScore(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 5
}

func resultTitle(query string) string {
	if query == "" {
		return "Tous les lieux"
	}
	return fmt.Sprintf("Résultats pour %q", query)
}

func resultLabel(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d lieux trouvés", n)
	}
	return fmt.Sprintf("%d lieu trouvé", n)
}
