package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"tunisiaclean/internal/model"
	"tunisiaclean/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *repository.Catalog {
	t.Helper()
	c, err := repository.NewCatalog(repository.SeedLocations())
	require.NoError(t, err)
	return c
}

func newTestSearchService(t *testing.T) *SearchService {
	return NewSearchService(newTestCatalog(t), 2, 5, nil)
}

func locationIDs(locs []model.Location) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, l.ID)
	}
	return out
}

func resultIDs(results []model.LocationResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func score(v float64) *float64 {
	return &v
}

func TestSearch(t *testing.T) {
	catalog := newTestCatalog(t).All()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "city", query: "hammamet", want: []string{"3"}},
		{name: "name and tags, case-insensitive", query: "café", want: []string{"1", "6"}},
		{name: "upper case query", query: "CAFÉ", want: []string{"1", "6"}},
		{name: "region", query: "sousse", want: []string{"6"}},
		{name: "region and city keep catalog order", query: "tunis", want: []string{"1", "2", "4", "5"}},
		{name: "tag", query: "familial", want: []string{"3"}},
		{name: "amenities are not indexed", query: "douches", want: []string{}},
		{name: "address is not indexed", query: "kasbah", want: []string{}},
		{name: "description is not indexed", query: "mosaïques", want: []string{}},
		{name: "empty query matches everything", query: "", want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "single character", query: "z", want: []string{}},
		{name: "no match", query: "djerba", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationIDs(Search(tt.query, catalog)))
		})
	}
}

func TestSearchSoundnessAndCompleteness(t *testing.T) {
	catalog := newTestCatalog(t).All()
	queries := []string{"a", "Café", "tunis", "ham", "é", "parc", "Sable", "bou", "xyz"}

	for _, q := range queries {
		got := Search(q, catalog)
		hit := make(map[string]bool, len(got))
		for _, l := range got {
			hit[l.ID] = true
		}
		lq := strings.ToLower(q)

		for _, l := range catalog {
			indexed := []string{l.Name, l.City, l.Region}
			indexed = append(indexed, l.Tags...)
			contains := false
			for _, field := range indexed {
				if strings.Contains(strings.ToLower(field), lq) {
					contains = true
					break
				}
			}
			assert.Equal(t, contains, hit[l.ID], "query %q location %s", q, l.ID)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t).All()
	first := Search("a", catalog)
	second := Search("a", catalog)
	assert.Equal(t, first, second)
}

func TestFilter(t *testing.T) {
	catalog := newTestCatalog(t).All()

	tests := []struct {
		name  string
		state *model.FilterState
		want  []string
	}{
		{name: "nil state", state: nil, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "empty state", state: model.NewFilterState(), want: []string{"1", "2", "3", "4", "5", "6"}},
		{
			name:  "beach with score 4",
			state: &model.FilterState{Types: []model.LocationType{model.LocationTypeBeach}, CleanlinessScore: score(4)},
			want:  []string{"3"},
		},
		{
			name:  "wifi",
			state: &model.FilterState{Amenities: []string{"WiFi gratuit"}},
			want:  []string{"1", "6"},
		},
		{
			name:  "amenities are AND-ed",
			state: &model.FilterState{Amenities: []string{"WiFi gratuit", "Climatisation"}},
			want:  []string{"1"},
		},
		{
			name:  "amenity labels are exact",
			state: &model.FilterState{Amenities: []string{"wifi gratuit"}},
			want:  []string{},
		},
		{
			name:  "types are OR-ed",
			state: &model.FilterState{Types: []model.LocationType{model.LocationTypeRestaurant, model.LocationTypeCafe}},
			want:  []string{"1", "2", "6"},
		},
		{
			name:  "score threshold inclusive",
			state: &model.FilterState{CleanlinessScore: score(4.7)},
			want:  []string{"1", "2", "5"},
		},
		{
			name:  "distance is not applied",
			state: &model.FilterState{Distance: score(0.1)},
			want:  []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name: "all facets",
			state: &model.FilterState{
				Types:            []model.LocationType{model.LocationTypeCafe},
				CleanlinessScore: score(4.7),
				Amenities:        []string{"Terrasse"},
			},
			want: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationIDs(Filter(catalog, tt.state)))
		})
	}
}

func TestFilterMonotonicity(t *testing.T) {
	catalog := newTestCatalog(t).All()

	state := model.NewFilterState()
	prev := len(Filter(catalog, state))

	steps := []func(*model.FilterState){
		func(f *model.FilterState) { f.ToggleType(model.LocationTypeCafe) },
		func(f *model.FilterState) { f.ToggleType(model.LocationTypeRestaurant) },
		func(f *model.FilterState) { f.ToggleCleanlinessScore(4.5) },
		func(f *model.FilterState) { f.ToggleAmenity("Climatisation") },
		func(f *model.FilterState) { f.ToggleAmenity("Terrasse") },
	}

	for i, step := range steps {
		step(state)
		n := len(Filter(catalog, state))
		// adding a second type widens the type group; every other step narrows
		if i == 1 {
			assert.GreaterOrEqual(t, n, prev)
		} else {
			assert.LessOrEqual(t, n, prev, "step %d", i)
		}
		prev = n
	}
}

func TestSearchServiceSearch(t *testing.T) {
	svc := newTestSearchService(t)
	ctx := context.Background()

	t.Run("filter applies to search output", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{
			Query:   "tunis",
			Filters: &model.FilterState{Types: []model.LocationType{model.LocationTypeCafe}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, resultIDs(resp.Results))
		assert.Equal(t, "1 lieu trouvé", resp.Label)
		assert.Equal(t, `Résultats pour "tunis"`, resp.Title)
		assert.Equal(t, 1, resp.ActiveFilter)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, 6, resp.Total)
		assert.Equal(t, "6 lieux trouvés", resp.Label)
		assert.Equal(t, "Tous les lieux", resp.Title)
		assert.NotNil(t, resp.Filters)
	})

	t.Run("no results", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{Query: "djerba"})
		require.NoError(t, err)
		assert.Empty(t, resp.Results)
		assert.Equal(t, "0 lieu trouvé", resp.Label)
	})

	t.Run("amenity facet ids resolve to labels", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{
			Filters: &model.FilterState{Amenities: []string{"wifi", "terrace"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "6"}, resultIDs(resp.Results))
		assert.Equal(t, []string{"WiFi gratuit", "Terrasse"}, resp.Filters.Amenities)
	})

	t.Run("request filters are not modified", func(t *testing.T) {
		in := &model.FilterState{Amenities: []string{"wifi"}}
		_, err := svc.Search(ctx, &model.SearchRequest{Filters: in})
		require.NoError(t, err)
		assert.Equal(t, []string{"wifi"}, in.Amenities)
	})

	t.Run("matched reasons", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{
			Query:   "hammamet",
			Filters: &model.FilterState{CleanlinessScore: score(4)},
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, []string{
			ReasonNameMatch, ReasonCityMatch, ReasonScoreMatch, ReasonExcellentScore, ReasonFeatured,
		}, resp.Results[0].MatchedReasons)
	})

	t.Run("general match when nothing specific applies", func(t *testing.T) {
		resp, err := svc.Search(ctx, &model.SearchRequest{})
		require.NoError(t, err)
		// Parc Habib Thameur: 4.3, not featured
		assert.Equal(t, []string{ReasonGeneralMatch}, resp.Results[3].MatchedReasons)
	})

	t.Run("invalid filters", func(t *testing.T) {
		_, err := svc.Search(ctx, &model.SearchRequest{
			Filters: &model.FilterState{Types: []model.LocationType{"hotel"}},
		})
		assert.True(t, errors.Is(err, ErrInvalidFilter))

		_, err = svc.Search(ctx, &model.SearchRequest{
			Filters: &model.FilterState{CleanlinessScore: score(6)},
		})
		assert.True(t, errors.Is(err, ErrInvalidFilter))

		_, err = svc.Search(ctx, &model.SearchRequest{
			Filters: &model.FilterState{Distance: score(-1)},
		})
		assert.True(t, errors.Is(err, ErrInvalidFilter))

		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err = svc.Search(ctx, &model.SearchRequest{
				Filters: &model.FilterState{CleanlinessScore: score(v)},
			})
			assert.ErrorIs(t, err, ErrInvalidFilter, "score %v", v)

			_, err = svc.Search(ctx, &model.SearchRequest{
				Filters: &model.FilterState{Distance: score(v)},
			})
			assert.ErrorIs(t, err, ErrInvalidFilter, "distance %v", v)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Search(cctx, &model.SearchRequest{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchServiceSuggest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		query string
		want  []string
	}{
		{name: "below minimum length", limit: 5, query: "t", want: []string{}},
		{name: "empty", limit: 5, query: "", want: []string{}},
		{name: "length counts characters not bytes", limit: 5, query: "é", want: []string{}},
		{name: "at minimum length", limit: 5, query: "ha", want: []string{"3", "4"}},
		{name: "limited", limit: 2, query: "tunis", want: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSearchService(newTestCatalog(t), 2, tt.limit, nil)
			got, err := svc.Suggest(ctx, tt.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearchServiceGetLocation(t *testing.T) {
	svc := newTestSearchService(t)
	ctx := context.Background()

	loc, err := svc.GetLocation(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Restaurant El Walima", loc.Name)

	loc, err = svc.GetLocation(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, loc)

	detail, err := svc.GetLocationDetail(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, detail)

	detail, err = svc.GetLocationDetail(ctx, "5")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Musée", detail.TypeLabel)
}

func TestSearchServiceBrowse(t *testing.T) {
	svc := newTestSearchService(t)

	tests := []struct {
		name     string
		typ      model.LocationType
		region   string
		minScore *float64
		want     []string
	}{
		{name: "everything", want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "by type", typ: model.LocationTypeCafe, want: []string{"1", "6"}},
		{name: "by region", region: "Tunis", want: []string{"1", "2", "4", "5"}},
		{name: "by min score", minScore: score(4.6), want: []string{"1", "2", "5", "6"}},
		{name: "type and region", typ: model.LocationTypeCafe, region: "Sousse", want: []string{"6"}},
		{name: "region and score", region: "Tunis", minScore: score(4.8), want: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Browse(tt.typ, tt.region, tt.minScore)
			require.NoError(t, err)
			assert.Equal(t, tt.want, locationIDs(got))
		})
	}

	_, err := svc.Browse("hotel", "", nil)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.Browse("", "Tunis", score(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.Browse("", "", score(7))
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestSearchServiceFeaturedAndOptions(t *testing.T) {
	svc := newTestSearchService(t)

	assert.Equal(t, []string{"1", "2", "3"}, locationIDs(svc.Featured()))

	opts := svc.FilterOptions()
	require.Len(t, opts.Types, 5)
	assert.Equal(t, "Restaurants", opts.Types[0].Label)
	assert.Equal(t, "Plages", opts.Types[2].Label)
	require.Len(t, opts.CleanlinessScores, 3)
	assert.Equal(t, "4.5+", opts.CleanlinessScores[2].Label)
	assert.Equal(t, 4.5, opts.CleanlinessScores[2].Value)
	require.Len(t, opts.Amenities, 4)
	assert.Equal(t, "ac", opts.Amenities[3].ID)
	assert.Equal(t, "Climatisation", opts.Amenities[3].Label)
}
