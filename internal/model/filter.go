package model

// FilterState is the set of facet selections applied to the catalog.
// A nil CleanlinessScore or an empty slice means the facet is inactive.
// Distance is carried for clients but never applied.
type FilterState struct {
	Types            []LocationType `json:"types"`
	CleanlinessScore *float64       `json:"cleanliness_score"`
	Amenities        []string       `json:"amenities"`
	Distance         *float64       `json:"distance,omitempty"`
}

// NewFilterState returns an empty filter state
func NewFilterState() *FilterState {
	return &FilterState{
		Types:     []LocationType{},
		Amenities: []string{},
	}
}

// ToggleType adds t when absent, removes it when present
func (f *FilterState) ToggleType(t LocationType) {
	for i, existing := range f.Types {
		if existing == t {
			f.Types = append(f.Types[:i:i], f.Types[i+1:]...)
			return
		}
	}
	f.Types = append(f.Types, t)
}

// ToggleCleanlinessScore selects score, or clears it when it is already selected
func (f *FilterState) ToggleCleanlinessScore(score float64) {
	if f.CleanlinessScore != nil && *f.CleanlinessScore == score {
		f.CleanlinessScore = nil
		return
	}
	f.CleanlinessScore = &score
}

// ToggleAmenity adds label when absent, removes it when present
func (f *FilterState) ToggleAmenity(label string) {
	for i, existing := range f.Amenities {
		if existing == label {
			f.Amenities = append(f.Amenities[:i:i], f.Amenities[i+1:]...)
			return
		}
	}
	f.Amenities = append(f.Amenities, label)
}

// SetDistance stores the distance selection; nil clears it
func (f *FilterState) SetDistance(km *float64) {
	f.Distance = km
}

// Clear resets every facet
func (f *FilterState) Clear() {
	f.Types = []LocationType{}
	f.CleanlinessScore = nil
	f.Amenities = []string{}
	f.Distance = nil
}

// ActiveCount counts the active facet groups: types, score and amenities
func (f *FilterState) ActiveCount() int {
	if f == nil {
		return 0
	}
	n := 0
	if len(f.Types) > 0 {
		n++
	}
	if f.CleanlinessScore != nil {
		n++
	}
	if len(f.Amenities) > 0 {
		n++
	}
	return n
}

// IsEmpty reports whether no facet would restrict the result set
func (f *FilterState) IsEmpty() bool {
	return f.ActiveCount() == 0
}
