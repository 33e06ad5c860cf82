package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query   string       `json:"query"`
	Filters *FilterState `json:"filters,omitempty"`
}

// LocationResult is a search hit with the reasons it matched
type LocationResult struct {
	Location
	MatchedReasons []string `json:"matched_reasons"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	Results      []LocationResult `json:"results"`
	Total        int              `json:"total"`
	Title        string           `json:"title"`
	Label        string           `json:"label"`
	Query        string           `json:"query"`
	Filters      *FilterState     `json:"filters"`
	ActiveFilter int              `json:"active_filter_count"`
	Took         int64            `json:"took_ms"` // Response time in milliseconds
}

// Suggestion is a compact search hit for the live suggestion list
type Suggestion struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   LocationType `json:"type"`
	City   string       `json:"city"`
	Region string       `json:"region"`
}

// FacetOption is one selectable value of a filter facet
type FacetOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value,omitempty"`
}

// FilterOptions describes every facet the filter panel offers
type FilterOptions struct {
	Types             []FacetOption `json:"types"`
	CleanlinessScores []FacetOption `json:"cleanliness_scores"`
	Amenities         []FacetOption `json:"amenities"`
}

// ScoreBreakdown is one bar of the cleanliness detail view
type ScoreBreakdown struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// DaySchedule is one rendered row of the opening hours table
type DaySchedule struct {
	Day    Weekday `json:"day"`
	Label  string  `json:"label"`
	Open   string  `json:"open,omitempty"`
	Close  string  `json:"close,omitempty"`
	Closed bool    `json:"closed"`
}

// LocationDetail is the payload of the location detail page
type LocationDetail struct {
	Location
	TypeLabel      string           `json:"type_label"`
	ScoreLabel     string           `json:"score_label"`
	ScoreBreakdown []ScoreBreakdown `json:"score_breakdown"`
	Schedule       []DaySchedule    `json:"schedule"`
}
