package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidLocation is returned when a catalog record breaks a data invariant
var ErrInvalidLocation = errors.New("invalid location")

// LocationType is the closed set of place categories
type LocationType string

const (
	LocationTypeRestaurant LocationType = "restaurant"
	LocationTypeCafe       LocationType = "cafe"
	LocationTypeBeach      LocationType = "beach"
	LocationTypePark       LocationType = "park"
	LocationTypeMuseum     LocationType = "museum"
)

// LocationTypes lists every type in the order the filter panel offers them
var LocationTypes = []LocationType{
	LocationTypeRestaurant,
	LocationTypeCafe,
	LocationTypeBeach,
	LocationTypePark,
	LocationTypeMuseum,
}

var typeLabels = map[LocationType][2]string{
	LocationTypeRestaurant: {"Restaurant", "Restaurants"},
	LocationTypeCafe:       {"Café", "Cafés"},
	LocationTypeBeach:      {"Plage", "Plages"},
	LocationTypePark:       {"Parc", "Parcs"},
	LocationTypeMuseum:     {"Musée", "Musées"},
}

// Valid reports whether t belongs to the closed enumeration
func (t LocationType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Label returns the singular French display label
func (t LocationType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l[0]
	}
	return string(t)
}

// PluralLabel returns the label used by the type facet
func (t LocationType) PluralLabel() string {
	if l, ok := typeLabels[t]; ok {
		return l[1]
	}
	return string(t)
}

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Ratings holds the aggregate user rating
type Ratings struct {
	Overall      float64 `json:"overall"`
	TotalReviews int     `json:"total_reviews"`
}

// Weekday keys used in OpeningHours
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays in display order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayLabels = map[Weekday]string{
	Monday:    "Lundi",
	Tuesday:   "Mardi",
	Wednesday: "Mercredi",
	Thursday:  "Jeudi",
	Friday:    "Vendredi",
	Saturday:  "Samedi",
	Sunday:    "Dimanche",
}

// Label returns the French day name
func (d Weekday) Label() string {
	if l, ok := weekdayLabels[d]; ok {
		return l
	}
	return string(d)
}

// ClosedMarker is the canonical value for a closed day; "Fermé" is accepted too
const ClosedMarker = "closed"

// DayHours is the opening window of one day. Times are "HH:MM" strings.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Closed reports whether either end carries the closed marker
func (h DayHours) Closed() bool {
	return isClosedMarker(h.Open) || isClosedMarker(h.Close)
}

func isClosedMarker(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == ClosedMarker || s == "fermé"
}

// OpeningHours maps a weekday to its hours, stored as JSONB
type OpeningHours map[Weekday]DayHours

// Value implements driver.Valuer interface
func (o OpeningHours) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner interface
func (o *OpeningHours) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("unsupported opening_hours type %T", value)
	}
}

// Location is one entry of the catalog
type Location struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             LocationType `json:"type"`
	Address          string       `json:"address"`
	City             string       `json:"city"`
	Region           string       `json:"region"`
	Coordinates      Coordinates  `json:"coordinates"`
	CleanlinessScore float64      `json:"cleanliness_score"`
	Ratings          Ratings      `json:"ratings"`
	Amenities        []string     `json:"amenities"`
	OpeningHours     OpeningHours `json:"opening_hours"`
	Images           []string     `json:"images,omitempty"`
	Description      string       `json:"description,omitempty"`
	Tags             []string     `json:"tags"`
	PriceLevel       int          `json:"price_level"`
	Featured         bool         `json:"featured,omitempty"`
}

// HasAmenity reports whether label is one of the location's amenities (exact match)
func (l *Location) HasAmenity(label string) bool {
	for _, a := range l.Amenities {
		if a == label {
			return true
		}
	}
	return false
}

// Validate checks the per-record data invariants
func (l *Location) Validate() error {
	switch {
	case l.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidLocation)
	case !l.Type.Valid():
		return fmt.Errorf("%w: %s has unknown type %q", ErrInvalidLocation, l.ID, l.Type)
	case !inRange(l.CleanlinessScore, 0, 5):
		return fmt.Errorf("%w: %s cleanliness score %.2f out of [0,5]", ErrInvalidLocation, l.ID, l.CleanlinessScore)
	case !inRange(l.Ratings.Overall, 0, 5):
		return fmt.Errorf("%w: %s rating %.2f out of [0,5]", ErrInvalidLocation, l.ID, l.Ratings.Overall)
	case l.Ratings.TotalReviews < 0:
		return fmt.Errorf("%w: %s negative review count", ErrInvalidLocation, l.ID)
	case l.PriceLevel < 1 || l.PriceLevel > 3:
		return fmt.Errorf("%w: %s price level %d out of {1,2,3}", ErrInvalidLocation, l.ID, l.PriceLevel)
	}
	return nil
}

// inRange is false for NaN
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported JSON array type %T", value)
	}
}
