package repository

import (
	"fmt"

	"tunisiaclean/internal/model"
)

// Catalog is the ordered, read-only set of locations fixed at startup.
// Every accessor hands out copies so callers cannot mutate the catalog.
type Catalog struct {
	locations []model.Location
	byID      map[string]int
}

// NewCatalog validates locs and builds a catalog that keeps their order
func NewCatalog(locs []model.Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]model.Location, 0, len(locs)),
		byID:      make(map[string]int, len(locs)),
	}
	for i := range locs {
		if err := locs[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[locs[i].ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", model.ErrInvalidLocation, locs[i].ID)
		}
		c.byID[locs[i].ID] = len(c.locations)
		c.locations = append(c.locations, cloneLocation(locs[i]))
	}
	return c, nil
}

// Len returns the number of locations
func (c *Catalog) Len() int {
	return len(c.locations)
}

// All returns every location in catalog order
func (c *Catalog) All() []model.Location {
	return c.where(func(*model.Location) bool { return true })
}

// Get looks a location up by id. The boolean is false when the id is unknown.
func (c *Catalog) Get(id string) (model.Location, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Location{}, false
	}
	return cloneLocation(c.locations[i]), true
}

// Featured returns the locations flagged for the home page
func (c *Catalog) Featured() []model.Location {
	return c.where(func(l *model.Location) bool { return l.Featured })
}

// ByType returns the locations of type t
func (c *Catalog) ByType(t model.LocationType) []model.Location {
	return c.where(func(l *model.Location) bool { return l.Type == t })
}

// ByRegion returns the locations whose region equals region exactly
func (c *Catalog) ByRegion(region string) []model.Location {
	return c.where(func(l *model.Location) bool { return l.Region == region })
}

// ByMinScore returns the locations with a cleanliness score >= minScore
func (c *Catalog) ByMinScore(minScore float64) []model.Location {
	return c.where(func(l *model.Location) bool { return l.CleanlinessScore >= minScore })
}

func (c *Catalog) where(keep func(*model.Location) bool) []model.Location {
	out := make([]model.Location, 0, len(c.locations))
	for i := range c.locations {
		if keep(&c.locations[i]) {
			out = append(out, cloneLocation(c.locations[i]))
		}
	}
	return out
}

func cloneLocation(l model.Location) model.Location {
	l.Amenities = cloneStrings(l.Amenities)
	l.Tags = cloneStrings(l.Tags)
	l.Images = cloneStrings(l.Images)
	if l.OpeningHours != nil {
		hours := make(model.OpeningHours, len(l.OpeningHours))
		for d, h := range l.OpeningHours {
			hours[d] = h
		}
		l.OpeningHours = hours
	}
	return l
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
