package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tunisiaclean/internal/model"
	"tunisiaclean/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search and catalog HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.respondSearch(c, &req)
}

// ListLocations handles GET /api/v1/locations?q=&types=&min_score=&amenities=&distance=
func (h *SearchHandler) ListLocations(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondSearch(c, &model.SearchRequest{Query: c.Query("q"), Filters: filters})
}

func (h *SearchHandler) respondSearch(c *gin.Context, req *model.SearchRequest) {
	response, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Suggestions handles GET /api/v1/search/suggestions?q=
func (h *SearchHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.searchService.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Suggestions failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Featured handles GET /api/v1/locations/featured
func (h *SearchHandler) Featured(c *gin.Context) {
	locations := h.searchService.Featured()
	c.JSON(http.StatusOK, gin.H{"results": locations, "total": len(locations)})
}

// Browse handles GET /api/v1/locations/browse?type=&region=&min_score=
func (h *SearchHandler) Browse(c *gin.Context) {
	var minScore *float64
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_score"})
			return
		}
		minScore = &v
	}

	locations, err := h.searchService.Browse(model.LocationType(c.Query("type")), c.Query("region"), minScore)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": locations, "total": len(locations)})
}

// Filters handles GET /api/v1/filters
func (h *SearchHandler) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchService.FilterOptions())
}

// GetLocation handles GET /api/v1/locations/:id
func (h *SearchHandler) GetLocation(c *gin.Context) {
	detail, err := h.searchService.GetLocationDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get location: " + err.Error()})
		return
	}

	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// filtersFromQuery reads a FilterState from query parameters. List values may
// be repeated or comma separated.
func filtersFromQuery(c *gin.Context) (*model.FilterState, error) {
	filters := model.NewFilterState()

	for _, t := range queryList(c, "types") {
		filters.Types = append(filters.Types, model.LocationType(t))
	}
	filters.Amenities = queryList(c, "amenities")

	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid min_score")
		}
		filters.CleanlinessScore = &v
	}
	if raw := c.Query("distance"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid distance")
		}
		filters.Distance = &v
	}
	return filters, nil
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
