package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every API endpoint on group
func RegisterRoutes(group *gin.RouterGroup, search *SearchHandler, chat *ChatHandler, dashboard *DashboardHandler) {
	// Catalog and search endpoints
	group.GET("/locations", search.ListLocations)
	group.GET("/locations/featured", search.Featured)
	group.GET("/locations/browse", search.Browse)
	group.GET("/locations/:id", search.GetLocation)
	group.POST("/search", search.Search)
	group.GET("/search/suggestions", search.Suggestions)
	group.GET("/filters", search.Filters)

	// Assistant
	group.POST("/chat", chat.Respond)
	group.POST("/chat/sessions", chat.CreateSession)
	group.GET("/chat/sessions/:id", chat.History)
	group.POST("/chat/sessions/:id/messages", chat.Send)
	group.POST("/chat/sessions/:id/stream", chat.SendStream)

	group.GET("/dashboard", dashboard.Get)
}
