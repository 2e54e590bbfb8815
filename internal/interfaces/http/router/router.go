package router

import "github.com/gin-gonic/gin"

// RouteRegistrar is implemented by handlers that attach their routes to
// the shared versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Mount attaches every registrar's routes under /api/<version>.
func Mount(engine *gin.Engine, version string, registrars ...RouteRegistrar) {
	api := engine.Group("/api/" + version)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}
}
