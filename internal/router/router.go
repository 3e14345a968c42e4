package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Root(c *ginext.Context)
	Status(c *ginext.Context)
	CreateHomestay(c *ginext.Context)
	ListHomestays(c *ginext.Context)
	CreatePackage(c *ginext.Context)
	ListPackages(c *ginext.Context)
	CreateBooking(c *ginext.Context)
}

// InitRouter builds the engine. metrics may be nil, in which case /metrics
// is not served.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/", h.Root)
	router.GET("/test", h.Status)

	// Homestays
	router.GET("/homestays", h.ListHomestays)
	router.POST("/homestays", h.CreateHomestay)

	// Packages
	router.GET("/packages", h.ListPackages)
	router.POST("/packages", h.CreatePackage)

	// Bookings
	router.POST("/bookings", h.CreateBooking)

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
