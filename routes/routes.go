package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	computerCtl := controllers.NewComputerController(s)
	networkCtl := controllers.NewNetworkDeviceController(s)
	otherCtl := controllers.NewOtherDeviceController(s)
	assignedCtl := controllers.NewAssignedDeviceController(s)
	importCtl := controllers.NewImportController(s)
	historyCtl := controllers.NewHistoryController(s)

	api := r.Group("/api")
	{
		api.GET("/health", s.Health)
		api.GET("/stats", s.GetStats)

		computers := api.Group("/computers")
		{
			computers.GET("", computerCtl.List)
			computers.POST("", computerCtl.Create)
			computers.PUT("/:id", computerCtl.Update)
			computers.DELETE("/:id", computerCtl.Delete)
		}

		network := api.Group("/network-devices")
		{
			network.GET("", networkCtl.List)
			network.POST("", networkCtl.Create)
			network.PUT("/:id", networkCtl.Update)
			network.DELETE("/:id", networkCtl.Delete)
		}

		other := api.Group("/other-devices")
		{
			other.GET("", otherCtl.List)
			other.POST("", otherCtl.Create)
			other.PUT("/:id", otherCtl.Update)
			other.DELETE("/:id", otherCtl.Delete)
		}

		assigned := api.Group("/assigned-devices")
		{
			assigned.GET("", assignedCtl.List)
			assigned.POST("", assignedCtl.Create)
			assigned.PUT("/:id", assignedCtl.Update)
			assigned.DELETE("/:id", assignedCtl.Delete)
		}

		api.POST("/import-excel", importCtl.ImportExcel)
		api.GET("/imported-computers", importCtl.ListImported)
		api.POST("/migrate-imported", importCtl.Migrate)
		api.GET("/search-inventory/:number", importCtl.SearchInventory)

		api.GET("/history", historyCtl.List)
	}

	// unmatched /api paths get a JSON 404 instead of gin's plain text
	r.NoRoute(func(c *app.Ctx) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, app.H{"error": "not found"})
			return
		}
		c.String(http.StatusNotFound, "404 page not found")
	})
}
