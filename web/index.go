package web

import (
	"net/http"

	"attendance-server/handlers"

	"github.com/gin-gonic/gin"
)

// IndexView renders the landing page with the live stream and today's
// headline numbers. The page refreshes the stats itself via the JSON
// endpoints.
func IndexView(api *handlers.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"totalStudents": api.Gallery.Count(),
			"presentToday":  api.Tracker.PresentCount(),
		})
	}
}
