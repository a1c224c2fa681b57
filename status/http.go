package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewHandler serves the registry as JSON
//
//	GET /status   flat metric snapshot
//	GET /healthz  liveness, 503 once engine.running is false
func NewHandler(reg *Registry) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Snapshot())
	})

	r.GET("/healthz", func(c *gin.Context) {
		if reg.Bools.Has(KeyRunning) && !reg.Bools.Get(KeyRunning).Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "stopped"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
