package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/database"
)

// Health reports connectivity of the backing stores. The database is
// required; Redis is optional and reported informationally.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unavailable"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "ok"
			if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unavailable"
			}
		}

		c.JSON(status, gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}
