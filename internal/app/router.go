package app

import (
	"strings"

	"github.com/gin-gonic/gin"

	"csi-remedy.io/remediator/internal/api/handlers"
	"csi-remedy.io/remediator/internal/api/middleware"
	"csi-remedy.io/remediator/internal/pkg/logger"
)

// Public routes that do NOT require bearer authentication.
var publicPrefixes = []string{
	"/health/",
	"/log/level",
}

func newRouter(bearerToken string, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(bearerSkipPublic(bearerToken))

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	// zap AtomicLevel handler: GET returns the level, PUT changes it.
	router.GET("/log/level", gin.WrapH(logger.HTTPHandler()))
	router.PUT("/log/level", gin.WrapH(logger.HTTPHandler()))

	v1 := router.Group("/api/v1")
	v1.POST("/remediations", server.PostRemediation)

	return router
}

// bearerSkipPublic returns middleware that applies bearer auth only on
// non-public routes.
func bearerSkipPublic(token string) gin.HandlerFunc {
	authMw := middleware.BearerAuth(token)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		authMw(c)
	}
}
